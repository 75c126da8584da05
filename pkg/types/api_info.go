package types

import "time"

// APISummary is the listing DTO for a deployed API.
type APISummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Protocol    string    `json:"protocol"`
	CreatedDate time.Time `json:"created_date"`
}

// StageInfo describes one deployed stage of a REST API.
type StageInfo struct {
	Name         string    `json:"name"`
	DeploymentID string    `json:"deployment_id"`
	LastUpdated  time.Time `json:"last_updated"`
}

// APIDetails is the full DTO returned by get-api.
type APIDetails struct {
	APISummary
	EndpointTypes []string    `json:"endpoint_types,omitempty"`
	Stages        []StageInfo `json:"stages"`
}
