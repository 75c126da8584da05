package types

// ProfileInfo is the caller identity resolved for an AWS profile.
type ProfileInfo struct {
	Profile   string `json:"profile"`
	AccountID string `json:"account_id"`
	UserID    string `json:"user_id"`
	Arn       string `json:"arn"`
	Region    string `json:"region"`
}
