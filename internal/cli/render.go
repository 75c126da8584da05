package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/raywall/apigw-lambda/internal/credentials"
	"github.com/raywall/apigw-lambda/pkg/types"
)

// renderJSON writes v with two-space indentation, the shape shared by every
// subcommand when --output json is selected.
func renderJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func renderCreateResult(w io.Writer, format string, result *types.CreateResult) error {
	if format == "json" {
		return renderJSON(w, result)
	}

	fmt.Fprintf(w, "API ID:        %s\n", result.APIID)
	fmt.Fprintf(w, "API Name:      %s\n", result.APIName)
	fmt.Fprintf(w, "Lambda:        %s\n", result.FunctionName)
	fmt.Fprintf(w, "Stage:         %s\n", result.Stage)
	fmt.Fprintf(w, "Invoke URL:    %s\n", result.InvokeURL)
	fmt.Fprintf(w, "Deployment ID: %s\n", result.DeploymentID)
	if result.LogGroup != "" {
		fmt.Fprintf(w, "Log Group:     %s\n", result.LogGroup)
	}
	return nil
}

func renderAPIList(w io.Writer, format string, apis []types.APISummary) error {
	if format == "json" {
		return renderJSON(w, apis)
	}

	if len(apis) == 0 {
		fmt.Fprintln(w, "No APIs found")
		return nil
	}

	fmt.Fprintf(w, "Found %d API(s):\n", len(apis))
	for _, api := range apis {
		fmt.Fprintf(w, "  %s  %-30s %s\n", api.ID, api.Name, api.Protocol)
	}
	return nil
}

func renderAPIDetails(w io.Writer, format string, details *types.APIDetails) error {
	if format == "json" {
		return renderJSON(w, details)
	}

	fmt.Fprintf(w, "API ID:      %s\n", details.ID)
	fmt.Fprintf(w, "Name:        %s\n", details.Name)
	if details.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", details.Description)
	}
	fmt.Fprintf(w, "Protocol:    %s\n", details.Protocol)
	if len(details.EndpointTypes) > 0 {
		fmt.Fprintf(w, "Endpoints:   %v\n", details.EndpointTypes)
	}
	if !details.CreatedDate.IsZero() {
		fmt.Fprintf(w, "Created:     %s\n", details.CreatedDate.Format("2006-01-02 15:04:05"))
	}
	if len(details.Stages) > 0 {
		fmt.Fprintln(w, "Stages:")
		for _, stage := range details.Stages {
			fmt.Fprintf(w, "  %s (deployment %s)\n", stage.Name, stage.DeploymentID)
		}
	}
	return nil
}

func renderInvokeResult(w io.Writer, format string, result *types.InvokeResult) error {
	if format == "json" {
		return renderJSON(w, result)
	}

	fmt.Fprintf(w, "Status:  %d\n", result.StatusCode)
	fmt.Fprintf(w, "Latency: %dms\n", result.LatencyMS)
	fmt.Fprintf(w, "Body:    %s\n", result.Body)
	return nil
}

func renderProfiles(w io.Writer, format string, profiles []credentials.Profile) error {
	if format == "json" {
		return renderJSON(w, profiles)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(w, "No AWS profiles found")
		return nil
	}

	fmt.Fprintf(w, "Found %d profile(s):\n", len(profiles))
	for _, p := range profiles {
		line := "  " + p.Name
		if p.Region != "" {
			line += " (" + p.Region + ")"
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func renderProfileInfo(w io.Writer, format string, info types.ProfileInfo) error {
	if format == "json" {
		return renderJSON(w, info)
	}

	fmt.Fprintf(w, "Profile:    %s\n", info.Profile)
	fmt.Fprintf(w, "Account ID: %s\n", info.AccountID)
	fmt.Fprintf(w, "User ID:    %s\n", info.UserID)
	fmt.Fprintf(w, "ARN:        %s\n", info.Arn)
	fmt.Fprintf(w, "Region:     %s\n", info.Region)
	return nil
}
