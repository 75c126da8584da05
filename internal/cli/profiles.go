package cli

import (
	"github.com/spf13/cobra"

	"github.com/raywall/apigw-lambda/internal/config"
	"github.com/raywall/apigw-lambda/internal/credentials"
	"github.com/raywall/apigw-lambda/pkg/types"
)

func newListProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-profiles",
		Short: "List all available AWS profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			profiles, err := credentials.ListProfiles()
			if err != nil {
				return err
			}

			return renderProfiles(cmd.OutOrStdout(), cfg.Output, profiles)
		},
	}
}

func newGetProfileInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-profile-info",
		Short: "Get caller identity information for an AWS profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c, err := newAWSClient(ctx, cfg)
			if err != nil {
				return err
			}

			profile := cfg.Profile
			if profile == "" {
				profile = "default"
			}

			info := types.ProfileInfo{
				Profile:   profile,
				AccountID: c.Identity.AccountID,
				UserID:    c.Identity.UserID,
				Arn:       c.Identity.Arn,
				Region:    c.Region,
			}

			return renderProfileInfo(cmd.OutOrStdout(), cfg.Output, info)
		},
	}
}
