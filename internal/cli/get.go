package cli

import (
	"github.com/spf13/cobra"

	"github.com/raywall/apigw-lambda/internal/config"
)

func newGetAPICmd() *cobra.Command {
	var apiID string

	cmd := &cobra.Command{
		Use:   "get-api",
		Short: "Get details of an API Gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, err := newIntegrationService(ctx, cfg)
			if err != nil {
				return err
			}

			details, err := svc.GetAPI(ctx, apiID)
			if err != nil {
				return err
			}

			return renderAPIDetails(cmd.OutOrStdout(), cfg.Output, details)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "ID of the API Gateway")
	cmd.MarkFlagRequired("api-id")

	return cmd
}
