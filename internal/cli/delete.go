package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/raywall/apigw-lambda/internal/config"
)

func newDeleteAPICmd() *cobra.Command {
	var (
		apiID    string
		logGroup string
	)

	cmd := &cobra.Command{
		Use:   "delete-api",
		Short: "Delete an API Gateway",
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

			if err := svc.DeleteAPI(ctx, apiID, logGroup); err != nil {
				return err
			}

			if cfg.Output == "text" {
				color.Green("✓ API Gateway %s deleted successfully", apiID)
				return nil
			}
			return renderJSON(cmd.OutOrStdout(), map[string]string{
				"status": "deleted",
				"api_id": apiID,
			})
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "ID of the API Gateway to delete")
	cmd.Flags().StringVar(&logGroup, "log-group", "", "Execution log group to delete alongside the API")
	cmd.MarkFlagRequired("api-id")

	return cmd
}
