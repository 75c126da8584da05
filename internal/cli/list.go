package cli

import (
	"github.com/spf13/cobra"

	"github.com/raywall/apigw-lambda/internal/config"
)

func newListAPIsCmd() *cobra.Command {
	var includeHTTP bool

	cmd := &cobra.Command{
		Use:   "list-apis",
		Short: "List all API Gateways",
		Long: `List all REST APIs visible under the resolved credentials.

With --http, HTTP APIs (API Gateway v2) are listed as well.`,
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

			apis, err := svc.ListAPIs(ctx, includeHTTP)
			if err != nil {
				return err
			}

			return renderAPIList(cmd.OutOrStdout(), cfg.Output, apis)
		},
	}

	cmd.Flags().BoolVar(&includeHTTP, "http", false, "Also list HTTP APIs (API Gateway v2)")

	return cmd
}
