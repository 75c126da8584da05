package cli

import (
	"github.com/spf13/cobra"

	"github.com/raywall/apigw-lambda/internal/config"
	"github.com/raywall/apigw-lambda/internal/service"
)

func newTestInvokeCmd() *cobra.Command {
	var (
		apiID        string
		resourcePath string
		httpMethod   string
		body         string
	)

	cmd := &cobra.Command{
		Use:   "test-invoke",
		Short: "Test invoke an API Gateway endpoint",
		Long: `Issue a synthetic invocation through the API Gateway test-invoke
mechanism and print the status and body the backing function returned.

Example:
    apigw-lambda test-invoke --api-id abc123 --resource-path /orders --body '{"key": "value"}'`,
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

			result, err := svc.TestInvoke(ctx, service.TestInvokeInput{
				APIID:        apiID,
				ResourcePath: resourcePath,
				HTTPMethod:   httpMethod,
				Body:         body,
			})
			if err != nil {
				return err
			}

			return renderInvokeResult(cmd.OutOrStdout(), cfg.Output, result)
		},
	}

	cmd.Flags().StringVar(&apiID, "api-id", "", "ID of the API Gateway")
	cmd.Flags().StringVar(&resourcePath, "resource-path", "", "Path of the resource to invoke")
	cmd.Flags().StringVar(&httpMethod, "http-method", "POST", "HTTP method to use")
	cmd.Flags().StringVar(&body, "body", "{}", "Request body as JSON string")
	cmd.MarkFlagRequired("api-id")
	cmd.MarkFlagRequired("resource-path")

	return cmd
}
