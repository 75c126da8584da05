package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raywall/apigw-lambda/internal/config"
	"github.com/raywall/apigw-lambda/internal/service"
)

func newCreateAPICmd() *cobra.Command {
	var (
		apiName      string
		lambdaName   string
		description  string
		logRetention int32
	)

	cmd := &cobra.Command{
		Use:   "create-api",
		Short: "Create an API Gateway endpoint that triggers a Lambda function",
		Long: `Create a REST API with a proxy resource for the named Lambda function,
grant API Gateway permission to invoke it and deploy a stage.

The Lambda function must already exist; create-api never creates functions.

Examples:
    apigw-lambda create-api --api-name orders-api --lambda-name orders
    apigw-lambda create-api --api-name orders-api --lambda-name orders --stage staging --log-retention 14`,
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

			result, err := svc.CreateAPI(ctx, service.CreateAPIInput{
				Name:             apiName,
				FunctionName:     lambdaName,
				Description:      description,
				Stage:            cfg.Stage,
				LogRetentionDays: logRetention,
			})
			if err != nil {
				return err
			}

			if cfg.Output == "text" {
				color.Green("✓ API Gateway created successfully")
			}
			return renderCreateResult(cmd.OutOrStdout(), cfg.Output, result)
		},
	}

	cmd.Flags().StringVar(&apiName, "api-name", "", "Name of the API Gateway to create")
	cmd.Flags().StringVar(&lambdaName, "lambda-name", "", "Name of the Lambda function to integrate with")
	cmd.Flags().StringVar(&description, "description", "", "Description of the API Gateway")
	cmd.Flags().String("stage", "", "Stage name to deploy (default prod)")
	cmd.Flags().Int32Var(&logRetention, "log-retention", 0, "Execution log group retention in days (0 disables log group setup)")
	cmd.MarkFlagRequired("api-name")
	cmd.MarkFlagRequired("lambda-name")

	viper.BindPFlag("stage", cmd.Flags().Lookup("stage"))

	return cmd
}
