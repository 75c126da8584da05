// Package cli implements the apigw-lambda subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raywall/apigw-lambda/internal/client"
	"github.com/raywall/apigw-lambda/internal/config"
	"github.com/raywall/apigw-lambda/internal/credentials"
	"github.com/raywall/apigw-lambda/internal/service"
)

// Execute runs the root command. Any failure is printed and returned so main
// can exit non-zero.
func Execute(version string) error {
	rootCmd := &cobra.Command{
		Use:   "apigw-lambda",
		Short: "Create and manage API Gateway endpoints that trigger Lambda functions",
		Long: `apigw-lambda provisions AWS API Gateway REST endpoints wired to existing
Lambda functions: REST API, proxy resource and method, Lambda-proxy
integration, invoke permission and stage deployment in one command.

The special profile "latest" resolves to the most recently used credentials.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("profile", "", `AWS profile to use ("latest" picks the most recently used credentials)`)
	rootCmd.PersistentFlags().String("region", "", "AWS region to use")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text or json")

	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(
		newCreateAPICmd(),
		newDeleteAPICmd(),
		newListAPIsCmd(),
		newGetAPICmd(),
		newTestInvokeCmd(),
		newListProfilesCmd(),
		newGetProfileInfoCmd(),
		newVersionCmd(version),
	)

	if err := rootCmd.Execute(); err != nil {
		color.Red("✗ %v", err)
		return err
	}
	return nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "apigw-lambda %s\n", version)
		},
	}
}

// newAWSClient resolves credentials per the loaded config and builds the
// authenticated client the orchestrator runs on.
func newAWSClient(ctx context.Context, cfg *config.Config) (*client.AWSClient, error) {
	resolver := credentials.NewResolver()
	awsCfg, err := resolver.Resolve(ctx, cfg.Profile, cfg.Region)
	if err != nil {
		return nil, err
	}
	return client.New(ctx, awsCfg)
}

func newIntegrationService(ctx context.Context, cfg *config.Config) (*service.IntegrationService, error) {
	c, err := newAWSClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return service.New(c), nil
}
