// Package client bundles the AWS service clients the orchestrator needs.
package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwv2 "github.com/aws/aws-sdk-go-v2/service/apigatewayv2"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	sts "github.com/aws/aws-sdk-go-v2/service/sts"
)

// Identity is the STS caller identity preloaded at client construction.
type Identity struct {
	AccountID string
	UserID    string
	Arn       string
}

// AWSClient holds the AWS service clients and resolved account information.
type AWSClient struct {
	Config   aws.Config
	APIGW    *apigw.Client   // REST API (v1)
	APIGWv2  *apigwv2.Client // HTTP API (v2)
	Lambda   *lambda.Client
	CWLogs   *cw.Client
	STS      *sts.Client
	Region   string
	Identity Identity
}

// New creates an AWSClient from an already resolved aws.Config and preloads
// the caller identity.
func New(ctx context.Context, cfg aws.Config) (*AWSClient, error) {
	c := &AWSClient{
		Config:  cfg,
		APIGW:   apigw.NewFromConfig(cfg),
		APIGWv2: apigwv2.NewFromConfig(cfg),
		Lambda:  lambda.NewFromConfig(cfg),
		CWLogs:  cw.NewFromConfig(cfg),
		STS:     sts.NewFromConfig(cfg),
		Region:  cfg.Region,
	}

	identity, err := callerIdentity(ctx, c.STS)
	if err != nil {
		return nil, err
	}
	c.Identity = identity

	return c, nil
}

func callerIdentity(ctx context.Context, stsClient *sts.Client) (Identity, error) {
	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, fmt.Errorf("getting caller identity: %w", err)
	}
	return Identity{
		AccountID: aws.ToString(result.Account),
		UserID:    aws.ToString(result.UserId),
		Arn:       aws.ToString(result.Arn),
	}, nil
}
