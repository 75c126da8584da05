package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigwv2 "github.com/aws/aws-sdk-go-v2/service/apigatewayv2"

	"github.com/raywall/apigw-lambda/internal/client"
	"github.com/raywall/apigw-lambda/pkg/types"
)

// APIGatewayV2API is the subset of the API Gateway v2 client the repository uses.
type APIGatewayV2API interface {
	GetApis(ctx context.Context, in *apigwv2.GetApisInput, opts ...func(*apigwv2.Options)) (*apigwv2.GetApisOutput, error)
}

// APIGWv2Repository lists HTTP APIs (v2). Provisioning stays on v1.
type APIGWv2Repository struct {
	api APIGatewayV2API
}

// NewAPIGWv2Repository builds the repository from an AWSClient.
func NewAPIGWv2Repository(c *client.AWSClient) *APIGWv2Repository {
	return &APIGWv2Repository{api: c.APIGWv2}
}

// ListHTTPAPIs lists all v2 APIs, following the next token across pages.
func (r *APIGWv2Repository) ListHTTPAPIs(ctx context.Context) ([]types.APISummary, error) {
	var apis []types.APISummary
	var next *string

	for {
		out, err := r.api.GetApis(ctx, &apigwv2.GetApisInput{
			NextToken: next,
		})
		if err != nil {
			return nil, fmt.Errorf("GetApis failed: %w", err)
		}

		for _, item := range out.Items {
			apis = append(apis, types.APISummary{
				ID:          aws.ToString(item.ApiId),
				Name:        aws.ToString(item.Name),
				Description: aws.ToString(item.Description),
				Protocol:    string(item.ProtocolType),
				CreatedDate: aws.ToTime(item.CreatedDate),
			})
		}

		if out.NextToken == nil {
			return apis, nil
		}
		next = out.NextToken
	}
}
