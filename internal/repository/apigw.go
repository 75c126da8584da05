// Package repository contains thin wrappers over the AWS service clients.
// Each wrapper exposes the few calls the orchestrator needs and classifies
// AWS error codes; business logic stays in the service layer.
package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apitypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"

	"github.com/raywall/apigw-lambda/internal/client"
	"github.com/raywall/apigw-lambda/pkg/types"
)

// APIGatewayAPI is the subset of the API Gateway v1 client the repository uses.
type APIGatewayAPI interface {
	CreateRestApi(ctx context.Context, in *apigw.CreateRestApiInput, opts ...func(*apigw.Options)) (*apigw.CreateRestApiOutput, error)
	DeleteRestApi(ctx context.Context, in *apigw.DeleteRestApiInput, opts ...func(*apigw.Options)) (*apigw.DeleteRestApiOutput, error)
	GetRestApi(ctx context.Context, in *apigw.GetRestApiInput, opts ...func(*apigw.Options)) (*apigw.GetRestApiOutput, error)
	GetRestApis(ctx context.Context, in *apigw.GetRestApisInput, opts ...func(*apigw.Options)) (*apigw.GetRestApisOutput, error)
	GetStages(ctx context.Context, in *apigw.GetStagesInput, opts ...func(*apigw.Options)) (*apigw.GetStagesOutput, error)
	GetResources(ctx context.Context, in *apigw.GetResourcesInput, opts ...func(*apigw.Options)) (*apigw.GetResourcesOutput, error)
	CreateResource(ctx context.Context, in *apigw.CreateResourceInput, opts ...func(*apigw.Options)) (*apigw.CreateResourceOutput, error)
	PutMethod(ctx context.Context, in *apigw.PutMethodInput, opts ...func(*apigw.Options)) (*apigw.PutMethodOutput, error)
	PutIntegration(ctx context.Context, in *apigw.PutIntegrationInput, opts ...func(*apigw.Options)) (*apigw.PutIntegrationOutput, error)
	PutMethodResponse(ctx context.Context, in *apigw.PutMethodResponseInput, opts ...func(*apigw.Options)) (*apigw.PutMethodResponseOutput, error)
	PutIntegrationResponse(ctx context.Context, in *apigw.PutIntegrationResponseInput, opts ...func(*apigw.Options)) (*apigw.PutIntegrationResponseOutput, error)
	CreateDeployment(ctx context.Context, in *apigw.CreateDeploymentInput, opts ...func(*apigw.Options)) (*apigw.CreateDeploymentOutput, error)
	TestInvokeMethod(ctx context.Context, in *apigw.TestInvokeMethodInput, opts ...func(*apigw.Options)) (*apigw.TestInvokeMethodOutput, error)
}

// APIGWRepository encapsulates REST API (v1) operations.
type APIGWRepository struct {
	api    APIGatewayAPI
	region string
}

// NewAPIGWRepository builds the repository from an AWSClient.
func NewAPIGWRepository(c *client.AWSClient) *APIGWRepository {
	return &APIGWRepository{api: c.APIGW, region: c.Region}
}

// CreateRestAPI creates a REGIONAL REST API and returns its identifier.
func (r *APIGWRepository) CreateRestAPI(ctx context.Context, name, description string) (string, error) {
	in := &apigw.CreateRestApiInput{
		Name: aws.String(name),
		EndpointConfiguration: &apitypes.EndpointConfiguration{
			Types: []apitypes.EndpointType{apitypes.EndpointTypeRegional},
		},
	}
	if description != "" {
		in.Description = aws.String(description)
	}

	out, err := r.api.CreateRestApi(ctx, in)
	if err != nil {
		return "", fmt.Errorf("CreateRestApi failed: %w", err)
	}
	return aws.ToString(out.Id), nil
}

// DeleteRestAPI deletes a REST API.
func (r *APIGWRepository) DeleteRestAPI(ctx context.Context, apiID string) error {
	_, err := r.api.DeleteRestApi(ctx, &apigw.DeleteRestApiInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return fmt.Errorf("DeleteRestApi failed: %w", err)
	}
	return nil
}

// GetRestAPI fetches metadata for one REST API. Stages are fetched separately.
func (r *APIGWRepository) GetRestAPI(ctx context.Context, apiID string) (*types.APIDetails, error) {
	out, err := r.api.GetRestApi(ctx, &apigw.GetRestApiInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return nil, fmt.Errorf("GetRestApi failed: %w", err)
	}

	details := &types.APIDetails{
		APISummary: types.APISummary{
			ID:          aws.ToString(out.Id),
			Name:        aws.ToString(out.Name),
			Description: aws.ToString(out.Description),
			Protocol:    "REST",
			CreatedDate: aws.ToTime(out.CreatedDate),
		},
	}
	if out.EndpointConfiguration != nil {
		for _, t := range out.EndpointConfiguration.Types {
			details.EndpointTypes = append(details.EndpointTypes, string(t))
		}
	}
	return details, nil
}

// GetStages lists the deployed stages of a REST API.
func (r *APIGWRepository) GetStages(ctx context.Context, apiID string) ([]types.StageInfo, error) {
	out, err := r.api.GetStages(ctx, &apigw.GetStagesInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return nil, fmt.Errorf("GetStages failed: %w", err)
	}

	stages := make([]types.StageInfo, 0, len(out.Item))
	for _, s := range out.Item {
		stages = append(stages, types.StageInfo{
			Name:         aws.ToString(s.StageName),
			DeploymentID: aws.ToString(s.DeploymentId),
			LastUpdated:  aws.ToTime(s.LastUpdatedDate),
		})
	}
	return stages, nil
}

// ListRestAPIs lists all REST APIs visible under the resolved credentials,
// following the position token across pages.
func (r *APIGWRepository) ListRestAPIs(ctx context.Context) ([]types.APISummary, error) {
	var apis []types.APISummary
	var position *string

	for {
		out, err := r.api.GetRestApis(ctx, &apigw.GetRestApisInput{
			Position: position,
		})
		if err != nil {
			return nil, fmt.Errorf("GetRestApis failed: %w", err)
		}

		for _, item := range out.Items {
			apis = append(apis, types.APISummary{
				ID:          aws.ToString(item.Id),
				Name:        aws.ToString(item.Name),
				Description: aws.ToString(item.Description),
				Protocol:    "REST",
				CreatedDate: aws.ToTime(item.CreatedDate),
			})
		}

		if out.Position == nil {
			return apis, nil
		}
		position = out.Position
	}
}

// GetRootResourceID looks up the ID of the root resource (/).
func (r *APIGWRepository) GetRootResourceID(ctx context.Context, apiID string) (string, error) {
	result, err := r.api.GetResources(ctx, &apigw.GetResourcesInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return "", fmt.Errorf("GetResources failed: %w", err)
	}

	for _, res := range result.Items {
		if aws.ToString(res.Path) == "/" {
			return aws.ToString(res.Id), nil
		}
	}
	return "", fmt.Errorf("root resource not found for API ID: %s", apiID)
}

// CreateResource creates one path part under a parent resource.
func (r *APIGWRepository) CreateResource(ctx context.Context, apiID, parentID, pathPart string) (string, error) {
	out, err := r.api.CreateResource(ctx, &apigw.CreateResourceInput{
		RestApiId: aws.String(apiID),
		ParentId:  aws.String(parentID),
		PathPart:  aws.String(pathPart),
	})
	if err != nil {
		return "", fmt.Errorf("CreateResource failed for path part %s: %w", pathPart, err)
	}
	return aws.ToString(out.Id), nil
}

// PutProxyMethod wires a method on a resource straight to a Lambda function:
// method, AWS_PROXY integration and the 200 method/integration responses.
// Conflicts are tolerated so reruns against an existing method succeed.
func (r *APIGWRepository) PutProxyMethod(ctx context.Context, apiID, resourceID, httpMethod, functionArn string) error {
	_, err := r.api.PutMethod(ctx, &apigw.PutMethodInput{
		RestApiId:         aws.String(apiID),
		ResourceId:        aws.String(resourceID),
		HttpMethod:        aws.String(httpMethod),
		AuthorizationType: aws.String("NONE"),
	})
	if err != nil && !IsConflict(err) {
		return fmt.Errorf("PutMethod failed: %w", err)
	}

	uri := fmt.Sprintf("arn:aws:apigateway:%s:lambda:path/2015-03-31/functions/%s/invocations", r.region, functionArn)

	_, err = r.api.PutIntegration(ctx, &apigw.PutIntegrationInput{
		RestApiId:             aws.String(apiID),
		ResourceId:            aws.String(resourceID),
		HttpMethod:            aws.String(httpMethod),
		Type:                  apitypes.IntegrationTypeAwsProxy,
		IntegrationHttpMethod: aws.String("POST"),
		Uri:                   aws.String(uri),
	})
	if err != nil && !IsConflict(err) {
		return fmt.Errorf("PutIntegration failed: %w", err)
	}

	_, err = r.api.PutMethodResponse(ctx, &apigw.PutMethodResponseInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(httpMethod),
		StatusCode: aws.String("200"),
	})
	if err != nil && !IsConflict(err) {
		return fmt.Errorf("PutMethodResponse failed: %w", err)
	}

	_, err = r.api.PutIntegrationResponse(ctx, &apigw.PutIntegrationResponseInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(httpMethod),
		StatusCode: aws.String("200"),
	})
	if err != nil && !IsConflict(err) {
		return fmt.Errorf("PutIntegrationResponse failed: %w", err)
	}

	return nil
}

// CreateDeployment deploys the API to a stage and returns the deployment ID.
func (r *APIGWRepository) CreateDeployment(ctx context.Context, apiID, stageName string) (string, error) {
	out, err := r.api.CreateDeployment(ctx, &apigw.CreateDeploymentInput{
		RestApiId: aws.String(apiID),
		StageName: aws.String(stageName),
	})
	if err != nil {
		return "", fmt.Errorf("CreateDeployment failed: %w", err)
	}
	return aws.ToString(out.Id), nil
}

// FindResourceByPath returns the resource ID for a full path, or "" when the
// path does not exist in the API.
func (r *APIGWRepository) FindResourceByPath(ctx context.Context, apiID, path string) (string, error) {
	result, err := r.api.GetResources(ctx, &apigw.GetResourcesInput{
		RestApiId: aws.String(apiID),
	})
	if err != nil {
		return "", fmt.Errorf("GetResources failed: %w", err)
	}

	for _, res := range result.Items {
		if aws.ToString(res.Path) == path {
			return aws.ToString(res.Id), nil
		}
	}
	return "", nil
}

// TestInvoke issues a synthetic invocation through the API Gateway
// test-invoke mechanism.
func (r *APIGWRepository) TestInvoke(ctx context.Context, apiID, resourceID, httpMethod, body string) (*types.InvokeResult, error) {
	out, err := r.api.TestInvokeMethod(ctx, &apigw.TestInvokeMethodInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(httpMethod),
		Body:       aws.String(body),
	})
	if err != nil {
		return nil, fmt.Errorf("TestInvokeMethod failed: %w", err)
	}

	return &types.InvokeResult{
		StatusCode: out.Status,
		Body:       aws.ToString(out.Body),
		LatencyMS:  out.Latency,
		Log:        aws.ToString(out.Log),
	}, nil
}
