// Package service orchestrates the AWS calls that wire an API Gateway REST
// API to an existing Lambda function.
package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/raywall/apigw-lambda/internal/client"
	"github.com/raywall/apigw-lambda/internal/repository"
	"github.com/raywall/apigw-lambda/pkg/types"
)

// APIGateway is the REST API surface the orchestrator depends on.
type APIGateway interface {
	CreateRestAPI(ctx context.Context, name, description string) (string, error)
	DeleteRestAPI(ctx context.Context, apiID string) error
	GetRestAPI(ctx context.Context, apiID string) (*types.APIDetails, error)
	GetStages(ctx context.Context, apiID string) ([]types.StageInfo, error)
	ListRestAPIs(ctx context.Context) ([]types.APISummary, error)
	GetRootResourceID(ctx context.Context, apiID string) (string, error)
	CreateResource(ctx context.Context, apiID, parentID, pathPart string) (string, error)
	PutProxyMethod(ctx context.Context, apiID, resourceID, httpMethod, functionArn string) error
	CreateDeployment(ctx context.Context, apiID, stage string) (string, error)
	FindResourceByPath(ctx context.Context, apiID, path string) (string, error)
	TestInvoke(ctx context.Context, apiID, resourceID, httpMethod, body string) (*types.InvokeResult, error)
}

// HTTPAPIs lists API Gateway v2 APIs.
type HTTPAPIs interface {
	ListHTTPAPIs(ctx context.Context) ([]types.APISummary, error)
}

// LambdaFunctions is the Lambda surface the orchestrator depends on.
type LambdaFunctions interface {
	GetFunction(ctx context.Context, functionName string) (*lambdatypes.FunctionConfiguration, error)
	AddPermission(ctx context.Context, functionName, apiID, sourceArn string) error
}

// LogGroups manages execution log groups.
type LogGroups interface {
	EnsureLogGroup(ctx context.Context, name string, retentionDays int32) error
	DeleteLogGroup(ctx context.Context, name string) error
}

// IntegrationService sequences the calls needed to create, delete, list,
// describe and test-invoke API Gateway endpoints backed by Lambda functions.
// It holds no state between calls; all side effects live in AWS.
type IntegrationService struct {
	APIGW     APIGateway
	HTTPAPIs  HTTPAPIs
	Lambda    LambdaFunctions
	Logs      LogGroups
	Region    string
	AccountID string
}

// New wires an IntegrationService from an authenticated AWSClient.
func New(c *client.AWSClient) *IntegrationService {
	return &IntegrationService{
		APIGW:     repository.NewAPIGWRepository(c),
		HTTPAPIs:  repository.NewAPIGWv2Repository(c),
		Lambda:    repository.NewLambdaRepository(c),
		Logs:      repository.NewCWLogsRepository(c),
		Region:    c.Region,
		AccountID: c.Identity.AccountID,
	}
}

// CreateAPIInput are the parameters for CreateAPI.
type CreateAPIInput struct {
	Name             string
	FunctionName     string
	Description      string
	Stage            string
	LogRetentionDays int32 // 0 skips execution log group setup
}

// CreateAPI provisions a REST API proxying to the named Lambda function:
// REST API, proxy resource and method, AWS_PROXY integration, invoke
// permission scoped to the API, stage deployment and, optionally, the
// execution log group. If anything fails after the REST API exists, the API
// is deleted again so a failed run leaves nothing behind.
func (s *IntegrationService) CreateAPI(ctx context.Context, in CreateAPIInput) (*types.CreateResult, error) {
	if in.Stage == "" {
		in.Stage = "prod"
	}

	fn, err := s.Lambda.GetFunction(ctx, in.FunctionName)
	if err != nil {
		return nil, fmt.Errorf("checking lambda function: %w", err)
	}
	if fn == nil {
		return nil, fmt.Errorf("lambda function %q: %w", in.FunctionName, ErrLambdaNotFound)
	}
	functionArn := aws.ToString(fn.FunctionArn)

	apiID, err := s.APIGW.CreateRestAPI(ctx, in.Name, in.Description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAPICreateFailed, err)
	}

	result, err := s.wireIntegration(ctx, apiID, functionArn, in)
	if err != nil {
		s.rollbackAPI(ctx, apiID)
		return nil, fmt.Errorf("%w: %w", ErrAPICreateFailed, err)
	}
	return result, nil
}

// wireIntegration performs every step after the REST API exists.
func (s *IntegrationService) wireIntegration(ctx context.Context, apiID, functionArn string, in CreateAPIInput) (*types.CreateResult, error) {
	rootID, err := s.APIGW.GetRootResourceID(ctx, apiID)
	if err != nil {
		return nil, err
	}

	resourceID, err := s.APIGW.CreateResource(ctx, apiID, rootID, in.FunctionName)
	if err != nil {
		return nil, err
	}

	if err := s.APIGW.PutProxyMethod(ctx, apiID, resourceID, "POST", functionArn); err != nil {
		return nil, err
	}

	sourceArn := fmt.Sprintf("arn:aws:execute-api:%s:%s:%s/*/*/%s", s.Region, s.AccountID, apiID, in.FunctionName)
	if err := s.Lambda.AddPermission(ctx, in.FunctionName, apiID, sourceArn); err != nil {
		return nil, err
	}

	deploymentID, err := s.APIGW.CreateDeployment(ctx, apiID, in.Stage)
	if err != nil {
		return nil, err
	}

	var logGroup string
	if in.LogRetentionDays > 0 {
		logGroup = fmt.Sprintf("API-Gateway-Execution-Logs_%s/%s", apiID, in.Stage)
		if err := s.Logs.EnsureLogGroup(ctx, logGroup, in.LogRetentionDays); err != nil {
			return nil, err
		}
	}

	return &types.CreateResult{
		APIID:        apiID,
		APIName:      in.Name,
		FunctionName: in.FunctionName,
		FunctionArn:  functionArn,
		InvokeURL:    fmt.Sprintf("https://%s.execute-api.%s.amazonaws.com/%s/%s", apiID, s.Region, in.Stage, in.FunctionName),
		DeploymentID: deploymentID,
		Stage:        in.Stage,
		LogGroup:     logGroup,
	}, nil
}

// rollbackAPI best-effort deletes a half-provisioned REST API.
func (s *IntegrationService) rollbackAPI(ctx context.Context, apiID string) {
	if err := s.APIGW.DeleteRestAPI(ctx, apiID); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to clean up API %s: %v\n", apiID, err)
	}
}

// DeleteAPI deletes the REST API and, when logGroup is set, best-effort
// removes the execution log group afterwards.
func (s *IntegrationService) DeleteAPI(ctx context.Context, apiID, logGroup string) error {
	if err := s.APIGW.DeleteRestAPI(ctx, apiID); err != nil {
		if repository.IsNotFound(err) {
			return fmt.Errorf("api %q: %w", apiID, ErrAPINotFound)
		}
		return err
	}

	if logGroup != "" {
		if err := s.Logs.DeleteLogGroup(ctx, logGroup); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete log group %s: %v\n", logGroup, err)
		}
	}
	return nil
}

// ListAPIs lists all REST APIs, plus HTTP (v2) APIs when includeHTTP is set.
func (s *IntegrationService) ListAPIs(ctx context.Context, includeHTTP bool) ([]types.APISummary, error) {
	apis, err := s.APIGW.ListRestAPIs(ctx)
	if err != nil {
		return nil, err
	}

	if includeHTTP {
		httpAPIs, err := s.HTTPAPIs.ListHTTPAPIs(ctx)
		if err != nil {
			return nil, err
		}
		apis = append(apis, httpAPIs...)
	}
	return apis, nil
}

// GetAPI fetches metadata and deployed stages for one REST API.
func (s *IntegrationService) GetAPI(ctx context.Context, apiID string) (*types.APIDetails, error) {
	details, err := s.APIGW.GetRestAPI(ctx, apiID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("api %q: %w", apiID, ErrAPINotFound)
		}
		return nil, err
	}

	stages, err := s.APIGW.GetStages(ctx, apiID)
	if err != nil {
		return nil, err
	}
	details.Stages = stages
	return details, nil
}

// TestInvokeInput are the parameters for TestInvoke.
type TestInvokeInput struct {
	APIID        string
	ResourcePath string
	HTTPMethod   string
	Body         string
}

// TestInvoke issues a synthetic invocation against a deployed resource and
// returns the status and body the backing function produced.
func (s *IntegrationService) TestInvoke(ctx context.Context, in TestInvokeInput) (*types.InvokeResult, error) {
	if in.HTTPMethod == "" {
		in.HTTPMethod = "POST"
	}
	if in.Body == "" {
		in.Body = "{}"
	}
	path := in.ResourcePath
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	resourceID, err := s.APIGW.FindResourceByPath(ctx, in.APIID, path)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("api %q: %w", in.APIID, ErrAPINotFound)
		}
		return nil, err
	}
	if resourceID == "" {
		return nil, fmt.Errorf("resource %q in api %q: %w", path, in.APIID, ErrResourceNotFound)
	}

	return s.APIGW.TestInvoke(ctx, in.APIID, resourceID, in.HTTPMethod, in.Body)
}
