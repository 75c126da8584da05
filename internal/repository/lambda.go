package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/raywall/apigw-lambda/internal/client"
)

// LambdaAPI is the subset of the Lambda client the repository uses.
type LambdaAPI interface {
	GetFunction(ctx context.Context, in *lambda.GetFunctionInput, opts ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	AddPermission(ctx context.Context, in *lambda.AddPermissionInput, opts ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
	RemovePermission(ctx context.Context, in *lambda.RemovePermissionInput, opts ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error)
}

// LambdaRepository encapsulates the Lambda operations the integration needs.
type LambdaRepository struct {
	api LambdaAPI
}

// NewLambdaRepository builds the repository from an AWSClient.
func NewLambdaRepository(c *client.AWSClient) *LambdaRepository {
	return &LambdaRepository{api: c.Lambda}
}

// GetFunction fetches a Lambda function configuration. Returns nil when the
// function does not exist.
func (r *LambdaRepository) GetFunction(ctx context.Context, functionName string) (*lambdatypes.FunctionConfiguration, error) {
	out, err := r.api.GetFunction(ctx, &lambda.GetFunctionInput{
		FunctionName: aws.String(functionName),
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetFunction failed: %w", err)
	}
	return out.Configuration, nil
}

// AddPermission grants API Gateway permission to invoke the function. The
// statement is keyed by API ID so reruns for the same API are idempotent.
func (r *LambdaRepository) AddPermission(ctx context.Context, functionName, apiID, sourceArn string) error {
	statementID := fmt.Sprintf("apigateway-%s", apiID)

	_, err := r.api.AddPermission(ctx, &lambda.AddPermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(statementID),
		Action:       aws.String("lambda:InvokeFunction"),
		Principal:    aws.String("apigateway.amazonaws.com"),
		SourceArn:    aws.String(sourceArn),
	})
	if err != nil && !IsConflict(err) {
		return fmt.Errorf("AddPermission failed: %w", err)
	}
	return nil
}

// RemovePermission removes the API-scoped invoke grant.
func (r *LambdaRepository) RemovePermission(ctx context.Context, functionName, apiID string) error {
	statementID := fmt.Sprintf("apigateway-%s", apiID)

	_, err := r.api.RemovePermission(ctx, &lambda.RemovePermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(statementID),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("RemovePermission failed: %w", err)
	}
	return nil
}
