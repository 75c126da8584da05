package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLambda struct {
	getFunction      func(*lambda.GetFunctionInput) (*lambda.GetFunctionOutput, error)
	addPermission    func(*lambda.AddPermissionInput) (*lambda.AddPermissionOutput, error)
	removePermission func(*lambda.RemovePermissionInput) (*lambda.RemovePermissionOutput, error)
}

func (m *mockLambda) GetFunction(_ context.Context, in *lambda.GetFunctionInput, _ ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	if m.getFunction != nil {
		return m.getFunction(in)
	}
	return &lambda.GetFunctionOutput{}, nil
}

func (m *mockLambda) AddPermission(_ context.Context, in *lambda.AddPermissionInput, _ ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error) {
	if m.addPermission != nil {
		return m.addPermission(in)
	}
	return &lambda.AddPermissionOutput{}, nil
}

func (m *mockLambda) RemovePermission(_ context.Context, in *lambda.RemovePermissionInput, _ ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error) {
	if m.removePermission != nil {
		return m.removePermission(in)
	}
	return &lambda.RemovePermissionOutput{}, nil
}

func TestGetFunctionFound(t *testing.T) {
	repo := &LambdaRepository{api: &mockLambda{
		getFunction: func(in *lambda.GetFunctionInput) (*lambda.GetFunctionOutput, error) {
			assert.Equal(t, "orders", aws.ToString(in.FunctionName))
			return &lambda.GetFunctionOutput{Configuration: &lambdatypes.FunctionConfiguration{
				FunctionArn: aws.String("arn:aws:lambda:us-east-1:123456789012:function:orders"),
			}}, nil
		},
	}}

	fn, err := repo.GetFunction(context.Background(), "orders")
	require.NoError(t, err)
	require.NotNil(t, fn)
	assert.Contains(t, aws.ToString(fn.FunctionArn), "function:orders")
}

func TestGetFunctionNotFound(t *testing.T) {
	repo := &LambdaRepository{api: &mockLambda{
		getFunction: func(*lambda.GetFunctionInput) (*lambda.GetFunctionOutput, error) {
			return nil, apiError("ResourceNotFoundException")
		},
	}}

	fn, err := repo.GetFunction(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, fn)
}

func TestAddPermissionStatementKeyedByAPI(t *testing.T) {
	var got *lambda.AddPermissionInput
	repo := &LambdaRepository{api: &mockLambda{
		addPermission: func(in *lambda.AddPermissionInput) (*lambda.AddPermissionOutput, error) {
			got = in
			return &lambda.AddPermissionOutput{}, nil
		},
	}}

	sourceArn := "arn:aws:execute-api:us-east-1:123456789012:abc123/*/*/orders"
	err := repo.AddPermission(context.Background(), "orders", "abc123", sourceArn)
	require.NoError(t, err)

	assert.Equal(t, "apigateway-abc123", aws.ToString(got.StatementId))
	assert.Equal(t, "lambda:InvokeFunction", aws.ToString(got.Action))
	assert.Equal(t, "apigateway.amazonaws.com", aws.ToString(got.Principal))
	assert.Equal(t, sourceArn, aws.ToString(got.SourceArn))
}

func TestAddPermissionIdempotent(t *testing.T) {
	repo := &LambdaRepository{api: &mockLambda{
		addPermission: func(*lambda.AddPermissionInput) (*lambda.AddPermissionOutput, error) {
			return nil, apiError("ResourceConflictException")
		},
	}}

	err := repo.AddPermission(context.Background(), "orders", "abc123", "arn")
	assert.NoError(t, err)
}

func TestRemovePermissionMissingStatementOK(t *testing.T) {
	repo := &LambdaRepository{api: &mockLambda{
		removePermission: func(*lambda.RemovePermissionInput) (*lambda.RemovePermissionOutput, error) {
			return nil, apiError("ResourceNotFoundException")
		},
	}}

	err := repo.RemovePermission(context.Background(), "orders", "abc123")
	assert.NoError(t, err)
}
