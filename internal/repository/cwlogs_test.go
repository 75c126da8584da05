package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCWLogs struct {
	createLogGroup     func(*cw.CreateLogGroupInput) (*cw.CreateLogGroupOutput, error)
	putRetentionPolicy func(*cw.PutRetentionPolicyInput) (*cw.PutRetentionPolicyOutput, error)
	deleteLogGroup     func(*cw.DeleteLogGroupInput) (*cw.DeleteLogGroupOutput, error)
}

func (m *mockCWLogs) CreateLogGroup(_ context.Context, in *cw.CreateLogGroupInput, _ ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error) {
	if m.createLogGroup != nil {
		return m.createLogGroup(in)
	}
	return &cw.CreateLogGroupOutput{}, nil
}

func (m *mockCWLogs) PutRetentionPolicy(_ context.Context, in *cw.PutRetentionPolicyInput, _ ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error) {
	if m.putRetentionPolicy != nil {
		return m.putRetentionPolicy(in)
	}
	return &cw.PutRetentionPolicyOutput{}, nil
}

func (m *mockCWLogs) DeleteLogGroup(_ context.Context, in *cw.DeleteLogGroupInput, _ ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error) {
	if m.deleteLogGroup != nil {
		return m.deleteLogGroup(in)
	}
	return &cw.DeleteLogGroupOutput{}, nil
}

func TestEnsureLogGroup(t *testing.T) {
	var gotRetention int32
	repo := &CWLogsRepository{api: &mockCWLogs{
		putRetentionPolicy: func(in *cw.PutRetentionPolicyInput) (*cw.PutRetentionPolicyOutput, error) {
			gotRetention = aws.ToInt32(in.RetentionInDays)
			return &cw.PutRetentionPolicyOutput{}, nil
		},
	}}

	err := repo.EnsureLogGroup(context.Background(), "API-Gateway-Execution-Logs_abc123/prod", 14)
	require.NoError(t, err)
	assert.Equal(t, int32(14), gotRetention)
}

func TestEnsureLogGroupAlreadyExists(t *testing.T) {
	repo := &CWLogsRepository{api: &mockCWLogs{
		createLogGroup: func(*cw.CreateLogGroupInput) (*cw.CreateLogGroupOutput, error) {
			return nil, apiError("ResourceAlreadyExistsException")
		},
	}}

	err := repo.EnsureLogGroup(context.Background(), "group", 14)
	assert.NoError(t, err)
}

func TestEnsureLogGroupRetentionAlreadySet(t *testing.T) {
	repo := &CWLogsRepository{api: &mockCWLogs{
		putRetentionPolicy: func(*cw.PutRetentionPolicyInput) (*cw.PutRetentionPolicyOutput, error) {
			return nil, apiError("InvalidParameterException")
		},
	}}

	err := repo.EnsureLogGroup(context.Background(), "group", 14)
	assert.NoError(t, err)
}

func TestDeleteLogGroupMissingOK(t *testing.T) {
	repo := &CWLogsRepository{api: &mockCWLogs{
		deleteLogGroup: func(*cw.DeleteLogGroupInput) (*cw.DeleteLogGroupOutput, error) {
			return nil, apiError("ResourceNotFoundException")
		},
	}}

	err := repo.DeleteLogGroup(context.Background(), "group")
	assert.NoError(t, err)
}
