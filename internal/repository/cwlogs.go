package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"

	"github.com/raywall/apigw-lambda/internal/client"
)

// CloudWatchLogsAPI is the subset of the CloudWatch Logs client the repository uses.
type CloudWatchLogsAPI interface {
	CreateLogGroup(ctx context.Context, in *cw.CreateLogGroupInput, opts ...func(*cw.Options)) (*cw.CreateLogGroupOutput, error)
	PutRetentionPolicy(ctx context.Context, in *cw.PutRetentionPolicyInput, opts ...func(*cw.Options)) (*cw.PutRetentionPolicyOutput, error)
	DeleteLogGroup(ctx context.Context, in *cw.DeleteLogGroupInput, opts ...func(*cw.Options)) (*cw.DeleteLogGroupOutput, error)
}

// CWLogsRepository manages execution log groups for deployed APIs.
type CWLogsRepository struct {
	api CloudWatchLogsAPI
}

// NewCWLogsRepository builds the repository from an AWSClient.
func NewCWLogsRepository(c *client.AWSClient) *CWLogsRepository {
	return &CWLogsRepository{api: c.CWLogs}
}

// EnsureLogGroup creates a log group if it does not exist and sets retention.
// Setting retention may race group propagation, so it retries a few times.
func (r *CWLogsRepository) EnsureLogGroup(ctx context.Context, name string, retentionDays int32) error {
	_, err := r.api.CreateLogGroup(ctx, &cw.CreateLogGroupInput{
		LogGroupName: aws.String(name),
	})
	if err != nil && !isAlreadyExists(err) {
		return fmt.Errorf("CreateLogGroup: %w", err)
	}

	err = retry(ctx, 6, 300*time.Millisecond, func() error {
		_, perr := r.api.PutRetentionPolicy(ctx, &cw.PutRetentionPolicyInput{
			LogGroupName:    aws.String(name),
			RetentionInDays: aws.Int32(retentionDays),
		})
		// Retention already set counts as success.
		if isAPIErrorCode(perr, "InvalidParameterException") {
			return nil
		}
		return perr
	})
	if err != nil {
		return fmt.Errorf("PutRetentionPolicy failed after retries: %w", err)
	}
	return nil
}

// DeleteLogGroup deletes the log group; absence is not an error.
func (r *CWLogsRepository) DeleteLogGroup(ctx context.Context, name string) error {
	_, err := r.api.DeleteLogGroup(ctx, &cw.DeleteLogGroupInput{
		LogGroupName: aws.String(name),
	})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("DeleteLogGroup failed: %w", err)
	}
	return nil
}

// retry runs fn with exponential backoff, stopping early on context cancel.
func retry(ctx context.Context, attempts int, initial time.Duration, fn func() error) error {
	sleep := initial
	var lastErr error
	for i := 0; i < attempts; i++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
			sleep = sleep * 2
		}
	}
	return lastErr
}
