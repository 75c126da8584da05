package service

import "errors"

// Orchestration error conditions surfaced to the CLI. AWS error codes are
// classified in the repository layer; these sentinels are what callers match.
var (
	ErrLambdaNotFound   = errors.New("lambda function not found")
	ErrAPINotFound      = errors.New("api not found")
	ErrResourceNotFound = errors.New("api resource not found")
	ErrAPICreateFailed  = errors.New("api creation failed")
)
