package repository

import (
	"errors"

	"github.com/aws/smithy-go"
)

// IsNotFound reports whether err is an AWS not-found error for any service.
func IsNotFound(err error) bool {
	return isAPIErrorCode(err, "NotFoundException", "ResourceNotFoundException")
}

// IsConflict reports whether err is an AWS conflict error, which the
// provisioning flow treats as "already there".
func IsConflict(err error) bool {
	return isAPIErrorCode(err, "ConflictException", "ResourceConflictException")
}

func isAlreadyExists(err error) bool {
	return isAPIErrorCode(err, "ResourceAlreadyExistsException")
}

// isAPIErrorCode checks the smithy APIError code against the given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}
	return false
}
