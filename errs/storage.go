package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Storage-specific sentinel values
var (
	ErrStorageQuery       = errors.New("storage query failed")
	ErrStorageUnreachable = errors.New("storage unreachable")
	ErrStorageThrottled   = errors.New("storage request throttled")
	ErrBlobMissing        = errors.New("blob object missing")
	ErrStorageTimeout     = errors.New("storage timeout")
)

// NewStorageError wraps a DynamoDB or S3 failure with details about the
// attempted operation. The underlying SDK error strings are inspected to pick
// a status code that distinguishes transient capacity problems from genuine
// lookup failures.
func NewStorageError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "ResourceNotFoundException"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "NoSuchKey"), strings.Contains(errStr, "NotFound"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        ErrBlobMissing,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "ProvisionedThroughputExceeded"),
			strings.Contains(errStr, "ThrottlingException"),
			strings.Contains(errStr, "SlowDown"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStorageThrottled,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "context deadline exceeded"),
			strings.Contains(errStr, "RequestTimeout"):
			return &ApiErr{
				StatusCode: http.StatusGatewayTimeout,
				err:        ErrStorageTimeout,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"),
			strings.Contains(errStr, "no such host"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStorageUnreachable,
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageQuery,
		Details:    details,
		Cause:      cause,
	}
}
