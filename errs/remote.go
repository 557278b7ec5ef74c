package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Remote content-API errors
var (
	ErrRemoteAPI      = errors.New("content API request failed")
	ErrTokenSigning   = errors.New("token signing failed")
	ErrNotInitialized = errors.New("client not initialized")
)

// NewRemoteAPIError captures a non-success response from the external content
// API, preserving the upstream status code and response body so callers can
// display what actually went wrong.
func NewRemoteAPIError(statusCode int, body string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        ErrRemoteAPI,
		Details:    fmt.Sprintf("status %d: %s", statusCode, body),
	}
}

func NewTokenSigningError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrTokenSigning,
		Cause:      cause,
	}
}
