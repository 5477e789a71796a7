// Package model defines the error vocabulary shared by the service, the CLI
// and the HTTP API.
package model

import "errors"

// Error codes used in API responses. Each maps to one HTTP status.
const (
	// 400 Bad Request
	ErrCodeBadRequest = "BAD_REQUEST"       // Malformed request syntax
	ErrCodeValidation = "VALIDATION_FAILED" // Input validation failed

	// 404 Not Found
	ErrCodeNotFound       = "NOT_FOUND"          // Resource not found
	ErrCodeEngineNotFound = "ENGINE_NOT_FOUND"   // Unsupported engine id
	ErrCodeNoQuery        = "NO_SEARCH_DETECTED" // Source URL carries no query

	// 405 Method Not Allowed
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// 500 Internal Server Error
	ErrCodeInternal = "SERVER_ERROR"

	// 503 Service Unavailable
	ErrCodeUnavailable = "UNAVAILABLE" // Backing store unreachable
)

// ErrorCodeToHTTP maps error codes to HTTP status codes
var ErrorCodeToHTTP = map[string]int{
	ErrCodeBadRequest:       400,
	ErrCodeValidation:       400,
	ErrCodeNotFound:         404,
	ErrCodeEngineNotFound:   404,
	ErrCodeNoQuery:          422,
	ErrCodeMethodNotAllowed: 405,
	ErrCodeInternal:         500,
	ErrCodeUnavailable:      503,
}

// HTTPStatusCode returns the HTTP status code for an error code
func HTTPStatusCode(code string) int {
	if status, ok := ErrorCodeToHTTP[code]; ok {
		return status
	}
	return 500
}

// HTTPToErrorCode maps HTTP status codes to default error codes
var HTTPToErrorCode = map[int]string{
	400: ErrCodeBadRequest,
	404: ErrCodeNotFound,
	405: ErrCodeMethodNotAllowed,
	422: ErrCodeNoQuery,
	500: ErrCodeInternal,
	503: ErrCodeUnavailable,
}

// ErrorCodeFromHTTP returns the default error code for an HTTP status
func ErrorCodeFromHTTP(status int) string {
	if code, ok := HTTPToErrorCode[status]; ok {
		return code
	}
	if status >= 400 && status < 500 {
		return ErrCodeBadRequest
	}
	return ErrCodeInternal
}

// Domain-specific errors
var (
	// Lookup errors
	ErrEngineNotFound = errors.New("unsupported search engine")

	// Query errors
	ErrNoQuery     = errors.New("no search detected")
	ErrEmptyQuery  = errors.New("query text cannot be empty")
	ErrInvalidURL  = errors.New("source url is empty")
	ErrInvalidItem = errors.New("not a search menu item")

	// Storage errors
	ErrNotFound      = errors.New("key not found")
	ErrStoreDisabled = errors.New("storage backend disabled")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CodeFor returns the API error code for err, defaulting to SERVER_ERROR.
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEngineNotFound):
		return ErrCodeEngineNotFound
	case errors.Is(err, ErrNoQuery):
		return ErrCodeNoQuery
	case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrInvalidURL), errors.Is(err, ErrInvalidItem):
		return ErrCodeValidation
	case errors.Is(err, ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, ErrStoreDisabled):
		return ErrCodeUnavailable
	case errors.Is(err, ErrInvalidConfig):
		return ErrCodeBadRequest
	}
	return ErrCodeInternal
}
