package streetview

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates the client was constructed without an API key.
var ErrMissingAPIKey = errors.New("streetview: API key is empty")

// APIError is an upstream failure: a non-success HTTP status, or an error
// payload embedded in an HTTP 200 response (the Street View API reports some
// failures this way when return_error_code is set).
type APIError struct {
	// StatusCode is the HTTP status of the response, when relevant.
	StatusCode int
	// Status is the API-level status string ("ZERO_RESULTS", "NOT_FOUND", ...),
	// when the failure came from a parsed payload.
	Status string
	// Message is the human-readable error message from the payload, if any.
	Message string
}

func (e *APIError) Error() string {
	switch {
	case e.Status != "" && e.Message != "":
		return fmt.Sprintf("streetview api error: %s (%s)", e.Status, e.Message)
	case e.Status != "":
		return fmt.Sprintf("streetview api error: %s", e.Status)
	case e.Message != "":
		return fmt.Sprintf("streetview api error: %s (http %d)", e.Message, e.StatusCode)
	default:
		return fmt.Sprintf("streetview api error: http %d", e.StatusCode)
	}
}

// ValidationError reports a caller contract violation detected before any
// network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "streetview: " + e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
