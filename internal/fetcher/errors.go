package fetcher

import (
	"fmt"
	"net/http"
)

// ErrorType represents the category of error that occurred during a fetch operation
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, timeout)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeUpstreamHTTP indicates a non-2xx status from the upstream provider
	ErrorTypeUpstreamHTTP ErrorType = "upstream_http"
	// ErrorTypeFormat indicates the response was received but the envelope was
	// malformed or carried a failure flag
	ErrorTypeFormat ErrorType = "format"
)

// UpstreamError represents a structured error from an upstream fetch operation
type UpstreamError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error; timeouts land here too
func NewNetworkError(cause error) *UpstreamError {
	return &UpstreamError{
		Type:    ErrorTypeNetwork,
		Message: fmt.Sprintf("upstream request failed: %v", cause),
		Cause:   cause,
	}
}

// NewUpstreamHTTPError creates an error for a non-2xx upstream status.
// statusText may be empty; the standard text for the code is used then.
func NewUpstreamHTTPError(statusCode int, statusText string) *UpstreamError {
	if statusText == "" {
		statusText = http.StatusText(statusCode)
	}
	return &UpstreamError{
		Type:       ErrorTypeUpstreamHTTP,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("upstream returned HTTP %d %s", statusCode, statusText),
	}
}

// NewFormatError creates an error for a malformed or failure-flagged envelope
func NewFormatError(message string) *UpstreamError {
	return &UpstreamError{
		Type:    ErrorTypeFormat,
		Message: message,
	}
}
