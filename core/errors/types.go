// ABOUTME: Custom error types for the core business logic
// ABOUTME: Distinguishes transport failures from parse failures for better API responses

package errors

import (
	"errors"
	"fmt"
)

// TransportError reports that a network fetch failed after the whole
// fallback chain was exhausted. Individual transport failures are
// recovered locally by advancing the chain and never surface as errors.
type TransportError struct {
	URL      string
	Attempts int
	Last     error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("all %d transports failed for %s: %v", e.Attempts, e.URL, e.Last)
}

// Unwrap exposes the last underlying failure
func (e *TransportError) Unwrap() error {
	return e.Last
}

// ParseError reports a structurally malformed document (not XML/JSON at
// all). It aborts model extraction entirely; data-shape problems inside
// a well-formed document never produce it.
type ParseError struct {
	Format  string
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s format: %s", e.Format, e.Message)
}

// ValidationError represents a request validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
