// Package domain defines the core domain models for sleurencli.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a client-side failure with a structured error code.
// Status carries the HTTP status code when the failure came from the service.
type DomainError struct {
	Code    string // Error code (e.g., "SL-HTTP-5020")
	Message string // Human-readable message
	Details string // Optional additional details
	Status  int    // HTTP status code, 0 if not applicable
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Details != "" {
		msg = msg + ": " + e.Details
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	c := *e
	c.Details = details
	return &c
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Cause = cause
	return &c
}

// WithStatus returns a copy of the error carrying an HTTP status code.
func (e *DomainError) WithStatus(status int) *DomainError {
	c := *e
	c.Status = status
	return &c
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// StatusCode extracts the HTTP status code carried by err, or 0.
func StatusCode(err error) int {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Status
	}
	return 0
}

var (
	// ErrAuthMissing indicates no API key is configured.
	ErrAuthMissing = NewDomainError("SL-AUTH-4010", "api key not configured")

	// ErrTransport indicates a non-200 response or a transport-level failure.
	ErrTransport = NewDomainError("SL-HTTP-5020", "request failed")

	// ErrDataShape indicates the response did not hold the expected collection.
	ErrDataShape = NewDomainError("SL-DATA-5021", "unexpected response shape")

	// ErrReadOnly indicates a mutation was attempted in read-only mode.
	ErrReadOnly = NewDomainError("SL-MUT-4030", "read-only mode, mutation blocked")

	// ErrNoTarget indicates an update or remove had nothing to act on.
	ErrNoTarget = NewDomainError("SL-ARG-4000", "no target specified")
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitGeneric     = 1
	ExitAuthMissing = 3
	ExitTransport   = 4
	ExitDataShape   = 5
	ExitReadOnly    = 6
	ExitNoTarget    = 7
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrAuthMissing):
		return ExitAuthMissing
	case errors.Is(err, ErrTransport):
		return ExitTransport
	case errors.Is(err, ErrDataShape):
		return ExitDataShape
	case errors.Is(err, ErrReadOnly):
		return ExitReadOnly
	case errors.Is(err, ErrNoTarget):
		return ExitNoTarget
	default:
		return ExitGeneric
	}
}
