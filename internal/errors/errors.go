// Package errors provides the structured error type shared by the gateway,
// the services and the HTTP handlers. The error code decides the HTTP status
// a handler answers with; the message is what the caller gets to see.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates a missing or empty caller-supplied value.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotFound indicates a well-formed identifier with no upstream match.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUpstream indicates a failed call to the upstream recipe API.
	ErrCodeUpstream ErrorCode = "UPSTREAM_FAILURE"
	// ErrCodeInternal indicates anything else.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError carries a code, a caller-facing message, the underlying
// cause and optional debugging context.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the outermost StructuredError in the chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// HTTPStatus maps an error code to the status a handler responds with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
