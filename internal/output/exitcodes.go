package output

import (
	"context"
	"errors"
)

// Exit codes:
// 0 = Success
// 1 = User error (bad flags, invalid configuration)
// 2 = System error (I/O failure, unparseable metadata file)
// 3 = No input (no .yml files under the input directory)
// 4 = No content (files loaded but no types found)
// 130 = Cancelled (interrupted)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitNoInput     = 3
	ExitNoContent   = 4
	ExitCancelled   = 130
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, missing required flags.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// NewNoInputError reports an input directory without metadata files (exit code 3).
func NewNoInputError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitNoInput,
		Message: message,
		Cause:   cause,
	}
}

// NewNoContentError reports a corpus without any type-level items (exit code 4).
func NewNoContentError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitNoContent,
		Message: message,
		Cause:   cause,
	}
}

// NewCancelledError reports an interrupted run (exit code 130).
func NewCancelledError(cause error) *ExitError {
	return &ExitError{
		Code:    ExitCancelled,
		Message: "cancelled",
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitCancelled for context cancellation, and
// ExitUserError for any other untyped error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}

	// Default to user error for untyped errors
	return ExitUserError
}
