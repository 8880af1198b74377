package errors

import (
	"errors"
	"fmt"
)

// Exit codes for forage-snippets
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitConfigError     = 2
	ExitValidationError = 3
	ExitOutputError     = 4
	ExitPreviewError    = 5
)

// ForageError is the base error type for forage-snippets
type ForageError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ForageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ForageError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ForageError) ExitCode() int {
	return e.Code
}

// New creates a new ForageError
func New(code int, message string) *ForageError {
	return &ForageError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ForageError
func Wrap(code int, message string, cause error) *ForageError {
	return &ForageError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ForageError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ForageError {
	return New(ExitValidationError, message)
}

// InvalidFlag returns a validation error for a bad flag value
func InvalidFlag(flag, value, reason string) *ForageError {
	return New(ExitValidationError, fmt.Sprintf("invalid --%s %q: %s", flag, value, reason))
}

// OutputError returns an error for failures writing snippets
func OutputError(op string, cause error) *ForageError {
	return Wrap(ExitOutputError, fmt.Sprintf("output %s failed", op), cause)
}

// PreviewError returns an error for a failed terminal preview
func PreviewError(cause error) *ForageError {
	return Wrap(ExitPreviewError, "preview failed", cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var forageErr *ForageError
	if errors.As(err, &forageErr) {
		return forageErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
