package validator

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is matched by every *ValidationError via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes a single rule failure for the value at Path.
type ValidationError struct {
	Path    string
	Message string
}

// NewValidationError returns a ValidationError for path. An empty path is
// replaced with DefaultPath.
func NewValidationError(path, message string) *ValidationError {
	if path == "" {
		path = DefaultPath
	}
	return &ValidationError{Path: path, Message: message}
}

// Error returns "{path}: {message}".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsValidationError extracts the *ValidationError from err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}

func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
