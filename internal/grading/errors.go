package grading

import "errors"

// ErrValidation is the kind shared by every ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError reports a violated grading invariant.
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
