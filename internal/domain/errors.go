package domain

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidID        = errors.New("invalid id")
	ErrForbidden        = errors.New("access forbidden: you don't own this resource")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrPlanNotFound     = errors.New("training plan not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrMaxLogNotFound   = errors.New("max log not found")
)

// ValidationError reports an input that violates a documented precondition.
// It is returned as a value and inspected by the caller, never used for
// control flow inside the aggregation or detection code.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
