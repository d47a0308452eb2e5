// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidInput is returned when caller-supplied task data fails validation.
	// It is usually wrapped in a ValidationError naming the failing field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when an operation references an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTaskNotFound indicates that the requested task does not exist.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)

	// ErrInvalidStatus is returned when a status name is not part of the
	// TaskStatus vocabulary.
	ErrInvalidStatus = errors.New("invalid task status")
)

// ValidationError describes a single field that failed validation.
// It unwraps to ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns ErrInvalidInput so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
