package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/taskstore/internal/api/shared"
	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrTaskNotFound), http.StatusNotFound},
		{"validation error", domain.NewValidationError("title", "is required"), http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"not found", domain.ErrTaskNotFound, "Task not found"},
		{"validation", domain.NewValidationError("dueDate", "must be in the future"), "Invalid dueDate: must be in the future"},
		{"invalid status", domain.ErrInvalidStatus, "Invalid status"},
		{"internal detail hidden", errors.New("open /etc/secret: permission denied"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	type payload struct {
		DueDate string `validate:"required"`
		Size    int    `validate:"gte=1"`
	}

	err := shared.Validate.Struct(payload{Size: 1})
	assert.Equal(t, "Invalid dueDate: required field", SanitizeValidationError(err))

	err = shared.Validate.Struct(payload{DueDate: "x"})
	assert.Equal(t, "Invalid size: too small", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
