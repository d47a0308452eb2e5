package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTaskServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TaskServiceError
		expected string
	}{
		{
			name:     "with underlying error",
			err:      &TaskServiceError{Operation: "create", Message: "save failed", Err: errors.New("boom")},
			expected: "task service create failed: save failed: boom",
		},
		{
			name:     "without underlying error",
			err:      &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"},
			expected: "task service create_service failed: taskStore cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTaskServiceError_Unwrap(t *testing.T) {
	wrapped := &TaskServiceError{Operation: "get", Message: "lookup", Err: domain.ErrTaskNotFound}

	assert.True(t, errors.Is(wrapped, domain.ErrTaskNotFound))
	assert.True(t, errors.Is(wrapped, domain.ErrNotFound))
	assert.Nil(t, (&TaskServiceError{Operation: "x"}).Unwrap())

	var target *TaskServiceError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "get", target.Operation)
}
