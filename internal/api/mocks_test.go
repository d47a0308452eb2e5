package api

import (
	"context"

	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/phrazzld/taskstore/internal/store"
)

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	CreateFn       func(ctx context.Context, req domain.NewTask) (domain.Task, error)
	GetFn          func(ctx context.Context, id string) (domain.Task, error)
	UpdateFn       func(ctx context.Context, id string, upd domain.TaskUpdate) (domain.Task, error)
	DeleteFn       func(ctx context.Context, id string) error
	ListByStatusFn func(ctx context.Context, status *domain.TaskStatus, pageNumber, pageSize int) (store.Page, error)
}

// Create implements service.TaskService
func (m *MockTaskService) Create(ctx context.Context, req domain.NewTask) (domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	return domain.Task{}, nil
}

// Get implements service.TaskService
func (m *MockTaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return domain.Task{}, nil
}

// Update implements service.TaskService
func (m *MockTaskService) Update(ctx context.Context, id string, upd domain.TaskUpdate) (domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, upd)
	}
	return domain.Task{}, nil
}

// Delete implements service.TaskService
func (m *MockTaskService) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// ListByStatus implements service.TaskService
func (m *MockTaskService) ListByStatus(
	ctx context.Context,
	status *domain.TaskStatus,
	pageNumber, pageSize int,
) (store.Page, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, pageNumber, pageSize)
	}
	return store.Page{}, nil
}
