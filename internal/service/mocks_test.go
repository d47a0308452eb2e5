package service

import (
	"context"

	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/phrazzld/taskstore/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore is a mock implementation of store.TaskStore
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Save(ctx context.Context, task domain.Task) {
	m.Called(ctx, task)
}

func (m *MockTaskStore) FindByID(ctx context.Context, id string) (domain.Task, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Bool(1)
}

func (m *MockTaskStore) DeleteByID(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockTaskStore) FindAllSorted(ctx context.Context, keys []store.SortKey) []domain.Task {
	args := m.Called(ctx, keys)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks
}

func (m *MockTaskStore) FindPage(ctx context.Context, keys []store.SortKey, pageNumber, pageSize int) store.Page {
	args := m.Called(ctx, keys, pageNumber, pageSize)
	return args.Get(0).(store.Page)
}

func (m *MockTaskStore) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}
