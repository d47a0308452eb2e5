package store

import (
	"context"

	"github.com/phrazzld/taskstore/internal/domain"
)

// Page is a bounded slice of a sorted task sequence together with a total count.
type Page struct {
	// Content holds the tasks on the page, in sort order.
	Content []domain.Task

	// Total is the number of elements the page was cut from.
	Total int
}

// TaskStore defines the interface for task data storage.
// Implementations must be safe for concurrent use and never return domain errors.
type TaskStore interface {
	// Save inserts the task or fully replaces the record with the same ID.
	Save(ctx context.Context, task domain.Task)

	// FindByID returns the task with the given ID, or false if there is none.
	FindByID(ctx context.Context, id string) (domain.Task, bool)

	// DeleteByID removes the task if present and reports whether it was.
	// Removing an absent ID is a no-op.
	DeleteByID(ctx context.Context, id string) bool

	// FindAllSorted returns every stored task ordered by the given keys.
	// Unrecognized fields are ignored.
	FindAllSorted(ctx context.Context, keys []SortKey) []domain.Task

	// FindPage sorts like FindAllSorted and returns the requested page.
	// Out-of-range pages yield empty content, never an error.
	FindPage(ctx context.Context, keys []SortKey, pageNumber, pageSize int) Page

	// Count returns the number of stored tasks.
	Count(ctx context.Context) int
}
