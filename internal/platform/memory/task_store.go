package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/phrazzld/taskstore/internal/platform/logger"
	"github.com/phrazzld/taskstore/internal/store"
)

// record is a stored task plus the sequence number of its first insertion.
// Ties in every sort key fall back to insertion order.
type record struct {
	task domain.Task
	seq  uint64
}

// MemoryTaskStore implements store.TaskStore with a map guarded by a RWMutex.
type MemoryTaskStore struct {
	mu      sync.RWMutex
	tasks   map[string]record
	nextSeq uint64
	logger  *slog.Logger
}

var _ store.TaskStore = (*MemoryTaskStore)(nil)

// NewMemoryTaskStore creates an empty MemoryTaskStore.
func NewMemoryTaskStore(l *slog.Logger) *MemoryTaskStore {
	if l == nil {
		l = slog.Default()
	}
	return &MemoryTaskStore{
		tasks:  make(map[string]record),
		logger: l.With("component", "memory_task_store"),
	}
}

// Save inserts the task or replaces the record with the same ID.
func (s *MemoryTaskStore) Save(ctx context.Context, task domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.tasks[task.ID]
	if !exists {
		s.nextSeq++
		rec.seq = s.nextSeq
	}
	rec.task = task.Clone()
	s.tasks[task.ID] = rec
}

// FindByID returns a copy of the task with the given ID.
func (s *MemoryTaskStore) FindByID(ctx context.Context, id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return rec.task.Clone(), true
}

// DeleteByID removes the task if present and reports whether it was.
func (s *MemoryTaskStore) DeleteByID(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Count returns the number of stored tasks.
func (s *MemoryTaskStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// FindAllSorted returns every stored task ordered by keys.
func (s *MemoryTaskStore) FindAllSorted(ctx context.Context, keys []store.SortKey) []domain.Task {
	records := s.sorted(keys)

	tasks := make([]domain.Task, len(records))
	for i, rec := range records {
		tasks[i] = rec.task
	}
	return tasks
}

// FindPage returns the slice [pageNumber*pageSize, pageNumber*pageSize+pageSize)
// of the sorted sequence, clamped to its bounds. Total is the number of stored
// tasks the page was cut from.
func (s *MemoryTaskStore) FindPage(
	ctx context.Context,
	keys []store.SortKey,
	pageNumber, pageSize int,
) store.Page {
	records := s.sorted(keys)
	total := len(records)

	from, to := pageBounds(total, pageNumber, pageSize)
	content := make([]domain.Task, 0, to-from)
	for _, rec := range records[from:to] {
		content = append(content, rec.task)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("page read",
		"page", pageNumber,
		"size", pageSize,
		"returned", len(content),
		"total", total)

	return store.Page{Content: content, Total: total}
}

// sorted snapshots the records under the read lock and sorts the snapshot.
func (s *MemoryTaskStore) sorted(keys []store.SortKey) []record {
	s.mu.RLock()
	records := make([]record, 0, len(s.tasks))
	for _, rec := range s.tasks {
		rec.task = rec.task.Clone()
		records = append(records, rec)
	}
	s.mu.RUnlock()

	cmp := comparator(keys)
	slices.SortFunc(records, func(a, b record) int {
		if c := cmp(a.task, b.task); c != 0 {
			return c
		}
		return compareSeq(a.seq, b.seq)
	})
	return records
}

// pageBounds computes slice bounds without overflowing on huge page numbers.
func pageBounds(total, pageNumber, pageSize int) (int, int) {
	if pageSize <= 0 || pageNumber < 0 || total == 0 {
		return 0, 0
	}
	if pageNumber > (total-1)/pageSize {
		return total, total
	}
	from := pageNumber * pageSize
	if pageSize > total-from {
		return from, total
	}
	return from, from + pageSize
}

type taskComparator func(a, b domain.Task) int

// comparator composes the keys into one lexicographic comparator.
// Unrecognized fields contribute nothing.
func comparator(keys []store.SortKey) taskComparator {
	cmps := make([]taskComparator, 0, len(keys))
	for _, key := range keys {
		var c taskComparator
		switch key.Field {
		case store.FieldDueDate:
			c = func(a, b domain.Task) int { return compareDates(a.DueDate, b.DueDate) }
		case store.FieldTitle:
			c = func(a, b domain.Task) int { return compareTitles(a.Title, b.Title) }
		case store.FieldStatus:
			c = func(a, b domain.Task) int { return a.Status.Compare(b.Status) }
		default:
			continue
		}
		if key.Direction == store.Descending {
			asc := c
			c = func(a, b domain.Task) int { return asc(b, a) }
		}
		cmps = append(cmps, c)
	}

	return func(a, b domain.Task) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// compareTitles orders titles lexicographically with missing titles last.
func compareTitles(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}

func compareSeq(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
