package memory

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/phrazzld/taskstore/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseDate = civil.Date{Year: 2030, Month: 6, Day: 1}

func newTask(id, title string, status domain.TaskStatus, dueOffset int) domain.Task {
	return domain.Task{
		ID:      id,
		Title:   title,
		Status:  status,
		DueDate: baseDate.AddDays(dueOffset),
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestMemoryTaskStore_SaveFindDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore(nil)

	_, ok := s.FindByID(ctx, "missing")
	assert.False(t, ok, "lookup of an absent id should report not found")

	desc := "first"
	task := newTask("a", "Alpha", domain.StatusPending, 1)
	task.Description = &desc
	s.Save(ctx, task)

	got, ok := s.FindByID(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, task, got)

	t.Run("returned tasks do not alias stored state", func(t *testing.T) {
		*got.Description = "mutated"
		again, ok := s.FindByID(ctx, "a")
		require.True(t, ok)
		assert.Equal(t, "first", *again.Description)

		desc = "mutated through caller"
		again, _ = s.FindByID(ctx, "a")
		assert.Equal(t, "first", *again.Description)
	})

	t.Run("save replaces existing record", func(t *testing.T) {
		replacement := newTask("a", "Alpha v2", domain.StatusDone, 5)
		s.Save(ctx, replacement)
		s.Save(ctx, replacement)

		got, ok := s.FindByID(ctx, "a")
		require.True(t, ok)
		assert.Equal(t, replacement, got)
		assert.Equal(t, 1, s.Count(ctx))
	})

	t.Run("delete", func(t *testing.T) {
		assert.True(t, s.DeleteByID(ctx, "a"))
		assert.False(t, s.DeleteByID(ctx, "a"), "deleting an absent id is a no-op")
		_, ok := s.FindByID(ctx, "a")
		assert.False(t, ok)
		assert.Equal(t, 0, s.Count(ctx))
	})
}

func TestMemoryTaskStore_FindAllSorted(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore(nil)

	s.Save(ctx, newTask("t1", "bravo", domain.StatusDone, 3))
	s.Save(ctx, newTask("t2", "alpha", domain.StatusPending, 3))
	s.Save(ctx, newTask("t3", "charlie", domain.StatusInProgress, 1))
	s.Save(ctx, newTask("t4", "", domain.StatusPending, 2))

	tests := []struct {
		name string
		keys []store.SortKey
		want []string
	}{
		{
			name: "no keys keeps insertion order",
			keys: nil,
			want: []string{"t1", "t2", "t3", "t4"},
		},
		{
			name: "due date ascending with insertion tie-break",
			keys: []store.SortKey{store.Asc(store.FieldDueDate)},
			want: []string{"t3", "t4", "t1", "t2"},
		},
		{
			name: "due date descending",
			keys: []store.SortKey{store.Desc(store.FieldDueDate)},
			want: []string{"t1", "t2", "t4", "t3"},
		},
		{
			name: "title ascending puts missing title last",
			keys: []store.SortKey{store.Asc(store.FieldTitle)},
			want: []string{"t2", "t1", "t3", "t4"},
		},
		{
			name: "title descending reverses the whole order",
			keys: []store.SortKey{store.Desc(store.FieldTitle)},
			want: []string{"t4", "t3", "t1", "t2"},
		},
		{
			name: "status uses declaration order",
			keys: []store.SortKey{store.Asc(store.FieldStatus)},
			want: []string{"t2", "t4", "t3", "t1"},
		},
		{
			name: "multi-key due date then title",
			keys: []store.SortKey{store.Asc(store.FieldDueDate), store.Asc(store.FieldTitle)},
			want: []string{"t3", "t4", "t2", "t1"},
		},
		{
			name: "multi-key status descending then due date",
			keys: []store.SortKey{store.Desc(store.FieldStatus), store.Asc(store.FieldDueDate)},
			want: []string{"t1", "t3", "t4", "t2"},
		},
		{
			name: "unknown field is ignored",
			keys: []store.SortKey{store.Asc("priority"), store.Asc(store.FieldDueDate)},
			want: []string{"t3", "t4", "t1", "t2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(s.FindAllSorted(ctx, tc.keys)))
		})
	}
}

func TestMemoryTaskStore_FindPage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore(nil)
	for i := 5; i >= 1; i-- {
		s.Save(ctx, newTask(fmt.Sprintf("t%d", i), fmt.Sprintf("task %d", i), domain.StatusPending, i))
	}
	byDue := []store.SortKey{store.Asc(store.FieldDueDate)}

	tests := []struct {
		name      string
		page      int
		size      int
		wantIDs   []string
		wantTotal int
	}{
		{name: "first page", page: 0, size: 2, wantIDs: []string{"t1", "t2"}, wantTotal: 5},
		{name: "middle page", page: 1, size: 2, wantIDs: []string{"t3", "t4"}, wantTotal: 5},
		{name: "partial last page", page: 2, size: 2, wantIDs: []string{"t5"}, wantTotal: 5},
		{name: "past the end", page: 3, size: 2, wantIDs: []string{}, wantTotal: 5},
		{name: "size larger than store", page: 0, size: 50, wantIDs: []string{"t1", "t2", "t3", "t4", "t5"}, wantTotal: 5},
		{name: "zero size", page: 0, size: 0, wantIDs: []string{}, wantTotal: 5},
		{name: "negative page", page: -1, size: 2, wantIDs: []string{}, wantTotal: 5},
		{name: "huge page number", page: math.MaxInt, size: 2, wantIDs: []string{}, wantTotal: 5},
		{name: "huge size", page: 0, size: math.MaxInt, wantIDs: []string{"t1", "t2", "t3", "t4", "t5"}, wantTotal: 5},
		{name: "huge page and size", page: math.MaxInt, size: math.MaxInt, wantIDs: []string{}, wantTotal: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := s.FindPage(ctx, byDue, tc.page, tc.size)
			assert.Equal(t, tc.wantIDs, ids(page.Content))
			assert.Equal(t, tc.wantTotal, page.Total)
		})
	}

	t.Run("empty store", func(t *testing.T) {
		page := NewMemoryTaskStore(nil).FindPage(ctx, byDue, 0, 10)
		assert.Empty(t, page.Content)
		assert.Zero(t, page.Total)
	})
}

func TestMemoryTaskStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore(nil)

	const workers = 16
	const perWorker = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("w%d-%d", w, i)
				s.Save(ctx, newTask(id, id, domain.StatusPending, i%7))
				_, _ = s.FindByID(ctx, id)
				_ = s.FindPage(ctx, []store.SortKey{store.Asc(store.FieldDueDate)}, 0, 10)
				if i%2 == 0 {
					s.DeleteByID(ctx, id)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker/2, s.Count(ctx))
}
