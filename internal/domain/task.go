package domain

import (
	"cloud.google.com/go/civil"
)

// Task is a unit of trackable work.
//
// A stored Task always has a non-empty ID, a non-blank Title and a valid
// Status. Description is nil when the task has none.
type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     civil.Date
}

// Clone returns a copy of the task that shares no memory with the original.
func (t Task) Clone() Task {
	c := t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return c
}

// NewTask carries the caller-supplied fields for creating a task.
// A nil Status means the default (StatusPending) applies.
type NewTask struct {
	Title       string
	Description *string
	Status      *TaskStatus
	DueDate     civil.Date
}

// TaskUpdate carries a partial update. Only fields that are set are applied.
//
// Description distinguishes "not supplied" (unset) from "clear the
// description" (set to nil).
type TaskUpdate struct {
	Title       Optional[string]
	Description Optional[*string]
	Status      Optional[TaskStatus]
	DueDate     Optional[civil.Date]
}

// IsEmpty reports whether the update supplies no fields at all.
func (u TaskUpdate) IsEmpty() bool {
	return !u.Title.IsSet() && !u.Description.IsSet() && !u.Status.IsSet() && !u.DueDate.IsSet()
}
