package api

import (
	"cloud.google.com/go/civil"
	"github.com/phrazzld/taskstore/internal/domain"
)

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string             `json:"title"       validate:"required"`
	Description *string            `json:"description"`
	Status      *domain.TaskStatus `json:"status"`
	DueDate     *civil.Date        `json:"dueDate"     validate:"required"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Absent fields are left unchanged. A null description clears it; null for
// any other field is treated as absent.
type UpdateTaskRequest struct {
	Title       OptionalField[string]            `json:"title"`
	Description OptionalField[string]            `json:"description"`
	Status      OptionalField[domain.TaskStatus] `json:"status"`
	DueDate     OptionalField[civil.Date]        `json:"dueDate"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     civil.Date        `json:"dueDate"`
}

// toNewTask converts the request into the service input.
func (r CreateTaskRequest) toNewTask() domain.NewTask {
	nt := domain.NewTask{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
	if r.DueDate != nil {
		nt.DueDate = *r.DueDate
	}
	return nt
}

// toTaskUpdate converts the request into a domain.TaskUpdate.
func (r UpdateTaskRequest) toTaskUpdate() domain.TaskUpdate {
	var upd domain.TaskUpdate
	if r.Title.HasValue() {
		upd.Title = domain.Some(r.Title.Value)
	}
	if r.Description.Present {
		if r.Description.Null {
			upd.Description = domain.Some[*string](nil)
		} else {
			desc := r.Description.Value
			upd.Description = domain.Some(&desc)
		}
	}
	if r.Status.HasValue() {
		upd.Status = domain.Some(r.Status.Value)
	}
	if r.DueDate.HasValue() {
		upd.DueDate = domain.Some(r.DueDate.Value)
	}
	return upd
}

// taskToResponse converts a domain.Task to its JSON representation.
func taskToResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

// tasksToResponse converts a slice of tasks, never returning nil.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
