package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskstore/internal/api/shared"
	"github.com/phrazzld/taskstore/internal/config"
	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/phrazzld/taskstore/internal/platform/logger"
	"github.com/phrazzld/taskstore/internal/service"
)

// TotalCountHeader carries the total reported for a listing.
const TotalCountHeader = "X-Total-Count"

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	pageCfg     config.TasksConfig
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, pageCfg config.TasksConfig, l *slog.Logger) *TaskHandler {
	if l == nil {
		l = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		pageCfg:     pageCfg,
		logger:      l.With("component", "task_handler"),
	}
}

// Routes mounts the task endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Post("/", h.CreateTask)
	r.Get("/", h.ListTasks)
	r.Get("/{id}", h.GetTask)
	r.Put("/{id}", h.UpdateTask)
	r.Patch("/{id}", h.UpdateTask)
	r.Delete("/{id}", h.DeleteTask)
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskService.Create(r.Context(), req.toNewTask())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT and PATCH /tasks/{id} requests. Both apply a
// partial update.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	task, err := h.taskService.Update(r.Context(), id, req.toTaskUpdate())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTasks handles GET /tasks?status=&page=&size= requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseListQuery(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	page, err := h.taskService.ListByStatus(r.Context(), q.status, q.page, q.size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("listing tasks",
		slog.Int("page", q.page),
		slog.Int("size", q.size),
		slog.Int("total", page.Total))

	w.Header().Set(TotalCountHeader, strconv.Itoa(page.Total))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(page.Content))
}

type listQuery struct {
	status *domain.TaskStatus
	page   int
	size   int
}

var errInvalidQuery = errors.New("invalid query parameter")

// parseListQuery reads page, size and status. The returned error message is
// safe to show to clients.
func (h *TaskHandler) parseListQuery(r *http.Request) (listQuery, error) {
	values := r.URL.Query()
	q := listQuery{page: 0, size: h.pageCfg.DefaultPageSize}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || shared.Validate.Var(n, "gte=0") != nil {
			return q, fmt.Errorf("%w: page must be a non-negative integer", errInvalidQuery)
		}
		q.page = n
	}

	if raw := strings.TrimSpace(values.Get("size")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || shared.Validate.Var(n, fmt.Sprintf("gte=1,lte=%d", h.pageCfg.MaxPageSize)) != nil {
			return q, fmt.Errorf("%w: size must be between 1 and %d", errInvalidQuery, h.pageCfg.MaxPageSize)
		}
		q.size = n
	}

	if raw := values.Get("status"); strings.TrimSpace(raw) != "" {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			return q, fmt.Errorf("%w: unknown status %q", errInvalidQuery, raw)
		}
		q.status = &status
	}

	return q, nil
}
