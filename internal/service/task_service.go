package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/phrazzld/taskstore/internal/domain"
	"github.com/phrazzld/taskstore/internal/platform/logger"
	"github.com/phrazzld/taskstore/internal/store"
)

// TaskService provides task-related operations.
type TaskService interface {
	// Create validates the new task, assigns it a fresh ID and stores it.
	Create(ctx context.Context, req domain.NewTask) (domain.Task, error)

	// Get returns the task with the given ID or domain.ErrTaskNotFound.
	Get(ctx context.Context, id string) (domain.Task, error)

	// Update applies the fields set in upd to the task with the given ID.
	Update(ctx context.Context, id string, upd domain.TaskUpdate) (domain.Task, error)

	// Delete removes the task with the given ID or returns domain.ErrTaskNotFound.
	Delete(ctx context.Context, id string) error

	// ListByStatus returns one page of tasks ordered by due date, optionally
	// narrowed to a single status.
	ListByStatus(ctx context.Context, status *domain.TaskStatus, pageNumber, pageSize int) (store.Page, error)
}

// Option configures a task service.
type Option func(*taskServiceImpl)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(s *taskServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the location whose calendar defines "today".
func WithLocation(loc *time.Location) Option {
	return func(s *taskServiceImpl) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithIDGenerator replaces the UUID-based task ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *taskServiceImpl) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store    store.TaskStore
	logger   *slog.Logger
	now      func() time.Time
	location *time.Location
	newID    func() string
	locks    keyedMutex
}

// NewTaskService creates a new TaskService.
// It returns an error if the store is nil.
func NewTaskService(taskStore store.TaskStore, l *slog.Logger, opts ...Option) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if l == nil {
		l = slog.Default()
	}

	s := &taskServiceImpl{
		store:    taskStore,
		logger:   l.With("component", "task_service"),
		now:      time.Now,
		location: time.UTC,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Create validates title and due date, defaults the status to pending and
// persists the task under a freshly generated ID.
func (s *taskServiceImpl) Create(ctx context.Context, req domain.NewTask) (domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status := domain.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	if err := firstError(
		validateTitle(req.Title),
		s.validateDueDate(req.DueDate),
		validateStatus(status),
	); err != nil {
		log.Warn("rejected task creation", "error", err)
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          s.newID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
	}.Clone()

	s.store.Save(ctx, task)

	log.Info("task created",
		"task_id", task.ID,
		"status", task.Status.String(),
		"due_date", task.DueDate.String())
	return task, nil
}

// Get retrieves a task by its ID.
func (s *taskServiceImpl) Get(ctx context.Context, id string) (domain.Task, error) {
	task, ok := s.store.FindByID(ctx, id)
	if !ok {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task not found", "task_id", id)
		return domain.Task{}, domain.ErrTaskNotFound
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("task retrieved", "task_id", id)
	return task, nil
}

// Update applies a partial update. Every supplied field is validated before
// anything is written, so a rejected update leaves the stored task untouched.
// Title and due date are validated as on creation (the due date against
// today, not against the previous due date); description and status are
// overwritten whenever supplied.
func (s *taskServiceImpl) Update(ctx context.Context, id string, upd domain.TaskUpdate) (domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	unlock := s.locks.lock(id)
	defer unlock()

	task, ok := s.store.FindByID(ctx, id)
	if !ok {
		log.Debug("task not found for update", "task_id", id)
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var errs []error
	if title, ok := upd.Title.Get(); ok {
		errs = append(errs, validateTitle(title))
		task.Title = title
	}
	if due, ok := upd.DueDate.Get(); ok {
		errs = append(errs, s.validateDueDate(due))
		task.DueDate = due
	}
	if desc, ok := upd.Description.Get(); ok {
		task.Description = desc
	}
	if status, ok := upd.Status.Get(); ok {
		errs = append(errs, validateStatus(status))
		task.Status = status
	}

	if err := firstError(errs...); err != nil {
		log.Warn("rejected task update", "task_id", id, "error", err)
		return domain.Task{}, err
	}

	if upd.IsEmpty() {
		return task, nil
	}

	task = task.Clone()
	s.store.Save(ctx, task)

	log.Info("task updated", "task_id", id)
	return task, nil
}

// Delete removes a task. The existence check and the removal happen in one
// store call.
func (s *taskServiceImpl) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if !s.store.DeleteByID(ctx, id) {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task not found for delete", "task_id", id)
		return domain.ErrTaskNotFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task deleted", "task_id", id)
	return nil
}

// ListByStatus reads the requested page ordered by due date ascending.
//
// When status is non-nil the page is filtered after it has been cut, and
// Total is the number of matching tasks on that page only. A page can
// therefore hold fewer than pageSize matches, or none, even when matching
// tasks exist on other pages. Without a status the page is returned as is,
// with the store-wide total.
func (s *taskServiceImpl) ListByStatus(
	ctx context.Context,
	status *domain.TaskStatus,
	pageNumber, pageSize int,
) (store.Page, error) {
	if status != nil {
		if err := validateStatus(*status); err != nil {
			return store.Page{}, err
		}
	}

	page := s.store.FindPage(ctx, []store.SortKey{store.Asc(store.FieldDueDate)}, pageNumber, pageSize)

	if status != nil {
		filtered := make([]domain.Task, 0, len(page.Content))
		for _, t := range page.Content {
			if t.Status == *status {
				filtered = append(filtered, t)
			}
		}
		page = store.Page{Content: filtered, Total: len(filtered)}
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("tasks listed",
		"page", pageNumber,
		"size", pageSize,
		"status_filter", statusAttr(status),
		"returned", len(page.Content),
		"total", page.Total)
	return page, nil
}

// today returns the current calendar date in the configured location.
func (s *taskServiceImpl) today() civil.Date {
	return civil.DateOf(s.now().In(s.location))
}

func (s *taskServiceImpl) validateDueDate(due civil.Date) error {
	if due == (civil.Date{}) {
		return domain.NewValidationError("dueDate", "is required")
	}
	if !due.IsValid() {
		return domain.NewValidationError("dueDate", "is not a valid date")
	}
	if !due.After(s.today()) {
		return domain.NewValidationError("dueDate", "must be in the future")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	return nil
}

func validateStatus(status domain.TaskStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", fmt.Sprintf("has unknown value %d", int(status)))
	}
	return nil
}

func statusAttr(status *domain.TaskStatus) string {
	if status == nil {
		return ""
	}
	return status.String()
}
