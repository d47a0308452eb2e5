package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskstore/internal/config"
	"github.com/phrazzld/taskstore/internal/platform/memory"
	"github.com/phrazzld/taskstore/internal/service"
	"github.com/phrazzld/taskstore/internal/store"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication creates the store and service from configuration.
// Extra service options are applied after the configured ones.
func newApplication(cfg *config.Config, l *slog.Logger, opts ...service.Option) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if l == nil {
		l = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: l,
	}

	loc, err := cfg.Tasks.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Tasks.Timezone, err)
	}

	app.taskStore = memory.NewMemoryTaskStore(l)

	svcOpts := append([]service.Option{service.WithLocation(loc)}, opts...)
	app.taskService, err = service.NewTaskService(app.taskStore, l, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	l.Info("Application initialized successfully", "timezone", loc.String())
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
