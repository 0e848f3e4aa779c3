package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmind/taskmind-api/internal/config"
	"github.com/taskmind/taskmind-api/internal/extraction"
	"github.com/taskmind/taskmind-api/internal/mocks"
	"github.com/taskmind/taskmind-api/internal/notify"
	"github.com/taskmind/taskmind-api/internal/platform/gemini"
	"github.com/taskmind/taskmind-api/internal/platform/gmail"
	"github.com/taskmind/taskmind-api/internal/platform/hosted"
	"github.com/taskmind/taskmind-api/internal/platform/postgres"
	"github.com/taskmind/taskmind-api/internal/reminder"
	"github.com/taskmind/taskmind-api/internal/service"
	"github.com/taskmind/taskmind-api/internal/store"
	"github.com/taskmind/taskmind-api/internal/textgen"
)

// application holds all shared dependencies, wired once at startup.
type application struct {
	config *config.Config
	logger *slog.Logger

	pool      *pgxpool.Pool
	taskStore store.TaskStore

	dispatcher *notify.Dispatcher
	scheduler  *reminder.Scheduler

	extractionService *service.ExtractionService
	taskService       *service.TaskService
	poller            *service.Poller
}

// newApplication builds the dependency graph from configuration: store,
// text-generation client, extraction pipeline, reminder scheduler and the
// services on top of them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.setupStore(ctx); err != nil {
		return nil, err
	}

	client, err := newTextgenClient(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	app.dispatcher = notify.NewDispatcher(notify.Settings{
		TaskExtraction: cfg.Notifications.TaskExtraction,
		TaskReminders:  cfg.Notifications.TaskReminders,
		System:         cfg.Notifications.System,
	}, logger)
	app.dispatcher.RegisterHandler(notify.NewLogHandler(logger))

	leads := reminder.DefaultLeadTimes
	if len(cfg.Reminders.LeadTimes) > 0 {
		leads = reminder.LeadTimesFromConfig(cfg.Reminders.LeadTimes)
	}
	app.scheduler = reminder.NewScheduler(leads, app.dispatcher, logger)

	var source extraction.MessageSource
	if cfg.Gmail.CredentialsFile != "" && cfg.Gmail.TokenFile != "" {
		source, err = gmail.NewSource(ctx, cfg.Gmail.CredentialsFile, cfg.Gmail.TokenFile, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to set up mail source: %w", err)
		}
	}

	extractor := extraction.NewExtractor(client, logger)
	app.extractionService = service.NewExtractionService(
		extractor,
		source,
		app.taskStore,
		app.scheduler,
		app.dispatcher,
		logger,
		cfg.Extraction.MaxMessages,
	)
	app.taskService = service.NewTaskService(app.taskStore, app.scheduler, logger)

	if cfg.Extraction.Enabled && source != nil {
		interval := time.Duration(cfg.Extraction.IntervalMinutes) * time.Minute
		app.poller = service.NewPoller(interval, cfg.Extraction.RunOnStartup, app.extractionService, logger)
	}

	return app, nil
}

// setupStore selects the persistence backend: PostgreSQL when a database
// URL is configured, the in-memory store otherwise.
func (app *application) setupStore(ctx context.Context) error {
	if app.config.Database.URL == "" {
		app.logger.Warn("no database configured, using in-memory task store")
		app.taskStore = mocks.NewTaskStore()
		return nil
	}

	pool, err := connectDatabase(ctx, app.config.Database.URL, app.logger)
	if err != nil {
		return err
	}
	app.pool = pool
	app.taskStore = postgres.NewTaskStore(pool, app.logger)
	return nil
}

// newTextgenClient selects the text-generation backend from configuration.
func newTextgenClient(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (textgen.Client, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.New(ctx, cfg, logger)
	default:
		return hosted.New(cfg, logger)
	}
}

// Run rehydrates reminders for stored tasks, starts the mail poller and
// serves HTTP until shutdown.
func (app *application) Run(ctx context.Context) error {
	tasks, err := app.taskStore.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored tasks: %w", err)
	}
	app.scheduler.ScheduleAll(tasks)
	app.logger.Info("reminders rehydrated", "tasks", len(tasks))

	if app.poller != nil {
		app.poller.Start(ctx)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases background resources, called after the HTTP server has
// drained.
func (app *application) cleanup() {
	if app.poller != nil {
		app.poller.Stop()
	}
	app.scheduler.Stop()
	if app.pool != nil {
		app.pool.Close()
	}
}
