package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studysmart/internal/config"
	"github.com/phrazzld/studysmart/internal/events"
	"github.com/phrazzld/studysmart/internal/export"
	"github.com/phrazzld/studysmart/internal/generation"
	"github.com/phrazzld/studysmart/internal/history"
	"github.com/phrazzld/studysmart/internal/platform/gemini"
	"github.com/phrazzld/studysmart/internal/quiz"
	"github.com/phrazzld/studysmart/internal/service"
	"github.com/phrazzld/studysmart/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	records      store.RecordStore
	closeRecords func() error

	history *history.Store
	results *quiz.ResultLog
	emitter *events.InMemoryEventEmitter

	contentService service.ContentService
	statsService   *service.StatsService
	exporter       *export.PDFExporter
}

// newApplication opens storage, creates the Gemini generator and wires the
// services. It fails fast on any unusable dependency.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	records, closeRecords, err := setupRecordStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, logger.With(slog.String("component", "llm_generator")), cfg.LLM)
	if err != nil {
		_ = closeRecords()
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully")

	app, err := assembleApplication(ctx, cfg, logger, records, generator)
	if err != nil {
		_ = closeRecords()
		return nil, err
	}
	app.closeRecords = closeRecords
	return app, nil
}

// assembleApplication builds the services around an opened record store and
// a generator.
func assembleApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	records store.RecordStore,
	generator generation.Generator,
) (*application, error) {
	app := &application{
		config:       cfg,
		logger:       logger,
		records:      records,
		closeRecords: func() error { return nil },
	}

	app.history = history.NewStore(ctx, records, logger, history.WithLimit(cfg.History.Limit))
	app.results = quiz.NewResultLog(ctx, records, logger)

	// Successful generations reach the history through the event emitter.
	app.emitter = events.NewInMemoryEventEmitter(logger)
	app.emitter.RegisterHandler(history.NewRecorder(app.history))

	var err error
	app.contentService, err = service.NewContentService(generator, app.emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	app.statsService, err = service.NewStatsService(app.history, app.results, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	app.exporter = export.NewPDFExporter(logger)

	logger.Info("Application initialized successfully",
		slog.Int("history_items", app.history.Len()),
		slog.Int("quiz_results", len(app.results.List())))
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.closeRecords != nil {
		if err := app.closeRecords(); err != nil {
			app.logger.Error("Error closing record store", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("Application shutdown completed")
}
