// Package main implements the entry point for the StudySmart server, which
// generates study material with an LLM and serves the generation history,
// quiz scoring and study statistics.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/phrazzld/studysmart/internal/config"
	"github.com/phrazzld/studysmart/internal/platform/logger"
)

// main is the entry point for the StudySmart server. It loads configuration,
// sets up logging, wires dependencies and serves HTTP until interrupted.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to build application", slog.String("error", err.Error()))
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Application stopped with error", slog.String("error", err.Error()))
		log.Fatalf("Application error: %v", err)
	}
}

// initializeApp loads the optional .env file and configuration, then sets up
// structured logging using the configured log level.
func initializeApp() (*config.Config, *slog.Logger, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("storage_backend", cfg.Storage.Backend),
		slog.String("model", cfg.LLM.ModelName))

	return cfg, appLogger, nil
}
