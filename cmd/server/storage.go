package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studysmart/internal/config"
	"github.com/phrazzld/studysmart/internal/platform/badger"
	"github.com/phrazzld/studysmart/internal/platform/postgres"
	"github.com/phrazzld/studysmart/internal/platform/redis"
	"github.com/phrazzld/studysmart/internal/store"
)

// setupRecordStore opens the record store selected by cfg.Backend. The
// returned close function releases the backend and is never nil.
func setupRecordStore(
	ctx context.Context,
	cfg config.StorageConfig,
	logger *slog.Logger,
) (store.RecordStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.StorageBackendMemory:
		logger.Warn("Using in-memory storage; history is lost on restart")
		return store.NewMemoryStore(), noop, nil

	case config.StorageBackendBadger:
		s, err := badger.Open(cfg.BadgerPath, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open badger store: %w", err)
		}
		logger.Info("Badger storage opened", slog.String("path", cfg.BadgerPath))
		return s, s.Close, nil

	case config.StorageBackendPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open database: %w", err)
		}
		if err := postgres.Migrate(db, logger); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("failed to apply migrations: %w", err)
		}
		logger.Info("Database connection established")
		return postgres.NewRecordStore(db, logger), db.Close, nil

	case config.StorageBackendRedis:
		s, err := redis.Open(ctx, cfg.RedisAddr, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info("Redis storage connected")
		return s, s.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
