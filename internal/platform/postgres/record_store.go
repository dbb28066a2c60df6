package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/studysmart/internal/platform/logger"
	"github.com/phrazzld/studysmart/internal/store"
)

const backendName = "postgres"

// RecordStore implements store.RecordStore using the kv_records table.
type RecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.RecordStore = (*RecordStore)(nil)

// NewRecordStore creates a RecordStore over a connection or transaction
// managed by the caller. If logger is nil, a default logger will be used.
func NewRecordStore(db store.DBTX, logger *slog.Logger) *RecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RecordStore{
		db:     db,
		logger: logger.With(slog.String("component", "record_store")),
	}
}

// Get implements store.RecordStore.
func (s *RecordStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := store.ValidateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_records WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, store.ErrRecordNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to read record",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(backendName, "get", key, MapError(err))
	}
	return value, nil
}

// Put implements store.RecordStore.
func (s *RecordStore) Put(ctx context.Context, key string, value []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	query := `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to write record",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return store.NewStoreError(backendName, "put", key, MapError(err))
	}
	return nil
}

// Delete implements store.RecordStore.
func (s *RecordStore) Delete(ctx context.Context, key string) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_records WHERE key = $1`, key); err != nil {
		return store.NewStoreError(backendName, "delete", key, MapError(err))
	}
	return nil
}
