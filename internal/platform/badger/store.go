// Package badger provides a store.RecordStore backed by an embedded Badger
// database through badgerhold. It is the default backend and plays the part
// of client-local storage for a single server process.
package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/phrazzld/studysmart/internal/store"
	"github.com/timshannon/badgerhold/v4"
)

const backendName = "badger"

// record is the badgerhold document stored per key.
type record struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// Store implements store.RecordStore on badgerhold.
type Store struct {
	db     *badgerhold.Store
	logger *slog.Logger
}

var _ store.RecordStore = (*Store)(nil)

// slogBadgerLogger routes badger's internal logging through slog. Badger's
// info chatter is demoted to debug.
type slogBadgerLogger struct {
	logger *slog.Logger
}

var _ badgerdb.Logger = (*slogBadgerLogger)(nil)

func (l *slogBadgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *slogBadgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *slogBadgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *slogBadgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Open opens (or creates) the Badger database in dir.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: badger directory cannot be empty", store.ErrUnavailable)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "badger_store"), slog.String("path", dir))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create badger directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = &slogBadgerLogger{logger: logger}

	db, err := badgerhold.Open(options)
	if err != nil {
		logger.Error("failed to open badger database", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: failed to open badger database: %v", store.ErrUnavailable, err)
	}

	logger.Debug("badger database opened")
	return &Store{db: db, logger: logger}, nil
}

// Get implements store.RecordStore.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	if err := store.ValidateKey(key); err != nil {
		return nil, err
	}

	var rec record
	err := s.db.Get(key, &rec)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, store.ErrRecordNotFound
	}
	if err != nil {
		return nil, store.NewStoreError(backendName, "get", key, err)
	}
	return rec.Value, nil
}

// Put implements store.RecordStore.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	rec := record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	if err := s.db.Upsert(key, &rec); err != nil {
		return store.NewStoreError(backendName, "put", key, err)
	}
	return nil
}

// Delete implements store.RecordStore.
func (s *Store) Delete(_ context.Context, key string) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	err := s.db.Delete(key, record{})
	if err != nil && !errors.Is(err, badgerhold.ErrNotFound) {
		return store.NewStoreError(backendName, "delete", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
