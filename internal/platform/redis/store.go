// Package redis provides a store.RecordStore on a Redis server through
// go-redis. Each record is a plain string key under a fixed prefix.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/phrazzld/studysmart/internal/store"
)

const (
	backendName = "redis"

	// KeyPrefix namespaces every record key.
	KeyPrefix = "studysmart:"
)

// Store implements store.RecordStore on Redis.
type Store struct {
	rdb    goredis.Cmdable
	closer func() error
	logger *slog.Logger
}

var _ store.RecordStore = (*Store)(nil)

// Open connects to the Redis server at addr and verifies it with a ping.
func Open(ctx context.Context, addr string, logger *slog.Logger) (*Store, error) {
	if addr == "" {
		return nil, fmt.Errorf("%w: redis address cannot be empty", store.ErrUnavailable)
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: redis ping: %v", store.ErrUnavailable, err)
	}

	s := NewStore(rdb, logger)
	s.closer = rdb.Close
	return s, nil
}

// NewStore wraps an existing client. The caller owns the client's lifecycle.
func NewStore(rdb goredis.Cmdable, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		rdb:    rdb,
		logger: logger.With(slog.String("component", "redis_store")),
	}
}

// Get implements store.RecordStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := store.ValidateKey(key); err != nil {
		return nil, err
	}

	value, err := s.rdb.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, store.ErrRecordNotFound
	}
	if err != nil {
		return nil, store.NewStoreError(backendName, "get", key, err)
	}
	return value, nil
}

// Put implements store.RecordStore. Records never expire.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, KeyPrefix+key, value, 0).Err(); err != nil {
		return store.NewStoreError(backendName, "put", key, err)
	}
	return nil
}

// Delete implements store.RecordStore.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}

	if err := s.rdb.Del(ctx, KeyPrefix+key).Err(); err != nil {
		return store.NewStoreError(backendName, "delete", key, err)
	}
	return nil
}

// Close closes the client when the Store opened it.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
