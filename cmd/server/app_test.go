package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/phrazzld/studysmart/internal/config"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/mocks"
	"github.com/phrazzld/studysmart/internal/platform/logger"
	"github.com/phrazzld/studysmart/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug", ShutdownTimeoutSeconds: 1},
		LLM: config.LLMConfig{
			GeminiAPIKey:      "test-key",
			ModelName:         "gemini-2.0-flash",
			MaxRetries:        0,
			RetryDelaySeconds: 1,
		},
		Storage: config.StorageConfig{Backend: config.StorageBackendMemory},
		History: config.HistoryConfig{Limit: 3},
	}
}

func newTestApplication(t *testing.T, records store.RecordStore, gen *mocks.MockGenerator) *application {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	app, err := assembleApplication(context.Background(), testConfig(), log, records, gen)
	require.NoError(t, err)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApplication(t, store.NewMemoryStore(), mocks.NewMockGeneratorWithContent("x"))

	rec := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestGeneratedContentIsPersisted(t *testing.T) {
	records := store.NewMemoryStore()
	app := newTestApplication(t, records, mocks.NewMockGeneratorWithContent("photons: light particles"))
	router := app.setupRouter()

	for _, topic := range []string{"one", "two", "three", "four"} {
		body, err := json.Marshal(map[string]string{"topic": topic, "type": "Flashcards"})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	// The configured limit applies, and a fresh application sees the same history.
	assert.Equal(t, 3, app.history.Len())

	reloaded := newTestApplication(t, records, mocks.NewMockGeneratorWithContent("unused"))
	items := reloaded.history.List()
	require.Len(t, items, 3)
	assert.Equal(t, "four", items[0].Topic)
	assert.Equal(t, "two", items[2].Topic)
	assert.Equal(t, domain.ContentTypeFlashcards, items[0].Type)
}

func TestSetupRecordStore(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, closeFn, err := setupRecordStore(ctx, config.StorageConfig{Backend: config.StorageBackendMemory}, log)
		require.NoError(t, err)
		assert.NotNil(t, s)
		assert.NoError(t, closeFn())
	})

	t.Run("badger", func(t *testing.T) {
		cfg := config.StorageConfig{
			Backend:    config.StorageBackendBadger,
			BadgerPath: filepath.Join(t.TempDir(), "db"),
		}
		s, closeFn, err := setupRecordStore(ctx, cfg, log)
		require.NoError(t, err)
		require.NoError(t, s.Put(ctx, "k", []byte(`"v"`)))
		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`"v"`), got)
		assert.NoError(t, closeFn())
	})

	t.Run("unreachable redis", func(t *testing.T) {
		cfg := config.StorageConfig{Backend: config.StorageBackendRedis, RedisAddr: "127.0.0.1:1"}
		s, closeFn, err := setupRecordStore(ctx, cfg, log)
		assert.Error(t, err)
		assert.Nil(t, s)
		assert.NoError(t, closeFn())
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, closeFn, err := setupRecordStore(ctx, config.StorageConfig{Backend: "sqlite"}, log)
		assert.ErrorContains(t, err, "unknown storage backend")
		assert.NotNil(t, closeFn)
	})
}

func TestStartHTTPServerStopsOnContextCancel(t *testing.T) {
	app := newTestApplication(t, store.NewMemoryStore(), mocks.NewMockGeneratorWithContent("x"))
	app.config.Server.Port = 0

	closed := false
	app.closeRecords = func() error {
		closed = true
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.startHTTPServer(ctx, app.setupRouter()))
	assert.True(t, closed, "record store should be closed on shutdown")
}
