package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/studysmart/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrRecordNotFound)

	checkErr := &pgconn.PgError{Code: checkViolationCode, ConstraintName: "kv_records_key_check"}
	mapped := MapError(checkErr)
	assert.ErrorIs(t, mapped, store.ErrInvalidKey)
	assert.Contains(t, mapped.Error(), "kv_records_key_check")

	jsonErr := MapError(fmt.Errorf("exec: %w", &pgconn.PgError{Code: invalidTextRepresentationCode}))
	assert.Contains(t, jsonErr.Error(), "not valid JSON")

	other := errors.New("connection refused")
	assert.Same(t, other, MapError(other))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", store.ErrRecordNotFound)))
	assert.False(t, IsNotFoundError(errors.New("boom")))
}

func TestNewRecordStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() { NewRecordStore(nil, nil) })
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embeddedMigrations.ReadDir("migrations")
	assert.NoError(t, err)
	assert.NotEmpty(t, entries)
}
