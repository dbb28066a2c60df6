package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrRecordNotFound is returned when no record exists under the requested key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidKey is returned when a record key is empty.
	ErrInvalidKey = errors.New("invalid record key")

	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("record store unavailable")
)

// IsNotFoundError reports whether err is or wraps ErrRecordNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Backend   string // The backend name (e.g., "badger", "postgres")
	Operation string // The operation that failed (e.g., "get", "put")
	Key       string // The record key
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s of record %q failed: %v", e.Backend, e.Operation, e.Key, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError for the given backend, operation and key.
func NewStoreError(backend, operation, key string, err error) *StoreError {
	return &StoreError{
		Backend:   backend,
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}
