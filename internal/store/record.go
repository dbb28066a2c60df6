package store

import "context"

// RecordStore persists named records. Values are opaque bytes, in practice
// JSON documents.
type RecordStore interface {
	// Get returns the value stored under key, or ErrRecordNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ValidateKey returns ErrInvalidKey for an empty key.
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
