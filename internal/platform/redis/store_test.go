package redis

import (
	"context"
	"testing"

	"github.com/phrazzld/studysmart/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestOpenRequiresAddress(t *testing.T) {
	_, err := Open(context.Background(), "", nil)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestOpenFailsWhenServerUnreachable(t *testing.T) {
	// Port 1 on loopback is reserved and refuses connections.
	_, err := Open(context.Background(), "127.0.0.1:1", nil)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	s := NewStore(nil, nil)
	_, err := s.Get(context.Background(), "")
	assert.ErrorIs(t, err, store.ErrInvalidKey)
	assert.ErrorIs(t, s.Put(context.Background(), "", []byte("v")), store.ErrInvalidKey)
	assert.ErrorIs(t, s.Delete(context.Background(), ""), store.ErrInvalidKey)
}
