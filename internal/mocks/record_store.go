package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/studysmart/internal/store"
)

// MockRecordStore is an in-memory store.RecordStore with injectable failures
// and call tracking.
type MockRecordStore struct {
	mu      sync.Mutex
	records map[string][]byte

	// GetErr, PutErr and DeleteErr are returned by the matching method when set
	GetErr    error
	PutErr    error
	DeleteErr error

	// Call counts for verification
	GetCalls    int
	PutCalls    int
	DeleteCalls int
}

var _ store.RecordStore = (*MockRecordStore)(nil)

// NewMockRecordStore creates an empty MockRecordStore
func NewMockRecordStore() *MockRecordStore {
	return &MockRecordStore{records: make(map[string][]byte)}
}

// Seed stores a raw value without counting a call
func (m *MockRecordStore) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = value
}

// Raw returns the stored value and whether it exists, without counting a call
func (m *MockRecordStore) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.records[key]
	return v, ok
}

// Get implements store.RecordStore
func (m *MockRecordStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.records[key]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return v, nil
}

// Put implements store.RecordStore
func (m *MockRecordStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls++
	if m.PutErr != nil {
		return m.PutErr
	}
	m.records[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements store.RecordStore
func (m *MockRecordStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.records, key)
	return nil
}
