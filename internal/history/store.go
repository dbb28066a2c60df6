package history

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/store"
)

const (
	// DefaultKey is the record the history is persisted under.
	DefaultKey = "studySmartHistory"

	// DefaultLimit is the maximum number of retained items.
	DefaultLimit = 50
)

// ErrItemNotFound is returned by Get for an unknown id.
var ErrItemNotFound = errors.New("history item not found")

// Store is the bounded history log.
type Store struct {
	mu      sync.Mutex
	backend store.RecordStore
	logger  *slog.Logger
	key     string
	limit   int
	now     func() time.Time
	newID   func() string
	items   []domain.HistoryItem
}

// Option configures a Store.
type Option func(*Store)

// WithLimit sets the maximum number of retained items. Non-positive values
// are ignored.
func WithLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithKey sets the record key the history is persisted under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock sets the time source used for item timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the function used to assign item ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewStore creates a Store and loads any persisted history from backend.
// A missing or unreadable record yields an empty history; construction
// never fails.
func NewStore(ctx context.Context, backend store.RecordStore, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		backend: backend,
		logger:  logger.With(slog.String("component", "history_store")),
		key:     DefaultKey,
		limit:   DefaultLimit,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.items = s.load(ctx)
	return s
}

// load reads the persisted list, falling back to an empty list on any failure.
func (s *Store) load(ctx context.Context) []domain.HistoryItem {
	if s.backend == nil {
		return []domain.HistoryItem{}
	}

	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.WarnContext(ctx, "failed to read persisted history, starting empty",
				slog.String("error", err.Error()))
		}
		return []domain.HistoryItem{}
	}

	var items []domain.HistoryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.WarnContext(ctx, "failed to parse persisted history, starting empty",
			slog.String("error", err.Error()))
		return []domain.HistoryItem{}
	}
	if items == nil {
		items = []domain.HistoryItem{}
	}
	if len(items) > s.limit {
		items = items[:s.limit]
	}

	s.logger.DebugContext(ctx, "loaded persisted history", slog.Int("items", len(items)))
	return items
}

// Add assigns a fresh id and timestamp to entry, prepends it, truncates the
// list to the limit and persists it. The created item is returned.
func (s *Store) Add(ctx context.Context, entry domain.NewHistoryEntry) domain.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.HistoryItem{
		ID:        s.newID(),
		Topic:     entry.Topic,
		Type:      entry.Type,
		Content:   entry.Content,
		Timestamp: domain.FormatHistoryTimestamp(s.now()),
	}

	items := make([]domain.HistoryItem, 0, min(len(s.items)+1, s.limit))
	items = append(items, item)
	items = append(items, s.items...)
	if len(items) > s.limit {
		items = items[:s.limit]
	}
	s.items = items

	s.persist(ctx)
	return item
}

// persist writes the current list. Failures are logged and swallowed.
func (s *Store) persist(ctx context.Context) {
	if s.backend == nil {
		return
	}

	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode history", slog.String("error", err.Error()))
		return
	}
	if err := s.backend.Put(ctx, s.key, raw); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist history",
			slog.Int("items", len(s.items)),
			slog.String("error", err.Error()))
	}
}

// Clear empties the in-memory list and removes the persisted record.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []domain.HistoryItem{}
	if s.backend == nil {
		return
	}
	if err := s.backend.Delete(ctx, s.key); err != nil {
		s.logger.ErrorContext(ctx, "failed to remove persisted history", slog.String("error", err.Error()))
	}
}

// List returns a copy of the history, newest first.
func (s *Store) List() []domain.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.HistoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of retained items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (domain.HistoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.HistoryItem{}, ErrItemNotFound
}
