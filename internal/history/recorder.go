package history

import (
	"context"
	"fmt"

	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/events"
)

// Recorder adds every completed generation to a Store.
type Recorder struct {
	store *Store
}

var _ events.EventHandler = (*Recorder)(nil)

// NewRecorder creates a Recorder writing to s.
func NewRecorder(s *Store) *Recorder {
	return &Recorder{store: s}
}

// HandleEvent implements events.EventHandler. Events of other types are ignored.
func (r *Recorder) HandleEvent(ctx context.Context, event *events.Event) error {
	if event == nil || event.Type != events.TypeGenerationCompleted {
		return nil
	}

	var payload events.GenerationCompletedPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to decode generation event %s: %w", event.ID, err)
	}

	contentType, err := domain.ParseContentType(payload.ContentType)
	if err != nil {
		return fmt.Errorf("generation event %s: %w", event.ID, err)
	}

	r.store.Add(ctx, domain.NewHistoryEntry{
		Topic:   payload.Topic,
		Type:    contentType,
		Content: payload.Content,
	})
	return nil
}
