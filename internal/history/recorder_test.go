package history_test

import (
	"context"
	"testing"

	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/events"
	"github.com/phrazzld/studysmart/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderAddsCompletedGenerations(t *testing.T) {
	ctx := context.Background()
	s := history.NewStore(ctx, nil, nil)
	emitter := events.NewInMemoryEventEmitter(nil)
	emitter.RegisterHandler(history.NewRecorder(s))

	event, err := events.NewGenerationCompletedEvent(events.GenerationCompletedPayload{
		Topic:       "Algebra",
		ContentType: string(domain.ContentTypeMCQ),
		Content:     `{"quiz":[]}`,
	})
	require.NoError(t, err)
	require.NoError(t, emitter.EmitEvent(ctx, event))

	items := s.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Algebra", items[0].Topic)
	assert.Equal(t, domain.ContentTypeMCQ, items[0].Type)
	assert.Equal(t, `{"quiz":[]}`, items[0].Content)
}

func TestRecorderIgnoresOtherEvents(t *testing.T) {
	ctx := context.Background()
	s := history.NewStore(ctx, nil, nil)

	event, err := events.NewEvent("something.else", map[string]string{"k": "v"})
	require.NoError(t, err)
	require.NoError(t, history.NewRecorder(s).HandleEvent(ctx, event))
	assert.Zero(t, s.Len())
}

func TestRecorderRejectsUnknownContentType(t *testing.T) {
	ctx := context.Background()
	s := history.NewStore(ctx, nil, nil)

	event, err := events.NewGenerationCompletedEvent(events.GenerationCompletedPayload{
		Topic:       "x",
		ContentType: "Essay",
	})
	require.NoError(t, err)
	err = history.NewRecorder(s).HandleEvent(ctx, event)
	assert.ErrorIs(t, err, domain.ErrInvalidContentType)
	assert.Zero(t, s.Len())
}
