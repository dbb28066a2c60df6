package quiz

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/store"
)

// DefaultResultsKey is the record the quiz results are persisted under.
const DefaultResultsKey = "studySmartQuizResults"

// ResultLog is the unbounded, newest-first log of recorded quiz results.
// Like the history, it caches in memory and persists on a best effort basis.
type ResultLog struct {
	mu      sync.Mutex
	backend store.RecordStore
	logger  *slog.Logger
	key     string
	now     func() time.Time
	results []domain.QuizResult
}

// NewResultLog creates a ResultLog and loads persisted results from backend.
func NewResultLog(ctx context.Context, backend store.RecordStore, logger *slog.Logger) *ResultLog {
	if logger == nil {
		logger = slog.Default()
	}

	l := &ResultLog{
		backend: backend,
		logger:  logger.With(slog.String("component", "quiz_result_log")),
		key:     DefaultResultsKey,
		now:     time.Now,
		results: []domain.QuizResult{},
	}
	l.load(ctx)
	return l
}

func (l *ResultLog) load(ctx context.Context) {
	if l.backend == nil {
		return
	}

	raw, err := l.backend.Get(ctx, l.key)
	if err != nil {
		if !store.IsNotFoundError(err) {
			l.logger.WarnContext(ctx, "failed to read quiz results, starting empty",
				slog.String("error", err.Error()))
		}
		return
	}

	var results []domain.QuizResult
	if err := json.Unmarshal(raw, &results); err != nil {
		l.logger.WarnContext(ctx, "failed to parse quiz results, starting empty",
			slog.String("error", err.Error()))
		return
	}
	if results != nil {
		l.results = results
	}
}

// Record stores the result of a completed quiz. Invalid results are rejected;
// persistence failures are logged and swallowed.
func (l *ResultLog) Record(ctx context.Context, topic string, score, total int) (*domain.QuizResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result, err := domain.NewQuizResult(topic, score, total, l.now())
	if err != nil {
		return nil, err
	}

	l.results = append([]domain.QuizResult{*result}, l.results...)

	if l.backend != nil {
		raw, err := json.Marshal(l.results)
		if err == nil {
			err = l.backend.Put(ctx, l.key, raw)
		}
		if err != nil {
			l.logger.ErrorContext(ctx, "failed to persist quiz results", slog.String("error", err.Error()))
		}
	}

	l.logger.InfoContext(ctx, "quiz result recorded",
		slog.String("topic", topic),
		slog.Int("score", score),
		slog.Int("total", total))
	return result, nil
}

// List returns a copy of the recorded results, newest first.
func (l *ResultLog) List() []domain.QuizResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.QuizResult, len(l.results))
	copy(out, l.results)
	return out
}
