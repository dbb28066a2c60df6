package service

import (
	"log/slog"

	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/quiz"
)

// HistoryCounter reports how many history items are retained.
type HistoryCounter interface {
	Len() int
}

// QuizResultLister lists recorded quiz results.
type QuizResultLister interface {
	List() []domain.QuizResult
}

// Stats summarizes a learner's activity.
type Stats struct {
	ActiveModules int `json:"activeModules"`
	QuizzesTaken  int `json:"quizzesTaken"`
	MasteryRate   int `json:"masteryRate"`
}

// StatsService derives study statistics from history and quiz results.
type StatsService struct {
	history HistoryCounter
	results QuizResultLister
	logger  *slog.Logger
}

// NewStatsService creates a StatsService.
func NewStatsService(history HistoryCounter, results QuizResultLister, logger *slog.Logger) (*StatsService, error) {
	if history == nil {
		return nil, domain.NewValidationError("history", "cannot be nil", domain.ErrValidation)
	}
	if results == nil {
		return nil, domain.NewValidationError("results", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsService{
		history: history,
		results: results,
		logger:  logger.With(slog.String("component", "stats_service")),
	}, nil
}

// Stats returns the current statistics. The mastery rate is the percentage
// of all quiz questions answered correctly, 0 before any quiz.
func (s *StatsService) Stats() Stats {
	results := s.results.List()

	var score, total int
	for _, r := range results {
		score += r.Score
		total += r.Total
	}

	return Stats{
		ActiveModules: s.history.Len(),
		QuizzesTaken:  len(results),
		MasteryRate:   quiz.Percent(score, total),
	}
}
