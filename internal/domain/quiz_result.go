package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultQuizDifficulty is recorded for every scored quiz; generation has no
// difficulty knob yet.
const DefaultQuizDifficulty = "medium"

// Quiz result validation errors.
var (
	ErrQuizResultTopicEmpty   = errors.New("quiz result topic cannot be empty")
	ErrQuizResultScoreInvalid = errors.New("quiz result score must be between 0 and total")
)

// QuizResult records the outcome of one completed quiz.
type QuizResult struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Difficulty string `json:"difficulty"`
	Date       string `json:"date"`
}

// NewQuizResult creates a QuizResult with a fresh id and the current time.
func NewQuizResult(topic string, score, total int, now time.Time) (*QuizResult, error) {
	r := &QuizResult{
		ID:         uuid.New().String(),
		Topic:      topic,
		Score:      score,
		Total:      total,
		Difficulty: DefaultQuizDifficulty,
		Date:       FormatHistoryTimestamp(now),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the result's invariants.
func (r *QuizResult) Validate() error {
	if r.Topic == "" {
		return ErrQuizResultTopicEmpty
	}
	if r.Total <= 0 || r.Score < 0 || r.Score > r.Total {
		return ErrQuizResultScoreInvalid
	}
	return nil
}
