package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuizResult(t *testing.T) {
	now := time.Date(2025, time.May, 3, 9, 30, 0, 123000000, time.UTC)

	r, err := NewQuizResult("Algebra", 4, 5, now)
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, DefaultQuizDifficulty, r.Difficulty)
	assert.Equal(t, "2025-05-03T09:30:00.123Z", r.Date)

	_, err = NewQuizResult("", 1, 5, now)
	assert.ErrorIs(t, err, ErrQuizResultTopicEmpty)

	_, err = NewQuizResult("Algebra", 6, 5, now)
	assert.ErrorIs(t, err, ErrQuizResultScoreInvalid)

	_, err = NewQuizResult("Algebra", 0, 0, now)
	assert.ErrorIs(t, err, ErrQuizResultScoreInvalid)
}
