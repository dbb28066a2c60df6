package content

import (
	"testing"

	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() *domain.Quiz {
	q := &domain.Quiz{}
	for i, topic := range []string{"x + 1 = 2", "2x = 6", "x - 3 = 1", "x / 2 = 4", "3x + 3 = 0"} {
		q.Questions = append(q.Questions, domain.MCQQuestion{
			Question:      "Solve " + topic,
			Options:       []string{"1", "3", "4", "8"},
			CorrectAnswer: []string{"1", "3", "4", "8", "-1"}[i],
		})
	}
	return q
}

func TestEncodeParseQuizRoundTrip(t *testing.T) {
	t.Parallel()

	original := sampleQuiz()
	encoded, err := EncodeQuiz(original)
	require.NoError(t, err)
	assert.Contains(t, encoded, `"quiz":[`)
	assert.Contains(t, encoded, `"correctAnswer":"1"`)

	decoded, err := ParseQuiz(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
	assert.Len(t, decoded.Questions, domain.QuizQuestionCount)
}

func TestParseQuizErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseQuiz("not json")
	assert.ErrorIs(t, err, ErrQuizUnparseable)

	_, err = ParseQuiz(`[{"question":"q"}]`)
	assert.ErrorIs(t, err, ErrQuizUnparseable)

	_, err = ParseQuiz(`{"quiz":[]}`)
	assert.ErrorIs(t, err, ErrQuizEmpty)

	_, err = ParseQuiz(`{}`)
	assert.ErrorIs(t, err, ErrQuizEmpty)

	_, err = EncodeQuiz(nil)
	assert.ErrorIs(t, err, ErrQuizEmpty)
}

func TestParseQuizDoesNotRevalidateCardinality(t *testing.T) {
	t.Parallel()

	q, err := ParseQuiz(`{"quiz":[{"question":"Only one?","options":["yes","no"],"correctAnswer":"yes"}]}`)
	require.NoError(t, err)
	require.Len(t, q.Questions, 1)
	assert.Equal(t, []string{"yes", "no"}, q.Questions[0].Options)
}
