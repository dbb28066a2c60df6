package content

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phrazzld/studysmart/internal/domain"
)

var (
	// ErrQuizUnparseable is returned when stored quiz content is not a valid
	// JSON quiz object.
	ErrQuizUnparseable = errors.New("failed to parse quiz data")

	// ErrQuizEmpty is returned when a quiz decodes cleanly but has no questions.
	ErrQuizEmpty = errors.New("quiz has no questions")
)

// EncodeQuiz serializes a quiz into the content string stored for MCQ generations.
func EncodeQuiz(q *domain.Quiz) (string, error) {
	if q == nil {
		return "", fmt.Errorf("%w: nil quiz", ErrQuizEmpty)
	}
	b, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("failed to encode quiz: %w", err)
	}
	return string(b), nil
}

// ParseQuiz decodes MCQ content back into a quiz. Beyond structural decoding
// the questions are not re-validated.
func ParseQuiz(text string) (*domain.Quiz, error) {
	var q domain.Quiz
	if err := json.Unmarshal([]byte(text), &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuizUnparseable, err)
	}
	if len(q.Questions) == 0 {
		return nil, ErrQuizEmpty
	}
	return &q, nil
}
