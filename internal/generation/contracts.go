package generation

import "github.com/phrazzld/studysmart/internal/domain"

// ContentKind is the token the free-text contract uses for the requested material.
type ContentKind string

// Content kinds accepted by the free-text contract.
const (
	ContentKindNotes      ContentKind = "notes"
	ContentKindSummary    ContentKind = "summary"
	ContentKindFlashcards ContentKind = "flashcards"
)

// LearningContentInput is the input of the free-text contract.
type LearningContentInput struct {
	Topic       string      `json:"topic"       validate:"required"`
	ContentKind ContentKind `json:"contentType" validate:"required,oneof=notes summary flashcards"`
}

// LearningContentOutput is the output of the free-text contract.
type LearningContentOutput struct {
	Content string `json:"content" validate:"required"`
}

// QuizInput is the input of the quiz contract.
type QuizInput struct {
	Topic string `json:"topic" validate:"required"`
}

// QuizOutput is the output of the quiz contract: exactly five questions of
// four options each.
type QuizOutput struct {
	Quiz []domain.MCQQuestion `json:"quiz" validate:"required,len=5,dive"`
}

// AsQuiz converts the contract output into the domain quiz.
func (o *QuizOutput) AsQuiz() *domain.Quiz {
	return &domain.Quiz{Questions: o.Quiz}
}
