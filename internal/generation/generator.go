package generation

import "context"

// Generator defines the interface for producing study material from a topic.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
//
// Implementations must validate their output against the contract before
// returning it; a response that fails validation is reported as an error
// wrapping ErrInvalidResponse.
type Generator interface {
	// GenerateLearningContent produces free text for notes, a summary or
	// flashcards, one point per line with no markup.
	GenerateLearningContent(ctx context.Context, in LearningContentInput) (*LearningContentOutput, error)

	// GenerateQuiz produces a five-question multiple-choice quiz.
	GenerateQuiz(ctx context.Context, in QuizInput) (*QuizOutput, error)
}
