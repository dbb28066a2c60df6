package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateLearningContentFn allows test cases to mock the GenerateLearningContent behavior
	GenerateLearningContentFn func(
		ctx context.Context,
		input generation.LearningContentInput,
	) (*generation.LearningContentOutput, error)

	// GenerateQuizFn allows test cases to mock the GenerateQuiz behavior
	GenerateQuizFn func(ctx context.Context, input generation.QuizInput) (*generation.QuizOutput, error)

	// Default response values
	Content string
	Quiz    []domain.MCQQuestion
	Err     error

	// Call tracking for verification
	Calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// LearningContent contains all inputs passed to GenerateLearningContent
		LearningContent []generation.LearningContentInput

		// Quiz contains all inputs passed to GenerateQuiz
		Quiz []generation.QuizInput
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateLearningContent implements the generation.Generator interface
func (m *MockGenerator) GenerateLearningContent(
	ctx context.Context,
	input generation.LearningContentInput,
) (*generation.LearningContentOutput, error) {
	m.Calls.mu.Lock()
	m.Calls.LearningContent = append(m.Calls.LearningContent, input)
	m.Calls.mu.Unlock()

	if m.GenerateLearningContentFn != nil {
		return m.GenerateLearningContentFn(ctx, input)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &generation.LearningContentOutput{Content: m.Content}, nil
}

// GenerateQuiz implements the generation.Generator interface
func (m *MockGenerator) GenerateQuiz(ctx context.Context, input generation.QuizInput) (*generation.QuizOutput, error) {
	m.Calls.mu.Lock()
	m.Calls.Quiz = append(m.Calls.Quiz, input)
	m.Calls.mu.Unlock()

	if m.GenerateQuizFn != nil {
		return m.GenerateQuizFn(ctx, input)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &generation.QuizOutput{Quiz: m.Quiz}, nil
}

// LearningContentCallCount returns how many times GenerateLearningContent was called
func (m *MockGenerator) LearningContentCallCount() int {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	return len(m.Calls.LearningContent)
}

// QuizCallCount returns how many times GenerateQuiz was called
func (m *MockGenerator) QuizCallCount() int {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	return len(m.Calls.Quiz)
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	m.Calls.LearningContent = nil
	m.Calls.Quiz = nil
}

// NewMockGeneratorWithContent creates a MockGenerator that returns the specified text
func NewMockGeneratorWithContent(content string) *MockGenerator {
	return &MockGenerator{Content: content}
}

// NewMockGeneratorWithQuiz creates a MockGenerator that returns the specified quiz
func NewMockGeneratorWithQuiz(quiz []domain.MCQQuestion) *MockGenerator {
	return &MockGenerator{Quiz: quiz}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a generation failure
func MockGeneratorThatFails() *MockGenerator {
	return &MockGenerator{Err: generation.ErrGenerationFailed}
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{Err: generation.ErrContentBlocked}
}

// SampleQuiz returns a valid five question quiz for topic.
func SampleQuiz(topic string) []domain.MCQQuestion {
	questions := make([]domain.MCQQuestion, 0, domain.QuizQuestionCount)
	for i := 1; i <= domain.QuizQuestionCount; i++ {
		options := []string{
			fmt.Sprintf("%s option A%d", topic, i),
			fmt.Sprintf("%s option B%d", topic, i),
			fmt.Sprintf("%s option C%d", topic, i),
			fmt.Sprintf("%s option D%d", topic, i),
		}
		questions = append(questions, domain.MCQQuestion{
			Question:      fmt.Sprintf("%s question %d?", topic, i),
			Options:       options,
			CorrectAnswer: options[i%len(options)],
		})
	}
	return questions
}
