package service

import "fmt"

// GenerationError is the single error value the dispatcher returns for any
// LLM failure, whether transport, refusal or contract violation.
type GenerationError struct {
	// Message is the human-readable description surfaced to the caller
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for GenerationError.
func (e *GenerationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps err with a message carrying the generator's text.
func NewGenerationError(err error) *GenerationError {
	return &GenerationError{
		Message: fmt.Sprintf("content generation failed: %v", err),
		Err:     err,
	}
}
