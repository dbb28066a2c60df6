package domain

import "strings"

// GenerationRequest is a user's request for study material on a topic.
type GenerationRequest struct {
	Topic       string      `json:"topic"`
	ContentType ContentType `json:"type"`
}

// NewGenerationRequest builds and validates a GenerationRequest.
func NewGenerationRequest(topic string, contentType ContentType) (*GenerationRequest, error) {
	req := &GenerationRequest{Topic: topic, ContentType: contentType}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks that the topic is non-empty and the content type is known.
func (r *GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return NewValidationError("topic", "is required", ErrEmptyTopic)
	}
	if !r.ContentType.Valid() {
		return NewValidationError("type", "must be one of Notes, Summary, MCQ, Flashcards", ErrInvalidContentType)
	}
	return nil
}
