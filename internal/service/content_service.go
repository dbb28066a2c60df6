package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/studysmart/internal/content"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/events"
	"github.com/phrazzld/studysmart/internal/generation"
	"github.com/phrazzld/studysmart/internal/platform/logger"
	"github.com/phrazzld/studysmart/internal/redact"
)

// ActionResult is the outcome of a generation action. Exactly one of
// Content and Error is set.
type ActionResult struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ContentService provides content generation operations
type ContentService interface {
	// GenerateContent dispatches a request to the generation contract for
	// its content type. It returns a *domain.ValidationError for bad input
	// and a *GenerationError for any LLM failure.
	GenerateContent(ctx context.Context, topic string, contentType domain.ContentType) (string, error)

	// Generate is GenerateContent followed by a generation-completed event
	// on success. A panic in the generator is returned as a GenerationError.
	Generate(ctx context.Context, topic string, contentType domain.ContentType) (string, error)

	// Action validates a raw request, generates content and announces the
	// success. It always returns, never panics.
	Action(ctx context.Context, topic string, contentType string) ActionResult
}

// contentServiceImpl implements the ContentService interface
type contentServiceImpl struct {
	generator generation.Generator
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// NewContentService creates a new ContentService.
// The emitter is optional; without one successes are not announced.
func NewContentService(
	generator generation.Generator,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (ContentService, error) {
	if generator == nil {
		return nil, domain.NewValidationError("generator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &contentServiceImpl{
		generator: generator,
		emitter:   emitter,
		logger:    logger.With(slog.String("component", "content_service")),
	}, nil
}

// contentKind maps the free-text content types to the contract's token.
func contentKind(ct domain.ContentType) (generation.ContentKind, bool) {
	switch ct {
	case domain.ContentTypeNotes:
		return generation.ContentKindNotes, true
	case domain.ContentTypeSummary:
		return generation.ContentKindSummary, true
	case domain.ContentTypeFlashcards:
		return generation.ContentKindFlashcards, true
	case domain.ContentTypeMCQ:
		return "", false
	default:
		return "", false
	}
}

// GenerateContent implements ContentService.GenerateContent
func (s *contentServiceImpl) GenerateContent(
	ctx context.Context,
	topic string,
	contentType domain.ContentType,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req, err := domain.NewGenerationRequest(topic, contentType)
	if err != nil {
		log.DebugContext(ctx, "rejected generation request", slog.String("error", err.Error()))
		return "", err
	}

	var text string
	switch req.ContentType {
	case domain.ContentTypeMCQ:
		text, err = s.generateQuiz(ctx, req.Topic)
	case domain.ContentTypeNotes, domain.ContentTypeSummary, domain.ContentTypeFlashcards:
		kind, _ := contentKind(req.ContentType)
		text, err = s.generateLearningContent(ctx, req.Topic, kind)
	default:
		return "", domain.NewValidationError("type", "is not supported", domain.ErrInvalidContentType)
	}

	if err != nil {
		log.ErrorContext(ctx, "content generation failed",
			slog.String("topic", req.Topic),
			slog.String("content_type", req.ContentType.String()),
			slog.String("error", redact.Error(err)))
		return "", NewGenerationError(err)
	}

	log.InfoContext(ctx, "content generated",
		slog.String("topic", req.Topic),
		slog.String("content_type", req.ContentType.String()),
		slog.Int("content_length", len(text)))
	return text, nil
}

func (s *contentServiceImpl) generateQuiz(ctx context.Context, topic string) (string, error) {
	out, err := s.generator.GenerateQuiz(ctx, generation.QuizInput{Topic: topic})
	if err != nil {
		return "", err
	}
	if err := generation.ValidateOutput(out); err != nil {
		return "", err
	}
	return content.EncodeQuiz(out.AsQuiz())
}

func (s *contentServiceImpl) generateLearningContent(
	ctx context.Context,
	topic string,
	kind generation.ContentKind,
) (string, error) {
	out, err := s.generator.GenerateLearningContent(ctx, generation.LearningContentInput{
		Topic:       topic,
		ContentKind: kind,
	})
	if err != nil {
		return "", err
	}
	if err := generation.ValidateOutput(out); err != nil {
		return "", err
	}
	return out.Content, nil
}

// Action implements ContentService.Action
func (s *contentServiceImpl) Action(ctx context.Context, topic string, rawType string) (result ActionResult) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "recovered from panic during generation", slog.Any("panic", r))
			result = ActionResult{Error: NewGenerationError(fmt.Errorf("unexpected failure: %v", r)).Message}
		}
	}()

	contentType, err := domain.ParseContentType(rawType)
	if err != nil {
		return ActionResult{
			Error: domain.NewValidationError("type", "must be one of Notes, Summary, MCQ, Flashcards", err).Error(),
		}
	}

	text, err := s.Generate(ctx, topic, contentType)
	if err != nil {
		return ActionResult{Error: err.Error()}
	}
	return ActionResult{Content: text}
}

// Generate implements ContentService.Generate
func (s *contentServiceImpl) Generate(
	ctx context.Context,
	topic string,
	contentType domain.ContentType,
) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContextOrDefault(ctx, s.logger).
				ErrorContext(ctx, "recovered from panic during generation", slog.Any("panic", r))
			text, err = "", NewGenerationError(fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	text, err = s.GenerateContent(ctx, topic, contentType)
	if err != nil {
		return "", err
	}
	s.announce(ctx, topic, contentType, text)
	return text, nil
}

// announce emits a generation-completed event. Failures are logged only.
func (s *contentServiceImpl) announce(ctx context.Context, topic string, ct domain.ContentType, text string) {
	if s.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewGenerationCompletedEvent(events.GenerationCompletedPayload{
		Topic:       topic,
		ContentType: ct.String(),
		Content:     text,
	})
	if err == nil {
		err = s.emitter.EmitEvent(ctx, event)
	}
	if err != nil {
		log.ErrorContext(ctx, "failed to announce generated content", slog.String("error", err.Error()))
	}
}

