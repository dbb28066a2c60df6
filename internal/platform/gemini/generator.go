package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"text/template"
	"time"

	"github.com/phrazzld/studysmart/internal/config"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/generation"
	"google.golang.org/genai"
)

// modelClient is the subset of the genai client the generator calls.
// *genai.Models satisfies it.
type modelClient interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements generation.Generator on the Gemini API.
type Generator struct {
	logger    *slog.Logger
	config    config.LLMConfig
	client    modelClient
	templates *template.Template
	sleep     func(ctx context.Context, d time.Duration) error
}

// Compile-time check that Generator implements generation.Generator.
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator backed by a genai client for the Gemini API.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create genai client: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, cfg, client.Models)
}

// newGenerator wires a Generator around an arbitrary model client.
func newGenerator(logger *slog.Logger, cfg config.LLMConfig, client modelClient) (*Generator, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client cannot be nil", generation.ErrInvalidConfig)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	tmpl, err := loadTemplates(cfg.PromptTemplateDir)
	if err != nil {
		return nil, err
	}

	return &Generator{
		logger:    logger.With(slog.String("component", "gemini_generator")),
		config:    cfg,
		client:    client,
		templates: tmpl,
		sleep:     sleepContext,
	}, nil
}

// validateConfig checks the fields the generator cannot run without.
func validateConfig(cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries cannot be negative", generation.ErrInvalidConfig)
	}
	return nil
}

// GenerateLearningContent produces notes, a summary or flashcard text.
func (g *Generator) GenerateLearningContent(
	ctx context.Context,
	input generation.LearningContentInput,
) (*generation.LearningContentOutput, error) {
	if err := generation.ValidateInput(input); err != nil {
		return nil, err
	}

	prompt, err := renderPrompt(g.templates, learningContentTemplate, learningPromptData{
		Topic:       input.Topic,
		ContentKind: input.ContentKind,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidRequest, err)
	}

	var output generation.LearningContentOutput
	if err := g.generate(ctx, "learning_content", prompt, learningContentSchema(), &output); err != nil {
		return nil, err
	}
	return &output, nil
}

// GenerateQuiz produces a five question multiple-choice quiz.
func (g *Generator) GenerateQuiz(ctx context.Context, input generation.QuizInput) (*generation.QuizOutput, error) {
	if err := generation.ValidateInput(input); err != nil {
		return nil, err
	}

	prompt, err := renderPrompt(g.templates, quizTemplate, quizPromptData{
		Topic:         input.Topic,
		QuestionCount: domain.QuizQuestionCount,
		OptionCount:   domain.QuizOptionCount,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidRequest, err)
	}

	var output generation.QuizOutput
	if err := g.generate(ctx, "quiz", prompt, quizSchema(), &output); err != nil {
		return nil, err
	}
	return &output, nil
}

// generate calls the model with retries and decodes the validated JSON
// response into out.
func (g *Generator) generate(
	ctx context.Context,
	contract string,
	prompt string,
	schema *genai.Schema,
	out any,
) error {
	log := g.logger.With(slog.String("contract", contract), slog.String("model", g.config.ModelName))

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.config.Temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	var lastErr error
	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := g.backoff(attempt)
			log.WarnContext(ctx, "retrying generation after transient failure",
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
				slog.String("error", lastErr.Error()))
			if err := g.sleep(ctx, delay); err != nil {
				return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
			}
		}

		start := time.Now()
		resp, err := g.client.GenerateContent(ctx, g.config.ModelName, contents, genConfig)
		if err != nil {
			lastErr = classifyAPIError(err)
			if ctx.Err() != nil || !errors.Is(lastErr, generation.ErrTransientFailure) {
				log.ErrorContext(ctx, "generation request failed", slog.String("error", lastErr.Error()))
				return lastErr
			}
			continue
		}

		text, err := responseText(resp)
		if err != nil {
			log.ErrorContext(ctx, "unusable generation response", slog.String("error", err.Error()))
			return err
		}

		if err := json.Unmarshal([]byte(text), out); err != nil {
			return fmt.Errorf("%w: failed to decode response JSON: %v", generation.ErrInvalidResponse, err)
		}
		if err := generation.ValidateOutput(out); err != nil {
			log.ErrorContext(ctx, "generation response violates contract", slog.String("error", err.Error()))
			return err
		}

		log.DebugContext(ctx, "generation succeeded",
			slog.Int("attempt", attempt),
			slog.Duration("duration", time.Since(start)))
		return nil
	}

	log.ErrorContext(ctx, "generation retries exhausted",
		slog.Int("max_retries", g.config.MaxRetries),
		slog.String("error", lastErr.Error()))
	return fmt.Errorf("%w: retries exhausted: %v", generation.ErrGenerationFailed, lastErr)
}

// backoff returns the delay before the given retry attempt: exponential in
// the attempt number with up to 20% jitter.
func (g *Generator) backoff(attempt int) time.Duration {
	base := time.Duration(g.config.RetryDelaySeconds) * time.Second
	delay := time.Duration(float64(base) * math.Pow(2, float64(attempt-1)))
	jitter := time.Duration(rand.Float64() * 0.2 * float64(delay))
	return delay + jitter
}

// responseText extracts the JSON text from a response, rejecting blocked or
// empty responses.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}
	return text, nil
}

// classifyAPIError maps a client error onto the generation error taxonomy.
// Rate limits, server errors and transport failures are transient.
func classifyAPIError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429 || apiErr.Code >= 500:
			return fmt.Errorf("%w: %s (code %d)", generation.ErrTransientFailure, apiErr.Message, apiErr.Code)
		case apiErr.Code == 400:
			return fmt.Errorf("%w: %s", generation.ErrInvalidRequest, apiErr.Message)
		default:
			return fmt.Errorf("%w: %s (code %d)", generation.ErrGenerationFailed, apiErr.Message, apiErr.Code)
		}
	}

	return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
