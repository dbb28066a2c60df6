package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/studysmart/internal/api/shared"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/platform/logger"
	"github.com/phrazzld/studysmart/internal/quiz"
)

// QuizResultRecorder stores the outcome of a scored quiz.
type QuizResultRecorder interface {
	Record(ctx context.Context, topic string, score, total int) (*domain.QuizResult, error)
}

// QuizHandler grades submitted quizzes.
type QuizHandler struct {
	results QuizResultRecorder
	logger  *slog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(results QuizResultRecorder, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		results: results,
		logger:  logger.With(slog.String("handler", "quiz")),
	}
}

// ScoreQuiz handles POST /api/quiz/score requests. The graded quiz is
// recorded in the quiz result log.
func (h *QuizHandler) ScoreQuiz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ScoreQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid score request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := quiz.Score(&domain.Quiz{Questions: req.Quiz}, req.Answers)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	record, err := h.results.Record(r.Context(), req.Topic, result.Correct, result.Total)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to record quiz result", err)
		return
	}

	log.Debug("quiz scored",
		slog.String("topic", req.Topic),
		slog.Int("correct", result.Correct),
		slog.Int("total", result.Total))
	shared.RespondWithJSON(w, r, http.StatusOK, ScoreQuizResponse{Result: result, Record: record})
}
