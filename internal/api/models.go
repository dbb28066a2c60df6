package api

import (
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/quiz"
	"github.com/phrazzld/studysmart/internal/render"
)

// ContentRequest is the payload for POST /api/content. Topic and type are
// validated by the content service so the messages match the action result.
type ContentRequest struct {
	Topic string `json:"topic"`
	Type  string `json:"type"`
}

// ContentResponse is the successful response for POST /api/content.
type ContentResponse struct {
	Content string `json:"content"`
}

// HistoryItemResponse pairs a history item with its rendered artifact.
type HistoryItemResponse struct {
	Item     domain.HistoryItem `json:"item"`
	Artifact *render.Artifact   `json:"artifact"`
}

// ScoreQuizRequest is the payload for POST /api/quiz/score.
// Answers are keyed by zero-based question index.
type ScoreQuizRequest struct {
	Topic   string               `json:"topic"   validate:"required"`
	Quiz    []domain.MCQQuestion `json:"quiz"    validate:"required,min=1,dive"`
	Answers map[int]string       `json:"answers"`
}

// ScoreQuizResponse carries the graded quiz and the recorded result.
type ScoreQuizResponse struct {
	Result *quiz.Result       `json:"result"`
	Record *domain.QuizResult `json:"record"`
}
