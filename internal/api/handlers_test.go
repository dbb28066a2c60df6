package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/studysmart/internal/api"
	"github.com/phrazzld/studysmart/internal/api/middleware"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/events"
	"github.com/phrazzld/studysmart/internal/export"
	"github.com/phrazzld/studysmart/internal/generation"
	"github.com/phrazzld/studysmart/internal/history"
	"github.com/phrazzld/studysmart/internal/mocks"
	"github.com/phrazzld/studysmart/internal/quiz"
	"github.com/phrazzld/studysmart/internal/render"
	"github.com/phrazzld/studysmart/internal/service"
	"github.com/phrazzld/studysmart/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router  http.Handler
	history *history.Store
	results *quiz.ResultLog
}

func newTestServer(t *testing.T, gen generation.Generator) *testServer {
	t.Helper()
	ctx := context.Background()
	backend := store.NewMemoryStore()

	hist := history.NewStore(ctx, backend, nil)
	results := quiz.NewResultLog(ctx, backend, nil)

	emitter := events.NewInMemoryEventEmitter(nil)
	emitter.RegisterHandler(history.NewRecorder(hist))

	contentService, err := service.NewContentService(gen, emitter, nil)
	require.NoError(t, err)
	statsService, err := service.NewStatsService(hist, results, nil)
	require.NoError(t, err)

	contentHandler := api.NewContentHandler(contentService, nil)
	historyHandler := api.NewHistoryHandler(hist, export.NewPDFExporter(nil), nil)
	quizHandler := api.NewQuizHandler(results, nil)
	statsHandler := api.NewStatsHandler(statsService)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewTraceMiddleware(nil))
	r.Route("/api", func(r chi.Router) {
		r.Post("/content", contentHandler.GenerateContent)
		r.Get("/history", historyHandler.ListHistory)
		r.Delete("/history", historyHandler.ClearHistory)
		r.Get("/history/{id}", historyHandler.GetHistoryItem)
		r.Get("/history/{id}/pdf", historyHandler.ExportHistoryItem)
		r.Post("/quiz/score", quizHandler.ScoreQuiz)
		r.Get("/stats", statsHandler.GetStats)
	})

	return &testServer{router: r, history: hist, results: results}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func TestGenerateContentSuccess(t *testing.T) {
	text := "term: definition\nother - meaning"
	srv := newTestServer(t, mocks.NewMockGeneratorWithContent(text))

	rec := srv.do(t, http.MethodPost, "/api/content", api.ContentRequest{Topic: "Biology", Type: "Flashcards"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ContentResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, text, resp.Content)

	items := srv.history.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Biology", items[0].Topic)
	assert.Equal(t, domain.ContentTypeFlashcards, items[0].Type)
	assert.Equal(t, text, items[0].Content)
}

func TestGenerateContentRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{name: "malformed json", body: `{"topic":`},
		{name: "empty body", body: nil},
		{name: "unknown field", body: `{"topic":"x","type":"Notes","extra":1}`},
		{name: "unknown type", body: api.ContentRequest{Topic: "x", Type: "Essay"}},
		{name: "lowercase type", body: api.ContentRequest{Topic: "x", Type: "notes"}},
		{name: "empty topic", body: api.ContentRequest{Topic: "  ", Type: "Notes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := mocks.NewMockGeneratorWithContent("unused")
			srv := newTestServer(t, gen)

			rec := srv.do(t, http.MethodPost, "/api/content", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			decodeBody(t, rec, &resp)
			assert.NotEmpty(t, resp["error"])
			assert.NotEmpty(t, resp["trace_id"])

			assert.Zero(t, gen.LearningContentCallCount())
			assert.Zero(t, srv.history.Len())
		})
	}
}

func TestGenerateContentGeneratorFailure(t *testing.T) {
	srv := newTestServer(t, mocks.MockGeneratorWithContentBlocked())

	rec := srv.do(t, http.MethodPost, "/api/content", api.ContentRequest{Topic: "Chemistry", Type: "MCQ"})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp["error"], "content generation failed")
	assert.Zero(t, srv.history.Len(), "failed generations are not recorded")
}

func TestGenerateContentGeneratorPanic(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateLearningContentFn: func(context.Context, generation.LearningContentInput) (*generation.LearningContentOutput, error) {
			panic("boom")
		},
	}
	srv := newTestServer(t, gen)

	rec := srv.do(t, http.MethodPost, "/api/content", api.ContentRequest{Topic: "Optics", Type: "Notes"})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "content generation failed: unexpected failure: boom", resp["error"])
	assert.Zero(t, srv.history.Len())
}

func TestHistoryEndpoints(t *testing.T) {
	srv := newTestServer(t, mocks.NewMockGeneratorWithQuiz(mocks.SampleQuiz("Algebra")))

	rec := srv.do(t, http.MethodPost, "/api/content", api.ContentRequest{Topic: "Algebra", Type: "MCQ"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.HistoryItem
	decodeBody(t, rec, &items)
	require.Len(t, items, 1)
	id := items[0].ID

	t.Run("get item with artifact", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/history/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.HistoryItemResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, id, resp.Item.ID)
		require.NotNil(t, resp.Artifact)
		require.NotNil(t, resp.Artifact.Quiz)
		assert.Len(t, resp.Artifact.Quiz.Questions, domain.QuizQuestionCount)
		assert.Empty(t, resp.Artifact.Message)
	})

	t.Run("export pdf", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/history/"+id+"/pdf", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/history/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = srv.do(t, http.MethodGet, "/api/history/missing/pdf", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("clear", func(t *testing.T) {
		rec := srv.do(t, http.MethodDelete, "/api/history", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, srv.history.Len())

		rec = srv.do(t, http.MethodGet, "/api/history", nil)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestScoreQuizAndStats(t *testing.T) {
	srv := newTestServer(t, mocks.NewMockGeneratorWithContent("a\nb"))
	questions := mocks.SampleQuiz("Physics")

	answers := map[int]string{}
	for i := 0; i < 4; i++ {
		answers[i] = questions[i].CorrectAnswer
	}
	answers[4] = questions[4].Options[0]

	rec := srv.do(t, http.MethodPost, "/api/quiz/score", api.ScoreQuizRequest{
		Topic:   "Physics",
		Quiz:    questions,
		Answers: answers,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ScoreQuizResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 4, resp.Result.Correct)
	assert.Equal(t, 1, resp.Result.Incorrect)
	assert.Equal(t, 80, resp.Result.Percent)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "Physics", resp.Record.Topic)
	assert.Equal(t, domain.DefaultQuizDifficulty, resp.Record.Difficulty)
	assert.Len(t, srv.results.List(), 1)

	rec = srv.do(t, http.MethodPost, "/api/content", api.ContentRequest{Topic: "Physics", Type: "Notes"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats service.Stats
	decodeBody(t, rec, &stats)
	assert.Equal(t, service.Stats{ActiveModules: 1, QuizzesTaken: 1, MasteryRate: 80}, stats)
}

func TestScoreQuizValidation(t *testing.T) {
	srv := newTestServer(t, mocks.NewMockGeneratorWithContent("unused"))

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "missing topic", body: api.ScoreQuizRequest{Quiz: mocks.SampleQuiz("x")}},
		{name: "no questions", body: api.ScoreQuizRequest{Topic: "x"}},
		{name: "three options", body: api.ScoreQuizRequest{
			Topic: "x",
			Quiz:  []domain.MCQQuestion{{Question: "q", Options: []string{"a", "b", "c"}, CorrectAnswer: "a"}},
		}},
		{name: "malformed", body: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/api/quiz/score", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Empty(t, srv.results.List())
}

type failingExporter struct{}

func (failingExporter) Export(*render.Artifact) ([]byte, error) {
	return nil, errors.New("disk full at /var/tmp/out.pdf")
}

func TestExportFailureIsSanitized(t *testing.T) {
	hist := history.NewStore(context.Background(), nil, nil)
	item := hist.Add(context.Background(), domain.NewHistoryEntry{
		Topic:   "Geology",
		Type:    domain.ContentTypeNotes,
		Content: "rock",
	})
	handler := api.NewHistoryHandler(hist, failingExporter{}, nil)

	r := chi.NewRouter()
	r.Get("/api/history/{id}/pdf", handler.ExportHistoryItem)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history/"+item.ID+"/pdf", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/var/tmp")
}
