package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/studysmart/internal/api"
	apiMiddleware "github.com/phrazzld/studysmart/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	contentHandler := api.NewContentHandler(app.contentService, app.logger)
	historyHandler := api.NewHistoryHandler(app.history, app.exporter, app.logger)
	quizHandler := api.NewQuizHandler(app.results, app.logger)
	statsHandler := api.NewStatsHandler(app.statsService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/content", contentHandler.GenerateContent)

		r.Get("/history", historyHandler.ListHistory)
		r.Delete("/history", historyHandler.ClearHistory)
		r.Get("/history/{id}", historyHandler.GetHistoryItem)
		r.Get("/history/{id}/pdf", historyHandler.ExportHistoryItem)

		r.Post("/quiz/score", quizHandler.ScoreQuiz)
		r.Get("/stats", statsHandler.GetStats)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
