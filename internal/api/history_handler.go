package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/studysmart/internal/api/shared"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/platform/logger"
	"github.com/phrazzld/studysmart/internal/render"
)

// HistoryStore is the subset of the history log the handler needs.
type HistoryStore interface {
	List() []domain.HistoryItem
	Get(id string) (domain.HistoryItem, error)
	Clear(ctx context.Context)
}

// ArtifactExporter turns a rendered artifact into a downloadable document.
type ArtifactExporter interface {
	Export(a *render.Artifact) ([]byte, error)
}

// HistoryHandler serves the generation history and its replays.
type HistoryHandler struct {
	history  HistoryStore
	exporter ArtifactExporter
	logger   *slog.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history HistoryStore, exporter ArtifactExporter, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryHandler{
		history:  history,
		exporter: exporter,
		logger:   logger.With(slog.String("handler", "history")),
	}
}

// ListHistory handles GET /api/history requests. Items are newest first.
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.history.List())
}

// ClearHistory handles DELETE /api/history requests.
func (h *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.history.Clear(r.Context())
	logger.FromContextOrDefault(r.Context(), h.logger).Info("history cleared")
	w.WriteHeader(http.StatusNoContent)
}

// GetHistoryItem handles GET /api/history/{id} requests, returning the item
// together with its rendered artifact.
func (h *HistoryHandler) GetHistoryItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HistoryItemResponse{
		Item:     item,
		Artifact: render.Render(item),
	})
}

// ExportHistoryItem handles GET /api/history/{id}/pdf requests.
func (h *HistoryHandler) ExportHistoryItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.lookup(w, r)
	if !ok {
		return
	}

	doc, err := h.exporter.Export(render.Render(item))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to export history item", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(item.ID+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Error("failed to write pdf response", slog.String("error", err.Error()))
	}
}

func (h *HistoryHandler) lookup(w http.ResponseWriter, r *http.Request) (domain.HistoryItem, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id: required field")
		return domain.HistoryItem{}, false
	}

	item, err := h.history.Get(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return domain.HistoryItem{}, false
	}
	return item, true
}
