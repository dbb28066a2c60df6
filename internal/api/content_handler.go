package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/studysmart/internal/api/shared"
	"github.com/phrazzld/studysmart/internal/domain"
	"github.com/phrazzld/studysmart/internal/platform/logger"
	"github.com/phrazzld/studysmart/internal/service"
)

// ContentHandler handles content generation requests.
type ContentHandler struct {
	contentService service.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		contentService: contentService,
		logger:         logger.With(slog.String("handler", "content")),
	}
}

// GenerateContent handles POST /api/content requests.
func (h *ContentHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid content request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	contentType, err := domain.ParseContentType(req.Type)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	text, err := h.contentService.Generate(r.Context(), req.Topic, contentType)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("content generated",
		slog.String("topic", req.Topic),
		slog.String("content_type", contentType.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, ContentResponse{Content: text})
}
