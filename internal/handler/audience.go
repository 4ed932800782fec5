package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// AudienceHandler handles audience HTTP requests
type AudienceHandler struct {
	audienceService services.AudienceService
	logger          *slog.Logger
}

// NewAudienceHandler creates a new audience handler
func NewAudienceHandler(audienceService services.AudienceService, logger *slog.Logger) *AudienceHandler {
	return &AudienceHandler{
		audienceService: audienceService,
		logger:          logger,
	}
}

// CreateAudience creates a new audience
// POST /api/audiences
func (h *AudienceHandler) CreateAudience(w http.ResponseWriter, r *http.Request) {
	var req services.CreateAudienceRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	audience, err := h.audienceService.CreateAudience(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, audience)
}

// GetAudience retrieves an audience by ID
// GET /api/audiences/{id}
func (h *AudienceHandler) GetAudience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Audience ID is required")
		return
	}

	audience, err := h.audienceService.GetAudience(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, audience)
}

// ListAudiences lists all audiences
// GET /api/audiences
func (h *AudienceHandler) ListAudiences(w http.ResponseWriter, r *http.Request) {
	audiences, err := h.audienceService.ListAudiences(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, audiences)
}

// UpdateAudience updates an audience
// PATCH /api/audiences/{id}
func (h *AudienceHandler) UpdateAudience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Audience ID is required")
		return
	}

	var req services.UpdateAudienceRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	audience, err := h.audienceService.UpdateAudience(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, audience)
}

// DeleteAudience deletes an audience
// DELETE /api/audiences/{id}
func (h *AudienceHandler) DeleteAudience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Audience ID is required")
		return
	}

	if err := h.audienceService.DeleteAudience(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
