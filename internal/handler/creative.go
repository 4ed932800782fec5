package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// CreativeHandler handles creative HTTP requests
type CreativeHandler struct {
	creativeService services.CreativeService
	logger          *slog.Logger
}

// NewCreativeHandler creates a new creative handler
func NewCreativeHandler(creativeService services.CreativeService, logger *slog.Logger) *CreativeHandler {
	return &CreativeHandler{
		creativeService: creativeService,
		logger:          logger,
	}
}

// MoveCreativeRequest names the destination folder; null files the creative
// to the root (unfiled).
type MoveCreativeRequest struct {
	FolderID *string `json:"folder_id"`
}

// CreateCreative creates a new creative
// POST /api/creatives
func (h *CreativeHandler) CreateCreative(w http.ResponseWriter, r *http.Request) {
	var req services.CreateCreativeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	creative, err := h.creativeService.CreateCreative(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, creative)
}

// GetCreative retrieves a creative by ID
// GET /api/creatives/{id}
func (h *CreativeHandler) GetCreative(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Creative ID is required")
		return
	}

	creative, err := h.creativeService.GetCreative(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, creative)
}

// ListCreatives lists all creatives
// GET /api/creatives
func (h *CreativeHandler) ListCreatives(w http.ResponseWriter, r *http.Request) {
	creatives, err := h.creativeService.ListCreatives(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, creatives)
}

// UpdateCreative updates creative metadata (not folder membership)
// PATCH /api/creatives/{id}
func (h *CreativeHandler) UpdateCreative(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Creative ID is required")
		return
	}

	var req services.UpdateCreativeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	creative, err := h.creativeService.UpdateCreative(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, creative)
}

// MoveCreative files a creative into a folder (or to root on null)
// POST /api/creatives/{id}/move
func (h *CreativeHandler) MoveCreative(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Creative ID is required")
		return
	}

	var req MoveCreativeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.creativeService.MoveCreative(r.Context(), id, req.FolderID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// DeleteCreative deletes a creative and its folder membership
// DELETE /api/creatives/{id}
func (h *CreativeHandler) DeleteCreative(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Creative ID is required")
		return
	}

	if err := h.creativeService.DeleteCreative(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
