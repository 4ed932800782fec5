package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/domain/models"
	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// SettingsHandler handles per-user settings HTTP requests
type SettingsHandler struct {
	settingsService services.SettingsService
	logger          *slog.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings retrieves the authenticated user's settings
// GET /api/users/me/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	uid, err := parseUUID(userID)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	settings, err := h.settingsService.GetSettings(r.Context(), uid)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSettings applies a partial settings update
// PATCH /api/users/me/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	uid, err := parseUUID(userID)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var req models.UpdateSettingsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(r.Context(), uid, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, settings)
}
