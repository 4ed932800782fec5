package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// ActivityHandler serves the dashboard activity feed
type ActivityHandler struct {
	activity services.ActivityRecorder
	logger   *slog.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activity services.ActivityRecorder, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
		logger:   logger,
	}
}

// ListRecent returns the newest audit entries, most recent first
// GET /api/activity?limit=50
func (h *ActivityHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	entries, err := h.activity.ListRecent(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, entries)
}
