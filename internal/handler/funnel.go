package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/funnel"
	"traction/internal/httputil"
)

// FunnelHandler serves the funnel definitions loaded at startup
type FunnelHandler struct {
	registry *funnel.Registry
	logger   *slog.Logger
}

// NewFunnelHandler creates a new funnel handler
func NewFunnelHandler(registry *funnel.Registry, logger *slog.Logger) *FunnelHandler {
	return &FunnelHandler{
		registry: registry,
		logger:   logger,
	}
}

// ListFunnels returns all funnel definitions in configuration order
// GET /api/funnels
func (h *FunnelHandler) ListFunnels(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.registry.List())
}

// GetFunnel returns one funnel definition
// GET /api/funnels/{name}
func (h *FunnelHandler) GetFunnel(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Funnel name is required")
		return
	}

	def, err := h.registry.Get(name)
	if err != nil {
		httputil.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, def)
}

// HealthCheck reports service liveness
// GET /health
func (h *FunnelHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
