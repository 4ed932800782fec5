package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// LeadHandler handles CRM lead HTTP requests
type LeadHandler struct {
	leadService services.LeadService
	logger      *slog.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService services.LeadService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// CreateLead creates a new lead
// POST /api/leads
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req services.CreateLeadRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.leadService.CreateLead(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, lead)
}

// GetLead retrieves a lead by ID
// GET /api/leads/{id}
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Lead ID is required")
		return
	}

	lead, err := h.leadService.GetLead(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, lead)
}

// ListLeads lists all leads
// GET /api/leads
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.ListLeads(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, leads)
}

// UpdateLead updates a lead, including stage transitions
// PATCH /api/leads/{id}
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Lead ID is required")
		return
	}

	var req services.UpdateLeadRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.leadService.UpdateLead(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, lead)
}

// DeleteLead deletes a lead
// DELETE /api/leads/{id}
func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Lead ID is required")
		return
	}

	if err := h.leadService.DeleteLead(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetFunnelSummary computes stage counts and conversion rates for one funnel
// GET /api/funnels/{name}/summary
func (h *LeadHandler) GetFunnelSummary(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Funnel name is required")
		return
	}

	summary, err := h.leadService.FunnelSummary(r.Context(), name)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, summary)
}
