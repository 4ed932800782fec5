package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// CampaignHandler handles campaign HTTP requests
type CampaignHandler struct {
	campaignService services.CampaignService
	logger          *slog.Logger
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService services.CampaignService, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		logger:          logger,
	}
}

// CreateCampaign creates a new campaign
// POST /api/campaigns
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req services.CreateCampaignRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := h.campaignService.CreateCampaign(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, campaign)
}

// GetCampaign retrieves a campaign by ID
// GET /api/campaigns/{id}
func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Campaign ID is required")
		return
	}

	campaign, err := h.campaignService.GetCampaign(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, campaign)
}

// ListCampaigns lists campaigns, optionally filtered and sorted
// GET /api/campaigns?status=active&sort_by=budget
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter := &services.CampaignFilter{
		Status: r.URL.Query().Get("status"),
		SortBy: r.URL.Query().Get("sort_by"),
	}

	campaigns, err := h.campaignService.ListCampaigns(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, campaigns)
}

// UpdateCampaign updates a campaign
// PATCH /api/campaigns/{id}
func (h *CampaignHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Campaign ID is required")
		return
	}

	var req services.UpdateCampaignRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, campaign)
}

// DeleteCampaign deletes a campaign
// DELETE /api/campaigns/{id}
func (h *CampaignHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Campaign ID is required")
		return
	}

	if err := h.campaignService.DeleteCampaign(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
