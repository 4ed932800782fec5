package services

import (
	"context"

	"traction/internal/domain/models"
)

// LeadService handles CRM lead business logic.
type LeadService interface {
	CreateLead(ctx context.Context, req *CreateLeadRequest) (*models.Lead, error)
	GetLead(ctx context.Context, id string) (*models.Lead, error)
	UpdateLead(ctx context.Context, id string, req *UpdateLeadRequest) (*models.Lead, error)
	DeleteLead(ctx context.Context, id string) error
	ListLeads(ctx context.Context) ([]models.Lead, error)

	// FunnelSummary computes stage counts and conversion rates for one
	// funnel from the current lead snapshot.
	FunnelSummary(ctx context.Context, funnelName string) (*FunnelSummary, error)
}

// CreateLeadRequest represents a lead creation request.
type CreateLeadRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	Funnel     string  `json:"funnel"`
	Stage      string  `json:"stage"`
	Source     string  `json:"source,omitempty"`
	CampaignID *string `json:"campaign_id,omitempty"`
	Value      float64 `json:"value,omitempty"`
}

// UpdateLeadRequest represents a lead update request.
type UpdateLeadRequest struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Funnel     *string  `json:"funnel,omitempty"`
	Stage      *string  `json:"stage,omitempty"`
	Source     *string  `json:"source,omitempty"`
	CampaignID *string  `json:"campaign_id,omitempty"`
	Value      *float64 `json:"value,omitempty"`
}

// StageCount is the lead tally for one funnel stage.
type StageCount struct {
	Stage          string  `json:"stage"`
	Count          int     `json:"count"`
	TotalValue     float64 `json:"total_value"`
	ConversionRate float64 `json:"conversion_rate"` // fraction carried over from the previous stage
}

// FunnelSummary is the derived funnel view for the dashboard.
type FunnelSummary struct {
	Funnel     string       `json:"funnel"`
	TotalLeads int          `json:"total_leads"`
	Stages     []StageCount `json:"stages"`
}
