package services

import (
	"context"
	"time"

	"traction/internal/domain/models"
)

// CampaignService handles campaign business logic.
type CampaignService interface {
	CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*models.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, req *UpdateCampaignRequest) (*models.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	// ListCampaigns returns campaigns, optionally filtered by status and
	// sorted by the given key (see analytics sort keys).
	ListCampaigns(ctx context.Context, filter *CampaignFilter) ([]models.Campaign, error)
}

// CreateCampaignRequest represents a campaign creation request.
type CreateCampaignRequest struct {
	Name      string     `json:"name"`
	Status    string     `json:"status,omitempty"` // defaults to draft
	Channel   string     `json:"channel"`
	Budget    float64    `json:"budget"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// UpdateCampaignRequest represents a campaign update request.
type UpdateCampaignRequest struct {
	Name      *string    `json:"name,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Channel   *string    `json:"channel,omitempty"`
	Budget    *float64   `json:"budget,omitempty"`
	Spent     *float64   `json:"spent,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// CampaignFilter narrows and orders campaign listings.
type CampaignFilter struct {
	Status string `json:"status,omitempty"`
	SortBy string `json:"sort_by,omitempty"` // "name", "budget", "spent", "created_at"
}
