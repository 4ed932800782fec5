package repositories

import (
	"context"

	"traction/internal/domain/models"
)

// LeadRepository defines data access operations for leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	Update(ctx context.Context, id string, patch *models.LeadPatch) (*models.Lead, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Lead, error)

	// ListByCampaign lists leads attributed to a campaign.
	ListByCampaign(ctx context.Context, campaignID string) ([]models.Lead, error)
}
