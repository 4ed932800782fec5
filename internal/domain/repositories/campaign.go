package repositories

import (
	"context"

	"traction/internal/domain/models"
)

// CampaignRepository defines data access operations for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id string) (*models.Campaign, error)
	Update(ctx context.Context, id string, patch *models.CampaignPatch) (*models.Campaign, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Campaign, error)
}
