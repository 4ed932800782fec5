package repositories

import (
	"context"

	"traction/internal/domain/models"
)

// AudienceRepository defines data access operations for audiences.
type AudienceRepository interface {
	Create(ctx context.Context, audience *models.Audience) error
	GetByID(ctx context.Context, id string) (*models.Audience, error)
	Update(ctx context.Context, id string, patch *models.AudiencePatch) (*models.Audience, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Audience, error)
}
