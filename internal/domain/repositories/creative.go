package repositories

import (
	"context"

	"traction/internal/domain/models"
)

// CreativeRepository defines data access operations for creatives.
type CreativeRepository interface {
	Create(ctx context.Context, creative *models.Creative) error
	GetByID(ctx context.Context, id string) (*models.Creative, error)
	Update(ctx context.Context, id string, patch *models.CreativePatch) (*models.Creative, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Creative, error)
}
