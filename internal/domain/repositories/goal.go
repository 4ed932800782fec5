package repositories

import (
	"context"

	"traction/internal/domain/models"
)

// GoalRepository defines data access operations for goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, id string) (*models.Goal, error)
	Update(ctx context.Context, id string, patch *models.GoalPatch) (*models.Goal, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Goal, error)
}
