package services

import (
	"context"

	"github.com/google/uuid"
	"traction/internal/domain/models"
)

// SettingsService handles per-user dashboard settings.
type SettingsService interface {
	// GetSettings returns the user's settings, or defaults when none exist.
	GetSettings(ctx context.Context, userID uuid.UUID) (*models.Settings, error)

	// UpdateSettings applies a partial update, creating the row when needed.
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *models.UpdateSettingsRequest) (*models.Settings, error)
}
