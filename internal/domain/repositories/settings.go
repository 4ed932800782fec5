package repositories

import (
	"context"

	"github.com/google/uuid"
	"traction/internal/domain/models"
)

// SettingsRepository defines data access operations for per-user settings.
type SettingsRepository interface {
	// GetByUserID retrieves settings for one user. Returns nil (not an error)
	// when the user has never saved any.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Settings, error)

	// Upsert creates or replaces the settings row for the user.
	Upsert(ctx context.Context, settings *models.Settings) error
}
