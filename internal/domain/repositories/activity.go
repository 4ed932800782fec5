package repositories

import (
	"context"

	"traction/internal/domain/models"
)

// ActivityRepository defines data access operations for the audit trail.
type ActivityRepository interface {
	// Create appends one entry to the trail.
	Create(ctx context.Context, entry *models.ActivityEntry) error

	// ListRecent returns the newest entries, most recent first.
	ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
