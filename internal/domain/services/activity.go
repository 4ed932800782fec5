package services

import (
	"context"

	"traction/internal/domain/models"
)

// ActivityRecorder writes the audit trail. Record is fire-and-forget: a
// failed write is logged and swallowed so it can never fail the mutation
// that triggered it.
type ActivityRecorder interface {
	Record(ctx context.Context, entry *models.ActivityEntry)
	ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error)
}
