package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"traction/internal/auth"
	"traction/internal/domain/models"
	"traction/internal/domain/repositories"
	"traction/internal/domain/services"
)

type activityRecorder struct {
	repo   repositories.ActivityRepository
	logger *slog.Logger
}

// NewActivityRecorder creates the audit-trail recorder.
func NewActivityRecorder(repo repositories.ActivityRepository, logger *slog.Logger) services.ActivityRecorder {
	return &activityRecorder{
		repo:   repo,
		logger: logger,
	}
}

// Record appends one audit entry. It is fire-and-forget: failures are logged
// and swallowed so the audit trail can never fail the mutation it describes.
// The actor's email is taken from the request context when the entry does not
// carry one.
func (r *activityRecorder) Record(ctx context.Context, entry *models.ActivityEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.UserEmail == "" {
		entry.UserEmail = auth.EmailFromContext(ctx)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.Warn("failed to record activity",
			"action", entry.Action,
			"item_type", entry.ItemType,
			"item_id", entry.ItemID,
			"error", err,
		)
	}
}

// ListRecent returns the newest audit entries for the dashboard feed.
func (r *activityRecorder) ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return r.repo.ListRecent(ctx, limit)
}
