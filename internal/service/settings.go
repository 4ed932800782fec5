package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"traction/internal/domain"
	"traction/internal/domain/models"
	"traction/internal/domain/repositories"
	"traction/internal/domain/services"
	"traction/internal/funnel"

	"github.com/google/uuid"
)

type settingsService struct {
	repo    repositories.SettingsRepository
	funnels *funnel.Registry
	logger  *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(
	repo repositories.SettingsRepository,
	funnels *funnel.Registry,
	logger *slog.Logger,
) services.SettingsService {
	return &settingsService{
		repo:    repo,
		funnels: funnels,
		logger:  logger,
	}
}

// GetSettings returns the user's stored settings, or a defaults-only document
// when the user has never saved any.
func (s *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*models.Settings, error) {
	settings, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &models.Settings{
			UserID: userID,
			Values: models.JSONMap{},
		}
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	if req.UI != nil {
		switch req.UI.Theme {
		case "", "light", "dark", "auto":
		default:
			return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown theme %q", req.UI.Theme)}
		}
	}
	if req.Funnel != nil && req.Funnel.DefaultFunnel != "" {
		if !s.funnels.Has(req.Funnel.DefaultFunnel) {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown funnel %q", req.Funnel.DefaultFunnel)}
		}
	}

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Only the namespaces present in the request are replaced. Other
	// namespaces keep whatever the user had.
	if req.UI != nil {
		if err := settings.SetNamespace("ui", req.UI); err != nil {
			return nil, err
		}
	}
	if req.Funnel != nil {
		if err := settings.SetNamespace("funnel", req.Funnel); err != nil {
			return nil, err
		}
	}
	if req.Notifications != nil {
		if err := settings.SetNamespace("notifications", req.Notifications); err != nil {
			return nil, err
		}
	}

	settings.UpdatedAt = time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = settings.UpdatedAt
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("settings updated", "user_id", userID)

	return settings, nil
}
