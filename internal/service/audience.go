package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"traction/internal/config"
	"traction/internal/domain"
	"traction/internal/domain/models"
	"traction/internal/domain/repositories"
	"traction/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type audienceService struct {
	repo     repositories.AudienceRepository
	activity services.ActivityRecorder
	logger   *slog.Logger
}

// NewAudienceService creates a new audience service.
func NewAudienceService(
	repo repositories.AudienceRepository,
	activity services.ActivityRecorder,
	logger *slog.Logger,
) services.AudienceService {
	return &audienceService{
		repo:     repo,
		activity: activity,
		logger:   logger,
	}
}

func (s *audienceService) CreateAudience(ctx context.Context, req *services.CreateAudienceRequest) (*models.Audience, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("audience name is required"),
			validation.Length(1, config.MaxAudienceNameLength),
		),
		validation.Field(&req.Size, validation.Min(0)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	audience := &models.Audience{
		Name:        req.Name,
		Description: req.Description,
		Size:        req.Size,
		Tags:        req.Tags,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, audience); err != nil {
		return nil, err
	}

	s.logger.Info("audience created", "id", audience.ID, "name", audience.Name)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "created",
		ItemType: "audience",
		ItemID:   audience.ID,
		ItemName: audience.Name,
	})

	return audience, nil
}

func (s *audienceService) GetAudience(ctx context.Context, id string) (*models.Audience, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *audienceService) UpdateAudience(ctx context.Context, id string, req *services.UpdateAudienceRequest) (*models.Audience, error) {
	patch := &models.AudiencePatch{
		Description: req.Description,
		Size:        req.Size,
		Tags:        req.Tags,
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &domain.ValidationError{Message: "audience name cannot be empty"}
		}
		patch.Name = &trimmed
	}
	if req.Size != nil && *req.Size < 0 {
		return nil, &domain.ValidationError{Message: "audience size cannot be negative"}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "updated",
		ItemType: "audience",
		ItemID:   id,
		ItemName: updated.Name,
	})

	return updated, nil
}

func (s *audienceService) DeleteAudience(ctx context.Context, id string) error {
	audience, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "deleted",
		ItemType: "audience",
		ItemID:   id,
		ItemName: audience.Name,
	})

	return nil
}

func (s *audienceService) ListAudiences(ctx context.Context) ([]models.Audience, error) {
	return s.repo.ListAll(ctx)
}
