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

type campaignService struct {
	repo     repositories.CampaignRepository
	activity services.ActivityRecorder
	logger   *slog.Logger
}

// NewCampaignService creates a new campaign service.
func NewCampaignService(
	repo repositories.CampaignRepository,
	activity services.ActivityRecorder,
	logger *slog.Logger,
) services.CampaignService {
	return &campaignService{
		repo:     repo,
		activity: activity,
		logger:   logger,
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, req *services.CreateCampaignRequest) (*models.Campaign, error) {
	req.Name = strings.TrimSpace(req.Name)

	status := models.CampaignStatus(req.Status)
	if req.Status == "" {
		status = models.CampaignStatusDraft
	}

	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("campaign name is required"),
			validation.Length(1, config.MaxCampaignNameLength),
		),
		validation.Field(&req.Channel, validation.Required.Error("channel is required")),
		validation.Field(&req.Budget, validation.Min(0.0)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !status.Valid() {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown campaign status %q", req.Status)}
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, &domain.ValidationError{Message: "campaign cannot end before it starts"}
	}

	campaign := &models.Campaign{
		Name:      req.Name,
		Status:    status,
		Channel:   req.Channel,
		Budget:    req.Budget,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.Info("campaign created", "id", campaign.ID, "name", campaign.Name, "channel", campaign.Channel)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "created",
		ItemType: "campaign",
		ItemID:   campaign.ID,
		ItemName: campaign.Name,
	})

	return campaign, nil
}

func (s *campaignService) GetCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *campaignService) UpdateCampaign(ctx context.Context, id string, req *services.UpdateCampaignRequest) (*models.Campaign, error) {
	patch := &models.CampaignPatch{
		Name:    req.Name,
		Channel: req.Channel,
		Budget:  req.Budget,
		Spent:   req.Spent,
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &domain.ValidationError{Message: "campaign name cannot be empty"}
		}
		patch.Name = &trimmed
	}
	if req.Status != nil {
		status := models.CampaignStatus(*req.Status)
		if !status.Valid() {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown campaign status %q", *req.Status)}
		}
		patch.Status = &status
	}
	if req.StartDate != nil {
		patch.StartDate = &req.StartDate
	}
	if req.EndDate != nil {
		patch.EndDate = &req.EndDate
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "updated",
		ItemType: "campaign",
		ItemID:   id,
		ItemName: updated.Name,
	})

	return updated, nil
}

func (s *campaignService) DeleteCampaign(ctx context.Context, id string) error {
	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("campaign deleted", "id", id, "name", campaign.Name)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "deleted",
		ItemType: "campaign",
		ItemID:   id,
		ItemName: campaign.Name,
	})

	return nil
}

// ListCampaigns fetches the snapshot and applies the derived filter/sort
// computations client code used to scatter across views.
func (s *campaignService) ListCampaigns(ctx context.Context, filter *services.CampaignFilter) ([]models.Campaign, error) {
	campaigns, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if filter == nil {
		return campaigns, nil
	}

	status := models.CampaignStatus(filter.Status)
	if filter.Status != "" && !status.Valid() {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown campaign status %q", filter.Status)}
	}

	campaigns = FilterCampaignsByStatus(campaigns, status)
	campaigns = SortCampaigns(campaigns, filter.SortBy)
	return campaigns, nil
}
