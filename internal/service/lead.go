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
	"traction/internal/funnel"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type leadService struct {
	repo     repositories.LeadRepository
	funnels  *funnel.Registry
	activity services.ActivityRecorder
	logger   *slog.Logger
}

// NewLeadService creates a new lead service.
func NewLeadService(
	repo repositories.LeadRepository,
	funnels *funnel.Registry,
	activity services.ActivityRecorder,
	logger *slog.Logger,
) services.LeadService {
	return &leadService{
		repo:     repo,
		funnels:  funnels,
		activity: activity,
		logger:   logger,
	}
}

func (s *leadService) CreateLead(ctx context.Context, req *services.CreateLeadRequest) (*models.Lead, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("lead name is required"),
			validation.Length(1, config.MaxLeadNameLength),
		),
		validation.Field(&req.Email, validation.Required.Error("email is required"), is.Email),
		validation.Field(&req.Funnel, validation.Required.Error("funnel is required")),
		validation.Field(&req.Stage, validation.Required.Error("stage is required")),
		validation.Field(&req.Value, validation.Min(0.0)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.checkStage(req.Funnel, req.Stage); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Funnel:     req.Funnel,
		Stage:      req.Stage,
		Source:     req.Source,
		CampaignID: req.CampaignID,
		Value:      req.Value,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.logger.Info("lead created", "id", lead.ID, "funnel", lead.Funnel, "stage", lead.Stage)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "created",
		ItemType: "lead",
		ItemID:   lead.ID,
		ItemName: lead.Name,
		Details:  fmt.Sprintf("entered %s funnel at %s", lead.Funnel, lead.Stage),
	})

	return lead, nil
}

func (s *leadService) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *leadService) UpdateLead(ctx context.Context, id string, req *services.UpdateLeadRequest) (*models.Lead, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := &models.LeadPatch{
		Phone:  req.Phone,
		Source: req.Source,
		Value:  req.Value,
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &domain.ValidationError{Message: "lead name cannot be empty"}
		}
		patch.Name = &trimmed
	}
	if req.Email != nil {
		if err := validation.Validate(*req.Email, validation.Required, is.Email); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		patch.Email = req.Email
	}

	// A funnel change and a stage change are validated together against
	// whichever funnel the lead will end up in.
	funnelName := current.Funnel
	if req.Funnel != nil {
		if !s.funnels.Has(*req.Funnel) {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown funnel %q", *req.Funnel)}
		}
		funnelName = *req.Funnel
		patch.Funnel = req.Funnel
	}
	if req.Stage != nil {
		if err := s.checkStage(funnelName, *req.Stage); err != nil {
			return nil, err
		}
		patch.Stage = req.Stage
	} else if req.Funnel != nil {
		// Moving funnels without naming a stage lands the lead on the new
		// funnel's first stage.
		def, err := s.funnels.Get(funnelName)
		if err != nil {
			return nil, err
		}
		first := def.Stages[0].ID
		patch.Stage = &first
	}

	if req.CampaignID != nil {
		patch.CampaignID = &req.CampaignID
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	details := ""
	if req.Stage != nil && *req.Stage != current.Stage {
		details = fmt.Sprintf("moved from %s to %s", current.Stage, *req.Stage)
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "updated",
		ItemType: "lead",
		ItemID:   id,
		ItemName: updated.Name,
		Details:  details,
	})

	return updated, nil
}

func (s *leadService) DeleteLead(ctx context.Context, id string) error {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "deleted",
		ItemType: "lead",
		ItemID:   id,
		ItemName: lead.Name,
	})

	return nil
}

func (s *leadService) ListLeads(ctx context.Context) ([]models.Lead, error) {
	return s.repo.ListAll(ctx)
}

func (s *leadService) FunnelSummary(ctx context.Context, funnelName string) (*services.FunnelSummary, error) {
	def, err := s.funnels.Get(funnelName)
	if err != nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("funnel %q not found", funnelName)}
	}

	leads, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeFunnelSummary(def, leads), nil
}

// checkStage rejects stages that do not belong to the named funnel.
func (s *leadService) checkStage(funnelName, stage string) error {
	if !s.funnels.Has(funnelName) {
		return &domain.ValidationError{Message: fmt.Sprintf("unknown funnel %q", funnelName)}
	}
	if !s.funnels.ValidStage(funnelName, stage) {
		return &domain.ValidationError{Message: fmt.Sprintf("stage %q is not part of funnel %q", stage, funnelName)}
	}
	return nil
}
