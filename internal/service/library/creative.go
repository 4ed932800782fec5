package library

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
)

type creativeService struct {
	creativeRepo repositories.CreativeRepository
	folderRepo   repositories.FolderRepository
	txManager    repositories.TransactionManager
	funnels      *funnel.Registry
	activity     services.ActivityRecorder
	logger       *slog.Logger
}

// NewCreativeService creates a new creative service.
func NewCreativeService(
	creativeRepo repositories.CreativeRepository,
	folderRepo repositories.FolderRepository,
	txManager repositories.TransactionManager,
	funnels *funnel.Registry,
	activity services.ActivityRecorder,
	logger *slog.Logger,
) services.CreativeService {
	return &creativeService{
		creativeRepo: creativeRepo,
		folderRepo:   folderRepo,
		txManager:    txManager,
		funnels:      funnels,
		activity:     activity,
		logger:       logger,
	}
}

// CreateCreative creates a creative, optionally filing it into a folder.
func (s *creativeService) CreateCreative(ctx context.Context, req *services.CreateCreativeRequest) (*models.Creative, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	creative := &models.Creative{
		Name:      req.Name,
		Type:      req.Type,
		FileURL:   req.FileURL,
		Funnel:    req.Funnel,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.creativeRepo.Create(ctx, creative); err != nil {
		return nil, err
	}

	if req.FolderID != nil && *req.FolderID != "" {
		if _, err := s.MoveCreative(ctx, creative.ID, req.FolderID); err != nil {
			return nil, fmt.Errorf("creative created but filing failed: %w", err)
		}
	}

	s.logger.Info("creative created",
		"id", creative.ID,
		"name", creative.Name,
		"type", creative.Type,
		"funnel", creative.Funnel,
	)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "created",
		ItemType: "creative",
		ItemID:   creative.ID,
		ItemName: creative.Name,
	})

	return creative, nil
}

// GetCreative retrieves a creative by id.
func (s *creativeService) GetCreative(ctx context.Context, id string) (*models.Creative, error) {
	return s.creativeRepo.GetByID(ctx, id)
}

// UpdateCreative applies a metadata patch.
func (s *creativeService) UpdateCreative(ctx context.Context, id string, req *services.UpdateCreativeRequest) (*models.Creative, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	patch := &models.CreativePatch{
		Name:   req.Name,
		Type:   req.Type,
		Funnel: req.Funnel,
	}
	if req.FileURL != nil {
		patch.FileURL = &req.FileURL
	}

	updated, err := s.creativeRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "updated",
		ItemType: "creative",
		ItemID:   id,
		ItemName: updated.Name,
	})

	return updated, nil
}

// DeleteCreative deletes a creative and removes its membership from the
// holding folder, if any, in the same transaction.
func (s *creativeService) DeleteCreative(ctx context.Context, id string) error {
	creative, err := s.creativeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	folders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	holder := CreativeFolder(id, folders)

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if holder != nil {
			stripped := removeID(holder.CreativeIDs, id)
			if _, err := s.folderRepo.Update(txCtx, holder.ID, &models.FolderPatch{CreativeIDs: stripped}); err != nil {
				return err
			}
		}
		return s.creativeRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("creative deleted", "id", id, "name", creative.Name)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "deleted",
		ItemType: "creative",
		ItemID:   id,
		ItemName: creative.Name,
	})

	return nil
}

// ListCreatives returns all creatives.
func (s *creativeService) ListCreatives(ctx context.Context) ([]models.Creative, error) {
	return s.creativeRepo.ListAll(ctx)
}

// MoveCreative files a creative into targetFolderID, or unfiles it to the
// root when nil. Only folders whose membership actually changed are written,
// and both sides of the move commit in a single transaction so a failure
// never leaves the creative in two folders or in none unexpectedly.
func (s *creativeService) MoveCreative(ctx context.Context, id string, targetFolderID *string) (*services.MoveResult, error) {
	if targetFolderID != nil && *targetFolderID == "" {
		targetFolderID = nil
	}

	creative, err := s.creativeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	folders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := PlanCreativeMove(id, targetFolderID, folders)
	if err != nil {
		return nil, err
	}

	if len(plan.Changed) == 0 {
		return &services.MoveResult{Changed: false, Reason: "creative is already there"}, nil
	}

	from := CreativeFolder(id, folders)

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		for _, f := range plan.Changed {
			if _, err := s.folderRepo.Update(txCtx, f.ID, &models.FolderPatch{CreativeIDs: f.CreativeIDs}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("creative moved",
		"id", id,
		"name", creative.Name,
		"from", folderLabel(from),
		"to", parentLabel(targetFolderID),
	)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "moved",
		ItemType: "creative",
		ItemID:   id,
		ItemName: creative.Name,
		Details:  fmt.Sprintf("from %s to %s", folderLabel(from), parentLabel(targetFolderID)),
	})

	return &services.MoveResult{Changed: true}, nil
}

func (s *creativeService) validateCreateRequest(req *services.CreateCreativeRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("creative name is required"),
			validation.Length(1, config.MaxCreativeNameLength),
		),
		validation.Field(&req.Funnel, validation.Required.Error("funnel tag is required")),
	); err != nil {
		return err
	}

	if !req.Type.Valid() {
		return fmt.Errorf("unknown creative type %q", req.Type)
	}
	if !s.funnels.Has(req.Funnel) {
		return fmt.Errorf("unknown funnel %q", req.Funnel)
	}
	return nil
}

func (s *creativeService) validateUpdateRequest(req *services.UpdateCreativeRequest) error {
	if req.Name == nil && req.Type == nil && req.FileURL == nil && req.Funnel == nil {
		return fmt.Errorf("at least one field must be provided")
	}
	if req.Name != nil {
		if err := validation.Validate(*req.Name,
			validation.Required.Error("creative name cannot be empty"),
			validation.Length(1, config.MaxCreativeNameLength),
		); err != nil {
			return err
		}
	}
	if req.Type != nil && !req.Type.Valid() {
		return fmt.Errorf("unknown creative type %q", *req.Type)
	}
	if req.Funnel != nil && !s.funnels.Has(*req.Funnel) {
		return fmt.Errorf("unknown funnel %q", *req.Funnel)
	}
	return nil
}

// folderLabel renders the holding folder for logs and audit details.
func folderLabel(f *models.Folder) string {
	if f == nil {
		return "root"
	}
	return f.Name
}
