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

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type folderService struct {
	folderRepo   repositories.FolderRepository
	creativeRepo repositories.CreativeRepository
	activity     services.ActivityRecorder
	logger       *slog.Logger
}

// NewFolderService creates a new folder service.
func NewFolderService(
	folderRepo repositories.FolderRepository,
	creativeRepo repositories.CreativeRepository,
	activity services.ActivityRecorder,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo:   folderRepo,
		creativeRepo: creativeRepo,
		activity:     activity,
		logger:       logger,
	}
}

// CreateFolder creates a new folder, optionally under a parent.
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.ParentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
	}

	// Reject duplicate names among siblings
	siblings, err := s.folderRepo.ListChildren(ctx, req.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate names: %w", err)
	}
	for _, sibling := range siblings {
		if sibling.Name == req.Name {
			return nil, &domain.ConflictError{
				Message:      fmt.Sprintf("a folder named %q already exists in this location", req.Name),
				ResourceType: "folder",
				ResourceID:   sibling.ID,
			}
		}
	}

	folder := &models.Folder{
		Name:        req.Name,
		ParentID:    req.ParentID,
		CreativeIDs: []string{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "created",
		ItemType: "folder",
		ItemID:   folder.ID,
		ItemName: folder.Name,
	})

	return folder, nil
}

// GetFolder retrieves a folder by id.
func (s *folderService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id)
}

// RenameFolder renames a folder in place.
func (s *folderService) RenameFolder(ctx context.Context, id, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validation.Validate(name,
		validation.Required.Error("folder name is required"),
		validation.Length(1, config.MaxFolderNameLength),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if folder.Name == name {
		return folder, nil
	}

	siblings, err := s.folderRepo.ListChildren(ctx, folder.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate names: %w", err)
	}
	for _, sibling := range siblings {
		if sibling.ID != folder.ID && sibling.Name == name {
			return nil, &domain.ConflictError{
				Message:      fmt.Sprintf("a folder named %q already exists in this location", name),
				ResourceType: "folder",
				ResourceID:   sibling.ID,
			}
		}
	}

	updated, err := s.folderRepo.Update(ctx, id, &models.FolderPatch{Name: &name})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "id", id, "from", folder.Name, "to", name)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "renamed",
		ItemType: "folder",
		ItemID:   id,
		ItemName: name,
		Details:  fmt.Sprintf("renamed from %q", folder.Name),
	})

	return updated, nil
}

// MoveFolder re-parents a folder after validating the move against the
// current folder snapshot. Illegal moves (self-parent, cycle) are rejected
// before any write; moving to the current parent reports "no change".
func (s *folderService) MoveFolder(ctx context.Context, id string, targetParentID *string) (*services.MoveResult, error) {
	if targetParentID != nil && *targetParentID == "" {
		targetParentID = nil
	}

	folders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	folder := FolderByID(id, folders)
	if folder == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
	}

	if FolderMoveIsNoop(folder, targetParentID) {
		return &services.MoveResult{Changed: false, Reason: "folder is already there"}, nil
	}

	if err := ValidateFolderMove(folder, targetParentID, folders); err != nil {
		return nil, err
	}

	fromParent := folder.ParentID
	if _, err := s.folderRepo.Update(ctx, id, &models.FolderPatch{ParentID: &targetParentID}); err != nil {
		return nil, err
	}

	s.logger.Info("folder moved",
		"id", id,
		"name", folder.Name,
		"from_parent", parentLabel(fromParent),
		"to_parent", parentLabel(targetParentID),
	)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "moved",
		ItemType: "folder",
		ItemID:   id,
		ItemName: folder.Name,
		Details:  fmt.Sprintf("from %s to %s", parentLabel(fromParent), parentLabel(targetParentID)),
	})

	return &services.MoveResult{Changed: true}, nil
}

// DeleteFolder deletes an empty folder. The emptiness guard runs against the
// full folder snapshot so child folders are counted as well as creatives.
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	folders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	folder := FolderByID(id, folders)
	if folder == nil {
		return &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
	}

	if err := ValidateFolderDelete(folder, folders); err != nil {
		return err
	}

	if err := s.folderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id, "name", folder.Name)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "deleted",
		ItemType: "folder",
		ItemID:   id,
		ItemName: folder.Name,
	})

	return nil
}

// ListContents lists the immediate children of a folder, or the root view
// (top-level folders plus unfiled creatives) when folderID is nil.
func (s *folderService) ListContents(ctx context.Context, folderID *string) (*services.FolderContents, error) {
	var folder *models.Folder
	var err error

	if folderID != nil && *folderID != "" {
		folder, err = s.folderRepo.GetByID(ctx, *folderID)
		if err != nil {
			return nil, err
		}
	} else {
		folderID = nil
	}

	childFolders, err := s.folderRepo.ListChildren(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child folders: %w", err)
	}

	allCreatives, err := s.creativeRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list creatives: %w", err)
	}

	var creatives []models.Creative
	if folder != nil {
		filed := make(map[string]bool, len(folder.CreativeIDs))
		for _, cid := range folder.CreativeIDs {
			filed[cid] = true
		}
		for _, c := range allCreatives {
			if filed[c.ID] {
				creatives = append(creatives, c)
			}
		}
	} else {
		// Root: creatives not filed in any folder
		allFolders, err := s.folderRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range allCreatives {
			if CreativeFolder(c.ID, allFolders) == nil {
				creatives = append(creatives, c)
			}
		}
	}

	if creatives == nil {
		creatives = []models.Creative{}
	}

	return &services.FolderContents{
		Folder:    folder,
		Folders:   childFolders,
		Creatives: creatives,
	}, nil
}

// GetTree builds the full nested folder/creative tree.
func (s *folderService) GetTree(ctx context.Context) (*models.LibraryTree, error) {
	folders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	creatives, err := s.creativeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tree := BuildTree(folders, creatives)

	s.logger.Debug("library tree built",
		"folder_count", len(folders),
		"creative_count", len(creatives),
	)

	return tree, nil
}

func (s *folderService) validateCreateRequest(req *services.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("folder name is required"),
			validation.Length(1, config.MaxFolderNameLength),
		),
	)
}

// parentLabel renders a parent id for logs and audit details.
func parentLabel(id *string) string {
	if id == nil {
		return "root"
	}
	return *id
}
