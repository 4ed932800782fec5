package services

import (
	"context"

	"traction/internal/domain/models"
)

// FolderService handles creative-library folder business logic.
type FolderService interface {
	// CreateFolder creates a new folder (name required, non-empty).
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolder retrieves a folder.
	GetFolder(ctx context.Context, id string) (*models.Folder, error)

	// RenameFolder renames a folder in place.
	RenameFolder(ctx context.Context, id, name string) (*models.Folder, error)

	// MoveFolder re-parents a folder. Self-parent and cyclic moves are
	// rejected as validation errors before any write; moving to the current
	// parent is a no-op reported via MoveResult, not an error.
	MoveFolder(ctx context.Context, id string, targetParentID *string) (*MoveResult, error)

	// DeleteFolder deletes a folder. Rejected while the folder still holds
	// creatives or child folders; never cascades.
	DeleteFolder(ctx context.Context, id string) error

	// ListContents lists the child folders and filed creatives of a folder,
	// or the root contents (top-level folders plus unfiled creatives) when
	// folderID is nil.
	ListContents(ctx context.Context, folderID *string) (*FolderContents, error)

	// GetTree builds the full nested folder/creative tree.
	GetTree(ctx context.Context) (*models.LibraryTree, error)
}

// CreativeService handles creative business logic, including folder
// membership moves.
type CreativeService interface {
	CreateCreative(ctx context.Context, req *CreateCreativeRequest) (*models.Creative, error)
	GetCreative(ctx context.Context, id string) (*models.Creative, error)
	UpdateCreative(ctx context.Context, id string, req *UpdateCreativeRequest) (*models.Creative, error)
	DeleteCreative(ctx context.Context, id string) error
	ListCreatives(ctx context.Context) ([]models.Creative, error)

	// MoveCreative files a creative into targetFolderID, or to the root when
	// nil. Only folders whose membership actually changed are persisted, both
	// inside one transaction. Moving to the current location is a no-op.
	MoveCreative(ctx context.Context, id string, targetFolderID *string) (*MoveResult, error)
}

// CreateFolderRequest represents a folder creation request.
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"` // null for root folders
}

// CreateCreativeRequest represents a creative creation request.
type CreateCreativeRequest struct {
	Name     string              `json:"name"`
	Type     models.CreativeType `json:"type"`
	FileURL  *string             `json:"file_url,omitempty"`
	Funnel   string              `json:"funnel"`
	FolderID *string             `json:"folder_id,omitempty"` // file into a folder on create
}

// UpdateCreativeRequest represents a creative metadata update.
type UpdateCreativeRequest struct {
	Name    *string              `json:"name,omitempty"`
	Type    *models.CreativeType `json:"type,omitempty"`
	FileURL *string              `json:"file_url,omitempty"`
	Funnel  *string              `json:"funnel,omitempty"`
}

// MoveResult reports the outcome of a move. No-op conditions (already in
// place) come back with Changed=false and a human-readable reason instead of
// an error, since they are informational rather than failures.
type MoveResult struct {
	Changed bool   `json:"changed"`
	Reason  string `json:"reason,omitempty"` // set when Changed is false
}

// FolderContents is a folder with its immediate children.
type FolderContents struct {
	Folder    *models.Folder    `json:"folder,omitempty"` // null at root
	Folders   []models.Folder   `json:"folders"`
	Creatives []models.Creative `json:"creatives"`
}
