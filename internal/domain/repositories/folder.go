package repositories

import (
	"context"

	"traction/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
type FolderRepository interface {
	// Create creates a new folder.
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID.
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// Update persists a partial update. Nil fields in the patch are left
	// unchanged; CreativeIDs is replaced wholesale when non-nil.
	Update(ctx context.Context, id string, patch *models.FolderPatch) (*models.Folder, error)

	// Delete deletes a folder. Emptiness is the service's precondition, not
	// enforced here.
	Delete(ctx context.Context, id string) error

	// ListChildren lists immediate child folders; nil parentID means root.
	ListChildren(ctx context.Context, parentID *string) ([]models.Folder, error)

	// ListAll retrieves every folder as a flat list, the snapshot the
	// descendant resolver and move validators operate on.
	ListAll(ctx context.Context) ([]models.Folder, error)
}
