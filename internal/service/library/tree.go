// Package library implements the creative-library folder hierarchy: the
// descendant resolver, the folder and creative move validators, the deletion
// guard and the drag-and-drop organizer. The move rules live in pure
// functions over immutable folder snapshots so they can be tested without a
// store or any transport.
package library

import (
	"fmt"

	"traction/internal/domain"
	"traction/internal/domain/models"
)

// DescendantIDs returns the ids of every folder transitively below folderID,
// excluding folderID itself. The parent relation is acyclic by invariant, but
// visited ids are tracked anyway so a corrupted collection still terminates.
func DescendantIDs(folderID string, folders []models.Folder) map[string]bool {
	children := make(map[string][]string, len(folders))
	for _, f := range folders {
		if f.ParentID != nil {
			children[*f.ParentID] = append(children[*f.ParentID], f.ID)
		}
	}

	descendants := make(map[string]bool)
	queue := append([]string(nil), children[folderID]...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == folderID || descendants[id] {
			continue
		}
		descendants[id] = true
		queue = append(queue, children[id]...)
	}

	return descendants
}

// FolderByID finds a folder in the snapshot, or nil.
func FolderByID(id string, folders []models.Folder) *models.Folder {
	for i := range folders {
		if folders[i].ID == id {
			return &folders[i]
		}
	}
	return nil
}

// CreativeFolder reverse-looks-up the folder currently holding the creative.
// Returns nil when the creative is unfiled (lives at the root).
func CreativeFolder(creativeID string, folders []models.Folder) *models.Folder {
	for i := range folders {
		if folders[i].Contains(creativeID) {
			return &folders[i]
		}
	}
	return nil
}

// ValidateFolderMove decides whether re-parenting folder under targetParentID
// is legal. Rules, in order: a folder cannot become its own parent; it cannot
// move under one of its own descendants (that would close a cycle); the
// target parent must exist when non-nil. A legal move that changes nothing
// (target equals the current parent) is not an error — callers detect it with
// FolderMoveIsNoop before validating.
func ValidateFolderMove(folder *models.Folder, targetParentID *string, folders []models.Folder) error {
	if targetParentID == nil {
		return nil // moving to root is always structurally safe
	}

	if *targetParentID == folder.ID {
		return &domain.ValidationError{Message: "cannot move a folder into itself"}
	}

	if FolderByID(*targetParentID, folders) == nil {
		return &domain.NotFoundError{Message: fmt.Sprintf("target folder %s not found", *targetParentID)}
	}

	if DescendantIDs(folder.ID, folders)[*targetParentID] {
		return &domain.ValidationError{Message: "cannot move a folder into one of its own subfolders"}
	}

	return nil
}

// FolderMoveIsNoop reports whether the folder is already under the target.
func FolderMoveIsNoop(folder *models.Folder, targetParentID *string) bool {
	if folder.ParentID == nil || targetParentID == nil {
		return folder.ParentID == nil && targetParentID == nil
	}
	return *folder.ParentID == *targetParentID
}

// CreativeMovePlan lists the folders whose membership a creative move must
// rewrite. At most two folders change: the one losing the creative and the
// one gaining it.
type CreativeMovePlan struct {
	Changed []models.Folder // folders with updated CreativeIDs, ready to persist
}

// PlanCreativeMove computes which folders change when the creative moves into
// targetFolderID (nil = unfile to root). Set semantics apply: removing from a
// folder that does not hold the creative and adding to one that already does
// are both no-ops. An empty plan means the creative is already where the move
// would put it.
func PlanCreativeMove(creativeID string, targetFolderID *string, folders []models.Folder) (*CreativeMovePlan, error) {
	if targetFolderID != nil && FolderByID(*targetFolderID, folders) == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("target folder %s not found", *targetFolderID)}
	}

	current := CreativeFolder(creativeID, folders)

	// Already in place: same folder, or unfiled and moving to root.
	if current == nil && targetFolderID == nil {
		return &CreativeMovePlan{}, nil
	}
	if current != nil && targetFolderID != nil && current.ID == *targetFolderID {
		return &CreativeMovePlan{}, nil
	}

	plan := &CreativeMovePlan{}

	if current != nil {
		stripped := *current
		stripped.CreativeIDs = removeID(current.CreativeIDs, creativeID)
		plan.Changed = append(plan.Changed, stripped)
	}

	if targetFolderID != nil {
		target := *FolderByID(*targetFolderID, folders)
		if !target.Contains(creativeID) {
			target.CreativeIDs = append(append([]string(nil), target.CreativeIDs...), creativeID)
			plan.Changed = append(plan.Changed, target)
		}
	}

	return plan, nil
}

// ValidateFolderDelete enforces the deletion guard: a folder may only be
// deleted while it holds no creatives and no folder has it as parent. The
// violation is a user-facing rejection, never a cascade.
func ValidateFolderDelete(folder *models.Folder, folders []models.Folder) error {
	if len(folder.CreativeIDs) > 0 {
		return &domain.ValidationError{Message: "folder is not empty: move or delete its creatives first"}
	}
	for _, f := range folders {
		if f.ParentID != nil && *f.ParentID == folder.ID {
			return &domain.ValidationError{Message: "folder is not empty: it still contains subfolders"}
		}
	}
	return nil
}

// BuildTree assembles the nested folder/creative tree from flat snapshots.
// Folder nodes are created first, then linked to their parents, then
// creatives are attached to the folder that holds them; leftovers surface at
// the root as unfiled.
func BuildTree(folders []models.Folder, creatives []models.Creative) *models.LibraryTree {
	nodes := make(map[string]*models.FolderTreeNode, len(folders))
	var rootIDs []string

	for _, f := range folders {
		nodes[f.ID] = &models.FolderTreeNode{
			ID:        f.ID,
			Name:      f.Name,
			ParentID:  f.ParentID,
			CreatedAt: f.CreatedAt,
			Folders:   []*models.FolderTreeNode{},
			Creatives: []models.CreativeTreeNode{},
		}
	}

	for _, f := range folders {
		node := nodes[f.ID]
		if f.ParentID == nil {
			rootIDs = append(rootIDs, f.ID)
		} else if parent, ok := nodes[*f.ParentID]; ok {
			parent.Folders = append(parent.Folders, node)
		}
	}

	// Reverse membership index: creative id -> holding folder id.
	holder := make(map[string]string)
	for _, f := range folders {
		for _, cid := range f.CreativeIDs {
			holder[cid] = f.ID
		}
	}

	unfiled := make([]models.CreativeTreeNode, 0)
	for _, c := range creatives {
		cn := models.CreativeTreeNode{
			ID:        c.ID,
			Name:      c.Name,
			Type:      c.Type,
			Funnel:    c.Funnel,
			UpdatedAt: c.UpdatedAt,
		}
		if fid, ok := holder[c.ID]; ok {
			if parent, exists := nodes[fid]; exists {
				parent.Creatives = append(parent.Creatives, cn)
				continue
			}
		}
		unfiled = append(unfiled, cn)
	}

	roots := make([]*models.FolderTreeNode, 0, len(rootIDs))
	for _, id := range rootIDs {
		roots = append(roots, nodes[id])
	}

	return &models.LibraryTree{
		Folders:   roots,
		Creatives: unfiled,
	}
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
