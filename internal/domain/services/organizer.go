package services

import (
	"context"
)

// DragType discriminates what is being dragged. It is carried by the drag
// context, never inferred from the dragged id's content.
type DragType string

const (
	DragTypeFolder   DragType = "folder"
	DragTypeCreative DragType = "creative"
)

// DropGesture is a completed drag-and-drop gesture as reported by the
// library UI. Destination is nil when the drop landed outside every valid
// region (cancelled drag).
//
// Destination region ids take one of three disjoint shapes:
//   - "folder-<id>": dropped onto a specific folder card
//   - "unfiled":     dropped onto the unfiled/root zone
//   - "listing":     dropped onto the currently open listing region
type DropGesture struct {
	Source      string   `json:"source"`
	Destination *string  `json:"destination,omitempty"`
	DraggedID   string   `json:"dragged_id"` // composite: "folder-<id>" or "creative-<id>"
	Type        DragType `json:"type"`
}

// DropResult is the outcome of a gesture.
type DropResult struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"` // set when nothing was applied
}

// Organizer translates drop gestures into validated folder or creative moves
// and tracks the navigation state (which folder is currently open) needed to
// resolve drops on the listing region.
type Organizer interface {
	// HandleDrop executes one gesture. A nil destination or a resolved target
	// equal to the current location performs no store call.
	HandleDrop(ctx context.Context, gesture *DropGesture) (*DropResult, error)

	// OpenFolder changes the currently open folder; nil opens the root.
	OpenFolder(folderID *string)

	// CurrentFolder returns the currently open folder, nil at root.
	CurrentFolder() *string

	// DeleteFolder deletes through the folder service and resets navigation
	// to root when the open folder is the one deleted.
	DeleteFolder(ctx context.Context, folderID string) error
}
