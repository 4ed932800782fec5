package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"traction/internal/domain"
	"traction/internal/domain/services"
)

// Droppable region ids understood by the organizer.
const (
	regionUnfiled = "unfiled" // the root zone
	regionListing = "listing" // whatever folder is currently open

	folderIDPrefix   = "folder-"
	creativeIDPrefix = "creative-"
)

type organizer struct {
	folders   services.FolderService
	creatives services.CreativeService
	logger    *slog.Logger

	// mu serializes gestures and guards the navigation state. The UI issues
	// one drop at a time; the programmatic API enforces the same so two
	// overlapping moves can never interleave their folder writes.
	mu      sync.Mutex
	current *string // currently open folder, nil at root
}

// NewOrganizer creates the drag-and-drop orchestrator over the folder and
// creative services, starting with the root open.
func NewOrganizer(
	folders services.FolderService,
	creatives services.CreativeService,
	logger *slog.Logger,
) services.Organizer {
	return &organizer{
		folders:   folders,
		creatives: creatives,
		logger:    logger,
	}
}

// HandleDrop translates one drop gesture into a validated folder or creative
// move. A nil destination means the drag was cancelled: nothing is resolved,
// validated or written.
func (o *organizer) HandleDrop(ctx context.Context, gesture *services.DropGesture) (*services.DropResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gesture.Destination == nil {
		o.logger.Debug("drop cancelled", "dragged_id", gesture.DraggedID)
		return &services.DropResult{Applied: false, Reason: "dropped outside any target"}, nil
	}

	target, err := o.resolveTarget(*gesture.Destination)
	if err != nil {
		return nil, err
	}

	subjectID, err := subjectID(gesture)
	if err != nil {
		return nil, err
	}

	var result *services.MoveResult
	switch gesture.Type {
	case services.DragTypeFolder:
		result, err = o.folders.MoveFolder(ctx, subjectID, target)
	case services.DragTypeCreative:
		result, err = o.creatives.MoveCreative(ctx, subjectID, target)
	default:
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown drag type %q", gesture.Type)}
	}
	if err != nil {
		return nil, err
	}

	return &services.DropResult{Applied: result.Changed, Reason: result.Reason}, nil
}

// OpenFolder changes the currently open folder; nil opens the root.
func (o *organizer) OpenFolder(folderID *string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.current = folderID
}

// CurrentFolder returns the currently open folder, nil at root.
func (o *organizer) CurrentFolder() *string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// DeleteFolder deletes through the folder service, then resets navigation to
// root when the open folder is the one that was deleted.
func (o *organizer) DeleteFolder(ctx context.Context, folderID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.folders.DeleteFolder(ctx, folderID); err != nil {
		return err
	}

	if o.current != nil && *o.current == folderID {
		o.current = nil
		o.logger.Debug("navigation reset to root after deleting open folder", "folder_id", folderID)
	}

	return nil
}

// resolveTarget maps a destination region id to a target folder. The three
// region shapes are disjoint: a folder card names its folder, the unfiled
// zone is the root, and the listing region is whatever folder is open right
// now. Callers hold o.mu.
func (o *organizer) resolveTarget(destination string) (*string, error) {
	switch {
	case strings.HasPrefix(destination, folderIDPrefix):
		id := strings.TrimPrefix(destination, folderIDPrefix)
		if id == "" {
			return nil, &domain.ValidationError{Message: "destination folder id is empty"}
		}
		return &id, nil
	case destination == regionUnfiled:
		return nil, nil
	case destination == regionListing:
		return o.current, nil
	default:
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown drop region %q", destination)}
	}
}

// subjectID extracts the entity id from the composite dragged id. The type
// discriminator comes from the drag context; the prefix only confirms it.
func subjectID(gesture *services.DropGesture) (string, error) {
	var prefix string
	switch gesture.Type {
	case services.DragTypeFolder:
		prefix = folderIDPrefix
	case services.DragTypeCreative:
		prefix = creativeIDPrefix
	default:
		return "", &domain.ValidationError{Message: fmt.Sprintf("unknown drag type %q", gesture.Type)}
	}

	if !strings.HasPrefix(gesture.DraggedID, prefix) {
		return "", &domain.ValidationError{Message: fmt.Sprintf("dragged id %q does not match drag type %q", gesture.DraggedID, gesture.Type)}
	}

	id := strings.TrimPrefix(gesture.DraggedID, prefix)
	if id == "" {
		return "", &domain.ValidationError{Message: "dragged id is empty"}
	}
	return id, nil
}
