package library

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"traction/internal/domain/services"
)

// fakeFolderService records move and delete calls.
type fakeFolderService struct {
	services.FolderService
	moveCalls   []moveCall
	deleteCalls []string
	moveResult  *services.MoveResult
	deleteErr   error
}

type moveCall struct {
	id     string
	target *string
}

func (f *fakeFolderService) MoveFolder(_ context.Context, id string, target *string) (*services.MoveResult, error) {
	f.moveCalls = append(f.moveCalls, moveCall{id: id, target: target})
	if f.moveResult != nil {
		return f.moveResult, nil
	}
	return &services.MoveResult{Changed: true}, nil
}

func (f *fakeFolderService) DeleteFolder(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}

// fakeCreativeService records creative move calls.
type fakeCreativeService struct {
	services.CreativeService
	moveCalls []moveCall
}

func (f *fakeCreativeService) MoveCreative(_ context.Context, id string, target *string) (*services.MoveResult, error) {
	f.moveCalls = append(f.moveCalls, moveCall{id: id, target: target})
	return &services.MoveResult{Changed: true}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestOrganizer() (*fakeFolderService, *fakeCreativeService, services.Organizer) {
	folders := &fakeFolderService{}
	creatives := &fakeCreativeService{}
	org := NewOrganizer(folders, creatives, discardLogger())
	return folders, creatives, org
}

func TestHandleDropCancelledMakesNoCalls(t *testing.T) {
	folders, creatives, org := newTestOrganizer()

	result, err := org.HandleDrop(context.Background(), &services.DropGesture{
		Source:    "listing",
		DraggedID: "folder-A",
		Type:      services.DragTypeFolder,
		// Destination absent: dropped outside any valid region
	})
	if err != nil {
		t.Fatalf("HandleDrop error: %v", err)
	}
	if result.Applied {
		t.Error("cancelled drop must not be applied")
	}
	if len(folders.moveCalls) != 0 || len(creatives.moveCalls) != 0 {
		t.Error("cancelled drop must not reach any service")
	}
}

func TestHandleDropResolvesRegions(t *testing.T) {
	open := "open-folder"

	tests := []struct {
		name        string
		destination string
		openFolder  *string
		wantTarget  *string
	}{
		{"folder card targets that folder", "folder-B", nil, strPtr("B")},
		{"unfiled zone targets root", "unfiled", nil, nil},
		{"listing at root targets root", "listing", nil, nil},
		{"listing with open folder targets it", "listing", &open, &open},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folders, _, org := newTestOrganizer()
			org.OpenFolder(tt.openFolder)

			_, err := org.HandleDrop(context.Background(), &services.DropGesture{
				Source:      "listing",
				Destination: &tt.destination,
				DraggedID:   "folder-A",
				Type:        services.DragTypeFolder,
			})
			if err != nil {
				t.Fatalf("HandleDrop error: %v", err)
			}

			if len(folders.moveCalls) != 1 {
				t.Fatalf("expected 1 folder move, got %d", len(folders.moveCalls))
			}
			call := folders.moveCalls[0]
			if call.id != "A" {
				t.Errorf("moved folder %q, want A", call.id)
			}
			switch {
			case tt.wantTarget == nil && call.target != nil:
				t.Errorf("target = %v, want root", *call.target)
			case tt.wantTarget != nil && (call.target == nil || *call.target != *tt.wantTarget):
				t.Errorf("target = %v, want %v", call.target, *tt.wantTarget)
			}
		})
	}
}

func TestHandleDropRoutesByDragType(t *testing.T) {
	folders, creatives, org := newTestOrganizer()
	dest := "folder-B"

	_, err := org.HandleDrop(context.Background(), &services.DropGesture{
		Source:      "listing",
		Destination: &dest,
		DraggedID:   "creative-c1",
		Type:        services.DragTypeCreative,
	})
	if err != nil {
		t.Fatalf("HandleDrop error: %v", err)
	}

	if len(creatives.moveCalls) != 1 {
		t.Fatalf("expected 1 creative move, got %d", len(creatives.moveCalls))
	}
	if creatives.moveCalls[0].id != "c1" {
		t.Errorf("moved creative %q, want c1", creatives.moveCalls[0].id)
	}
	if len(folders.moveCalls) != 0 {
		t.Error("creative drop must not move folders")
	}
}

func TestHandleDropRejectsMalformedGestures(t *testing.T) {
	dest := "folder-B"
	badRegion := "sidebar"

	tests := []struct {
		name    string
		gesture services.DropGesture
	}{
		{"id prefix mismatch", services.DropGesture{Destination: &dest, DraggedID: "creative-c1", Type: services.DragTypeFolder}},
		{"unknown drag type", services.DropGesture{Destination: &dest, DraggedID: "folder-A", Type: "widget"}},
		{"unknown region", services.DropGesture{Destination: &badRegion, DraggedID: "folder-A", Type: services.DragTypeFolder}},
		{"empty dragged id", services.DropGesture{Destination: &dest, DraggedID: "folder-", Type: services.DragTypeFolder}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folders, creatives, org := newTestOrganizer()
			if _, err := org.HandleDrop(context.Background(), &tt.gesture); err == nil {
				t.Error("expected error")
			}
			if len(folders.moveCalls) != 0 || len(creatives.moveCalls) != 0 {
				t.Error("rejected gesture must not reach any service")
			}
		})
	}
}

func TestDeleteFolderResetsNavigation(t *testing.T) {
	_, _, org := newTestOrganizer()

	open := "F"
	org.OpenFolder(&open)

	if err := org.DeleteFolder(context.Background(), "F"); err != nil {
		t.Fatalf("DeleteFolder error: %v", err)
	}
	if org.CurrentFolder() != nil {
		t.Error("deleting the open folder must reset navigation to root")
	}
}

func TestDeleteFolderKeepsNavigationForOtherFolder(t *testing.T) {
	_, _, org := newTestOrganizer()

	open := "F"
	org.OpenFolder(&open)

	if err := org.DeleteFolder(context.Background(), "G"); err != nil {
		t.Fatalf("DeleteFolder error: %v", err)
	}
	current := org.CurrentFolder()
	if current == nil || *current != "F" {
		t.Errorf("navigation = %v, want still F", current)
	}
}
