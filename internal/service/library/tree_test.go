package library

import (
	"errors"
	"testing"

	"traction/internal/domain"
	"traction/internal/domain/models"
)

func strPtr(s string) *string { return &s }

// folders A > B > C plus a root sibling D
func chainFolders() []models.Folder {
	return []models.Folder{
		{ID: "A", Name: "A", ParentID: nil},
		{ID: "B", Name: "B", ParentID: strPtr("A")},
		{ID: "C", Name: "C", ParentID: strPtr("B")},
		{ID: "D", Name: "D", ParentID: nil},
	}
}

func TestDescendantIDs(t *testing.T) {
	folders := chainFolders()

	tests := []struct {
		name   string
		folder string
		want   []string
	}{
		{"root of chain", "A", []string{"B", "C"}},
		{"middle of chain", "B", []string{"C"}},
		{"leaf", "C", nil},
		{"unrelated sibling", "D", nil},
		{"unknown folder", "nope", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescendantIDs(tt.folder, folders)
			if len(got) != len(tt.want) {
				t.Fatalf("DescendantIDs(%q) = %v, want %v", tt.folder, got, tt.want)
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("DescendantIDs(%q) missing %q", tt.folder, id)
				}
			}
			// A folder is never its own descendant
			if got[tt.folder] {
				t.Errorf("DescendantIDs(%q) contains itself", tt.folder)
			}
		})
	}
}

func TestDescendantIDsTerminatesOnCorruptedCycle(t *testing.T) {
	// X and Y point at each other: impossible under the invariant, but the
	// resolver must still terminate.
	folders := []models.Folder{
		{ID: "X", ParentID: strPtr("Y")},
		{ID: "Y", ParentID: strPtr("X")},
	}

	got := DescendantIDs("X", folders)
	if !got["Y"] {
		t.Error("expected Y in descendants of X")
	}
	if got["X"] {
		t.Error("X must not appear in its own descendant set")
	}
}

func TestValidateFolderMove(t *testing.T) {
	folders := chainFolders()

	tests := []struct {
		name    string
		folder  string
		target  *string
		wantErr bool
	}{
		{"move under own descendant rejected", "A", strPtr("C"), true},
		{"move under direct child rejected", "A", strPtr("B"), true},
		{"move into itself rejected", "A", strPtr("A"), true},
		{"move under unknown target rejected", "A", strPtr("Z"), true},
		{"move to sibling allowed", "A", strPtr("D"), false},
		{"move leaf to root allowed", "C", nil, false},
		{"move leaf under unrelated folder allowed", "C", strPtr("D"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder := FolderByID(tt.folder, folders)
			if folder == nil {
				t.Fatalf("fixture folder %q missing", tt.folder)
			}
			err := ValidateFolderMove(folder, tt.target, folders)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFolderMove(%q, %v) error = %v, wantErr %v", tt.folder, tt.target, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFolderMoveErrorKinds(t *testing.T) {
	folders := chainFolders()
	a := FolderByID("A", folders)

	var verr *domain.ValidationError
	if err := ValidateFolderMove(a, strPtr("A"), folders); !errors.As(err, &verr) {
		t.Errorf("self-parent should be a validation error, got %v", err)
	}
	if err := ValidateFolderMove(a, strPtr("C"), folders); !errors.As(err, &verr) {
		t.Errorf("cyclic move should be a validation error, got %v", err)
	}

	var nferr *domain.NotFoundError
	if err := ValidateFolderMove(a, strPtr("Z"), folders); !errors.As(err, &nferr) {
		t.Errorf("unknown target should be not-found, got %v", err)
	}
}

func TestFolderMoveIsNoop(t *testing.T) {
	tests := []struct {
		name   string
		parent *string
		target *string
		want   bool
	}{
		{"both root", nil, nil, true},
		{"same parent", strPtr("A"), strPtr("A"), true},
		{"root to folder", nil, strPtr("A"), false},
		{"folder to root", strPtr("A"), nil, false},
		{"different parents", strPtr("A"), strPtr("B"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &models.Folder{ID: "f", ParentID: tt.parent}
			if got := FolderMoveIsNoop(f, tt.target); got != tt.want {
				t.Errorf("FolderMoveIsNoop = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreativeFolder(t *testing.T) {
	folders := []models.Folder{
		{ID: "A", CreativeIDs: []string{"c1", "c2"}},
		{ID: "B", CreativeIDs: []string{"c3"}},
	}

	if got := CreativeFolder("c2", folders); got == nil || got.ID != "A" {
		t.Errorf("CreativeFolder(c2) = %v, want folder A", got)
	}
	if got := CreativeFolder("unfiled", folders); got != nil {
		t.Errorf("CreativeFolder(unfiled) = %v, want nil", got)
	}
}

func TestPlanCreativeMove(t *testing.T) {
	folders := []models.Folder{
		{ID: "A", CreativeIDs: []string{"c1", "c2"}},
		{ID: "B", CreativeIDs: []string{}},
	}

	t.Run("move between folders", func(t *testing.T) {
		plan, err := PlanCreativeMove("c1", strPtr("B"), folders)
		if err != nil {
			t.Fatalf("PlanCreativeMove error: %v", err)
		}
		if len(plan.Changed) != 2 {
			t.Fatalf("expected 2 changed folders, got %d", len(plan.Changed))
		}

		var a, b *models.Folder
		for i := range plan.Changed {
			switch plan.Changed[i].ID {
			case "A":
				a = &plan.Changed[i]
			case "B":
				b = &plan.Changed[i]
			}
		}
		if a == nil || a.Contains("c1") {
			t.Errorf("A should have lost c1: %+v", a)
		}
		if a != nil && !a.Contains("c2") {
			t.Errorf("A should still hold c2: %+v", a)
		}
		if b == nil || !b.Contains("c1") {
			t.Errorf("B should have gained c1: %+v", b)
		}
		if b != nil && countOf(b.CreativeIDs, "c1") != 1 {
			t.Errorf("B holds c1 %d times, want exactly once", countOf(b.CreativeIDs, "c1"))
		}
	})

	t.Run("move to current folder is empty plan", func(t *testing.T) {
		plan, err := PlanCreativeMove("c1", strPtr("A"), folders)
		if err != nil {
			t.Fatalf("PlanCreativeMove error: %v", err)
		}
		if len(plan.Changed) != 0 {
			t.Errorf("expected empty plan, got %d changes", len(plan.Changed))
		}
	})

	t.Run("unfiled to root is empty plan", func(t *testing.T) {
		plan, err := PlanCreativeMove("never-filed", nil, folders)
		if err != nil {
			t.Fatalf("PlanCreativeMove error: %v", err)
		}
		if len(plan.Changed) != 0 {
			t.Errorf("expected empty plan, got %d changes", len(plan.Changed))
		}
	})

	t.Run("unfile to root removes from holder only", func(t *testing.T) {
		plan, err := PlanCreativeMove("c2", nil, folders)
		if err != nil {
			t.Fatalf("PlanCreativeMove error: %v", err)
		}
		if len(plan.Changed) != 1 || plan.Changed[0].ID != "A" {
			t.Fatalf("expected only A to change, got %+v", plan.Changed)
		}
		if plan.Changed[0].Contains("c2") {
			t.Error("A should have lost c2")
		}
	})

	t.Run("file unfiled creative adds to target only", func(t *testing.T) {
		plan, err := PlanCreativeMove("c9", strPtr("B"), folders)
		if err != nil {
			t.Fatalf("PlanCreativeMove error: %v", err)
		}
		if len(plan.Changed) != 1 || plan.Changed[0].ID != "B" {
			t.Fatalf("expected only B to change, got %+v", plan.Changed)
		}
	})

	t.Run("unknown target folder", func(t *testing.T) {
		if _, err := PlanCreativeMove("c1", strPtr("Z"), folders); err == nil {
			t.Error("expected error for unknown target folder")
		}
	})

	t.Run("input snapshot is not mutated", func(t *testing.T) {
		if _, err := PlanCreativeMove("c1", strPtr("B"), folders); err != nil {
			t.Fatal(err)
		}
		if !folders[0].Contains("c1") {
			t.Error("planning must not mutate the snapshot")
		}
	})
}

func TestValidateFolderDelete(t *testing.T) {
	folders := []models.Folder{
		{ID: "A", CreativeIDs: []string{}},
		{ID: "B", ParentID: strPtr("A"), CreativeIDs: []string{}},
		{ID: "C", CreativeIDs: []string{"c1"}},
		{ID: "D", CreativeIDs: []string{}},
	}

	tests := []struct {
		name    string
		folder  string
		wantErr bool
	}{
		{"folder with child folder rejected", "A", true},
		{"folder with creatives rejected", "C", true},
		{"empty leaf folder allowed", "B", false},
		{"empty root folder allowed", "D", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFolderDelete(FolderByID(tt.folder, folders), folders)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFolderDelete(%q) error = %v, wantErr %v", tt.folder, err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("deletion guard must reject with a validation error, got %v", err)
				}
			}
		})
	}
}

func TestBuildTree(t *testing.T) {
	folders := []models.Folder{
		{ID: "A", Name: "A", CreativeIDs: []string{"c1"}},
		{ID: "B", Name: "B", ParentID: strPtr("A"), CreativeIDs: []string{}},
	}
	creatives := []models.Creative{
		{ID: "c1", Name: "banner", Type: models.CreativeTypeImage},
		{ID: "c2", Name: "teaser", Type: models.CreativeTypeVideo},
	}

	tree := BuildTree(folders, creatives)

	if len(tree.Folders) != 1 || tree.Folders[0].ID != "A" {
		t.Fatalf("expected single root folder A, got %+v", tree.Folders)
	}
	root := tree.Folders[0]
	if len(root.Folders) != 1 || root.Folders[0].ID != "B" {
		t.Errorf("A should nest B, got %+v", root.Folders)
	}
	if len(root.Creatives) != 1 || root.Creatives[0].ID != "c1" {
		t.Errorf("A should hold c1, got %+v", root.Creatives)
	}
	if len(tree.Creatives) != 1 || tree.Creatives[0].ID != "c2" {
		t.Errorf("c2 should be unfiled at root, got %+v", tree.Creatives)
	}
}

func countOf(ids []string, id string) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}
