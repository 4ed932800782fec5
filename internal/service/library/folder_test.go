package library

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"traction/internal/domain"
	"traction/internal/domain/models"
	"traction/internal/domain/services"
)

// memFolderRepo is an in-memory FolderRepository that counts writes.
type memFolderRepo struct {
	folders map[string]*models.Folder
	nextID  int
	updates int
	deletes int
}

func newMemFolderRepo(folders ...*models.Folder) *memFolderRepo {
	r := &memFolderRepo{folders: make(map[string]*models.Folder)}
	for _, f := range folders {
		r.folders[f.ID] = f
	}
	return r
}

func (r *memFolderRepo) Create(_ context.Context, folder *models.Folder) error {
	r.nextID++
	folder.ID = fmt.Sprintf("f-%d", r.nextID)
	r.folders[folder.ID] = folder
	return nil
}

func (r *memFolderRepo) GetByID(_ context.Context, id string) (*models.Folder, error) {
	f, ok := r.folders[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: "folder not found"}
	}
	return f, nil
}

func (r *memFolderRepo) Update(_ context.Context, id string, patch *models.FolderPatch) (*models.Folder, error) {
	f, ok := r.folders[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: "folder not found"}
	}
	r.updates++
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.ParentID != nil {
		f.ParentID = *patch.ParentID
	}
	if patch.CreativeIDs != nil {
		f.CreativeIDs = patch.CreativeIDs
	}
	return f, nil
}

func (r *memFolderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.folders[id]; !ok {
		return &domain.NotFoundError{Message: "folder not found"}
	}
	r.deletes++
	delete(r.folders, id)
	return nil
}

func (r *memFolderRepo) ListChildren(_ context.Context, parentID *string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if sameParent(f.ParentID, parentID) {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *memFolderRepo) ListAll(_ context.Context) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		out = append(out, *f)
	}
	return out, nil
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// memCreativeRepo serves ListAll only; the folder service never writes
// creatives.
type memCreativeRepo struct {
	creatives []models.Creative
}

func (r *memCreativeRepo) Create(_ context.Context, _ *models.Creative) error {
	return errors.New("not implemented")
}

func (r *memCreativeRepo) GetByID(_ context.Context, _ string) (*models.Creative, error) {
	return nil, errors.New("not implemented")
}

func (r *memCreativeRepo) Update(_ context.Context, _ string, _ *models.CreativePatch) (*models.Creative, error) {
	return nil, errors.New("not implemented")
}

func (r *memCreativeRepo) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

func (r *memCreativeRepo) ListAll(_ context.Context) ([]models.Creative, error) {
	return r.creatives, nil
}

// nopRecorder is an ActivityRecorder that drops everything.
type nopRecorder struct{}

func (nopRecorder) Record(_ context.Context, _ *models.ActivityEntry) {}

func (nopRecorder) ListRecent(_ context.Context, _ int) ([]models.ActivityEntry, error) {
	return nil, nil
}

func newTestFolderService(folderRepo *memFolderRepo, creatives ...models.Creative) services.FolderService {
	return NewFolderService(folderRepo, &memCreativeRepo{creatives: creatives}, nopRecorder{}, discardLogger())
}

func TestCreateFolderRejectsDuplicateSibling(t *testing.T) {
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Evergreen", CreativeIDs: []string{}},
	)
	svc := newTestFolderService(repo)

	_, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{Name: "Evergreen"})

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.ResourceID != "A" {
		t.Errorf("conflict points at %q, want the existing sibling A", conflict.ResourceID)
	}
}

func TestCreateFolderAllowsSameNameInDifferentParents(t *testing.T) {
	parent := "A"
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Q4 Push", CreativeIDs: []string{}},
		&models.Folder{ID: "B", Name: "Drafts", CreativeIDs: []string{}},
	)
	svc := newTestFolderService(repo)

	folder, err := svc.CreateFolder(context.Background(), &services.CreateFolderRequest{
		Name:     "Drafts",
		ParentID: &parent,
	})
	if err != nil {
		t.Fatalf("CreateFolder error: %v", err)
	}
	if folder.ParentID == nil || *folder.ParentID != "A" {
		t.Errorf("folder parent = %v, want A", folder.ParentID)
	}
}

func TestCreateFolderValidation(t *testing.T) {
	tests := []struct {
		name string
		req  services.CreateFolderRequest
	}{
		{"empty name", services.CreateFolderRequest{Name: ""}},
		{"whitespace only name", services.CreateFolderRequest{Name: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestFolderService(newMemFolderRepo())
			_, err := svc.CreateFolder(context.Background(), &tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestMoveFolderNoopSkipsWrite(t *testing.T) {
	parent := "A"
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Q4 Push", CreativeIDs: []string{}},
		&models.Folder{ID: "B", Name: "Video Ads", ParentID: &parent, CreativeIDs: []string{}},
	)
	svc := newTestFolderService(repo)

	result, err := svc.MoveFolder(context.Background(), "B", &parent)
	if err != nil {
		t.Fatalf("MoveFolder error: %v", err)
	}
	if result.Changed {
		t.Error("moving to the current parent must report Changed=false")
	}
	if repo.updates != 0 {
		t.Errorf("no-op move issued %d writes, want 0", repo.updates)
	}
}

func TestMoveFolderRejectsCycle(t *testing.T) {
	a := "A"
	b := "B"
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Top", CreativeIDs: []string{}},
		&models.Folder{ID: "B", Name: "Mid", ParentID: &a, CreativeIDs: []string{}},
		&models.Folder{ID: "C", Name: "Leaf", ParentID: &b, CreativeIDs: []string{}},
	)
	svc := newTestFolderService(repo)

	// Moving Top under its grandchild would create a cycle
	c := "C"
	_, err := svc.MoveFolder(context.Background(), "A", &c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for cycle, got %v", err)
	}
	if repo.updates != 0 {
		t.Error("rejected move must not write")
	}
}

func TestMoveFolderToRoot(t *testing.T) {
	a := "A"
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Top", CreativeIDs: []string{}},
		&models.Folder{ID: "B", Name: "Mid", ParentID: &a, CreativeIDs: []string{}},
	)
	svc := newTestFolderService(repo)

	result, err := svc.MoveFolder(context.Background(), "B", nil)
	if err != nil {
		t.Fatalf("MoveFolder error: %v", err)
	}
	if !result.Changed {
		t.Error("move to root should change the folder")
	}
	if repo.folders["B"].ParentID != nil {
		t.Errorf("folder B parent = %v, want root", *repo.folders["B"].ParentID)
	}
}

func TestDeleteFolderRequiresEmpty(t *testing.T) {
	a := "A"
	tests := []struct {
		name    string
		folders []*models.Folder
		wantErr bool
	}{
		{
			"folder with child folder",
			[]*models.Folder{
				{ID: "A", Name: "Top", CreativeIDs: []string{}},
				{ID: "B", Name: "Child", ParentID: &a, CreativeIDs: []string{}},
			},
			true,
		},
		{
			"folder holding creatives",
			[]*models.Folder{
				{ID: "A", Name: "Top", CreativeIDs: []string{"c-1"}},
			},
			true,
		},
		{
			"empty folder",
			[]*models.Folder{
				{ID: "A", Name: "Top", CreativeIDs: []string{}},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemFolderRepo(tt.folders...)
			svc := newTestFolderService(repo)

			err := svc.DeleteFolder(context.Background(), "A")
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if repo.deletes != 0 {
					t.Error("rejected delete must not remove the folder")
				}
				return
			}
			if err != nil {
				t.Fatalf("DeleteFolder error: %v", err)
			}
			if repo.deletes != 1 {
				t.Errorf("deletes = %d, want 1", repo.deletes)
			}
		})
	}
}

func TestListContentsRootShowsUnfiledCreatives(t *testing.T) {
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Evergreen", CreativeIDs: []string{"c-1"}},
	)
	svc := newTestFolderService(repo,
		models.Creative{ID: "c-1", Name: "Filed"},
		models.Creative{ID: "c-2", Name: "Unfiled"},
	)

	contents, err := svc.ListContents(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListContents error: %v", err)
	}
	if len(contents.Folders) != 1 {
		t.Errorf("root folders = %d, want 1", len(contents.Folders))
	}
	if len(contents.Creatives) != 1 || contents.Creatives[0].ID != "c-2" {
		t.Errorf("root creatives = %+v, want only the unfiled c-2", contents.Creatives)
	}
}

func TestListContentsFolderShowsOnlyItsCreatives(t *testing.T) {
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Evergreen", CreativeIDs: []string{"c-1"}},
	)
	svc := newTestFolderService(repo,
		models.Creative{ID: "c-1", Name: "Filed"},
		models.Creative{ID: "c-2", Name: "Unfiled"},
	)

	id := "A"
	contents, err := svc.ListContents(context.Background(), &id)
	if err != nil {
		t.Fatalf("ListContents error: %v", err)
	}
	if contents.Folder == nil || contents.Folder.ID != "A" {
		t.Fatal("contents should carry the listed folder")
	}
	if len(contents.Creatives) != 1 || contents.Creatives[0].ID != "c-1" {
		t.Errorf("folder creatives = %+v, want only the filed c-1", contents.Creatives)
	}
}

func TestRenameFolderSameNameIsNoop(t *testing.T) {
	repo := newMemFolderRepo(
		&models.Folder{ID: "A", Name: "Evergreen", CreativeIDs: []string{}},
	)
	svc := newTestFolderService(repo)

	folder, err := svc.RenameFolder(context.Background(), "A", "Evergreen")
	if err != nil {
		t.Fatalf("RenameFolder error: %v", err)
	}
	if folder.Name != "Evergreen" {
		t.Errorf("name = %q", folder.Name)
	}
	if repo.updates != 0 {
		t.Errorf("same-name rename issued %d writes, want 0", repo.updates)
	}
}
