package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"traction/internal/domain"
	"traction/internal/domain/models"
	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService services.FolderService
	organizer     services.Organizer
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService services.FolderService, organizer services.Organizer, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		organizer:     organizer,
		logger:        logger,
	}
}

// UpdateFolderRequest is the PATCH body. ParentID uses presence-aware
// decoding: absent means no move, null means move to root.
type UpdateFolderRequest struct {
	Name     *string                 `json:"name,omitempty"`
	ParentID httputil.OptionalString `json:"parent_id"`
}

// UpdateFolderResponse carries the updated folder, plus the move outcome
// when the request included a parent change.
type UpdateFolderResponse struct {
	Folder *models.Folder       `json:"folder"`
	Move   *services.MoveResult `json:"move,omitempty"`
}

// CreateFolder creates a new folder
// POST /api/folders
// Returns 201 if created, 409 with the existing folder if a sibling with the
// same name already exists.
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) && conflictErr.ResourceID != "" {
			existing, fetchErr := h.folderService.GetFolder(r.Context(), conflictErr.ResourceID)
			if fetchErr == nil {
				httputil.RespondJSON(w, http.StatusConflict, existing)
				return
			}
		}
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// GetFolder retrieves a folder by ID
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	folder, err := h.folderService.GetFolder(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// UpdateFolder renames and/or moves a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	var req UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := UpdateFolderResponse{}

	if req.Name != nil {
		folder, err := h.folderService.RenameFolder(r.Context(), id, *req.Name)
		if err != nil {
			handleError(w, err)
			return
		}
		resp.Folder = folder
	}

	if req.ParentID.Present {
		move, err := h.folderService.MoveFolder(r.Context(), id, req.ParentID.Value)
		if err != nil {
			handleError(w, err)
			return
		}
		resp.Move = move
		resp.Folder = nil // re-fetch below, the move changed the row
	}

	if resp.Folder == nil {
		folder, err := h.folderService.GetFolder(r.Context(), id)
		if err != nil {
			handleError(w, err)
			return
		}
		resp.Folder = folder
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// DeleteFolder deletes a folder (must be empty). Routing through the
// organizer keeps navigation consistent when the open folder is deleted.
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	if err := h.organizer.DeleteFolder(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListContents lists the child folders and filed creatives of a folder
// GET /api/folders/{id}/contents
func (h *FolderHandler) ListContents(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Folder ID is required")
		return
	}

	contents, err := h.folderService.ListContents(r.Context(), &id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, contents)
}
