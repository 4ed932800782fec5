package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// LibraryHandler serves the library-wide views (tree, root contents) and the
// drag-and-drop surface.
type LibraryHandler struct {
	folderService services.FolderService
	organizer     services.Organizer
	logger        *slog.Logger
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(folderService services.FolderService, organizer services.Organizer, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{
		folderService: folderService,
		organizer:     organizer,
		logger:        logger,
	}
}

// OpenFolderRequest names the folder to open; null returns to the root.
type OpenFolderRequest struct {
	FolderID *string `json:"folder_id"`
}

// NavigationState reports the currently open folder.
type NavigationState struct {
	FolderID *string `json:"folder_id"` // null at root
}

// GetTree returns the full nested folder/creative tree
// GET /api/library/tree
func (h *LibraryHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.folderService.GetTree(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

// GetRootContents lists top-level folders plus unfiled creatives
// GET /api/library
func (h *LibraryHandler) GetRootContents(w http.ResponseWriter, r *http.Request) {
	contents, err := h.folderService.ListContents(r.Context(), nil)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, contents)
}

// HandleDrop executes one completed drag-and-drop gesture
// POST /api/library/drop
func (h *LibraryHandler) HandleDrop(w http.ResponseWriter, r *http.Request) {
	var gesture services.DropGesture
	if err := httputil.ParseJSON(w, r, &gesture); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.organizer.HandleDrop(r.Context(), &gesture)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// OpenFolder changes the navigation state used to resolve listing drops
// POST /api/library/open
func (h *LibraryHandler) OpenFolder(w http.ResponseWriter, r *http.Request) {
	var req OpenFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Opening a folder that doesn't exist is a client error, not a silent
	// navigation change.
	if req.FolderID != nil {
		if _, err := h.folderService.GetFolder(r.Context(), *req.FolderID); err != nil {
			handleError(w, err)
			return
		}
	}

	h.organizer.OpenFolder(req.FolderID)
	httputil.RespondJSON(w, http.StatusOK, NavigationState{FolderID: h.organizer.CurrentFolder()})
}

// GetNavigation reports the currently open folder
// GET /api/library/navigation
func (h *LibraryHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, NavigationState{FolderID: h.organizer.CurrentFolder()})
}
