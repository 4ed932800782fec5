package handler

import (
	"log/slog"
	"net/http"

	"traction/internal/domain/services"
	"traction/internal/httputil"
)

// GoalHandler handles goal HTTP requests
type GoalHandler struct {
	goalService services.GoalService
	logger      *slog.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// CreateGoal creates a new goal
// POST /api/goals
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req services.CreateGoalRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.CreateGoal(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, goal)
}

// GetGoal retrieves a goal with derived progress and status
// GET /api/goals/{id}
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	goal, err := h.goalService.GetGoal(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, goal)
}

// ListGoals lists all goals with derived progress
// GET /api/goals
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.ListGoals(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, goals)
}

// UpdateGoal updates a goal
// PATCH /api/goals/{id}
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	var req services.UpdateGoalRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.UpdateGoal(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, goal)
}

// DeleteGoal deletes a goal
// DELETE /api/goals/{id}
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	if err := h.goalService.DeleteGoal(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
