package services

import (
	"context"
	"time"

	"traction/internal/domain/models"
)

// GoalService handles goal tracking business logic.
type GoalService interface {
	CreateGoal(ctx context.Context, req *CreateGoalRequest) (*models.Goal, error)
	GetGoal(ctx context.Context, id string) (*GoalWithProgress, error)
	UpdateGoal(ctx context.Context, id string, req *UpdateGoalRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	ListGoals(ctx context.Context) ([]GoalWithProgress, error)
}

// CreateGoalRequest represents a goal creation request.
type CreateGoalRequest struct {
	Name        string     `json:"name"`
	Metric      string     `json:"metric"`
	TargetValue float64    `json:"target_value"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateGoalRequest represents a goal update request.
type UpdateGoalRequest struct {
	Name         *string    `json:"name,omitempty"`
	Metric       *string    `json:"metric,omitempty"`
	TargetValue  *float64   `json:"target_value,omitempty"`
	CurrentValue *float64   `json:"current_value,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// GoalWithProgress decorates a goal with its derived progress and status.
type GoalWithProgress struct {
	models.Goal
	Progress float64           `json:"progress"` // 0..1, clamped
	Status   models.GoalStatus `json:"status"`
}
