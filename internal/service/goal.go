package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"traction/internal/config"
	"traction/internal/domain"
	"traction/internal/domain/models"
	"traction/internal/domain/repositories"
	"traction/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type goalService struct {
	repo     repositories.GoalRepository
	activity services.ActivityRecorder
	logger   *slog.Logger
}

// NewGoalService creates a new goal service.
func NewGoalService(
	repo repositories.GoalRepository,
	activity services.ActivityRecorder,
	logger *slog.Logger,
) services.GoalService {
	return &goalService{
		repo:     repo,
		activity: activity,
		logger:   logger,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, req *services.CreateGoalRequest) (*models.Goal, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("goal name is required"),
			validation.Length(1, config.MaxGoalNameLength),
		),
		validation.Field(&req.Metric, validation.Required.Error("metric is required")),
		validation.Field(&req.TargetValue, validation.Required.Error("target value is required"), validation.Min(0.0).Exclusive()),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	goal := &models.Goal{
		Name:        req.Name,
		Metric:      req.Metric,
		TargetValue: req.TargetValue,
		Deadline:    req.Deadline,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal created", "id", goal.ID, "metric", goal.Metric, "target", goal.TargetValue)

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "created",
		ItemType: "goal",
		ItemID:   goal.ID,
		ItemName: goal.Name,
	})

	return goal, nil
}

func (s *goalService) GetGoal(ctx context.Context, id string) (*services.GoalWithProgress, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return withProgress(goal, time.Now()), nil
}

func (s *goalService) UpdateGoal(ctx context.Context, id string, req *services.UpdateGoalRequest) (*models.Goal, error) {
	patch := &models.GoalPatch{
		Metric:       req.Metric,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, &domain.ValidationError{Message: "goal name cannot be empty"}
		}
		patch.Name = &trimmed
	}
	if req.TargetValue != nil && *req.TargetValue <= 0 {
		return nil, &domain.ValidationError{Message: "target value must be positive"}
	}
	if req.Deadline != nil {
		patch.Deadline = &req.Deadline
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	details := ""
	if req.CurrentValue != nil {
		progress, _ := GoalProgress(updated, time.Now())
		details = fmt.Sprintf("progress now %.0f%%", progress*100)
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "updated",
		ItemType: "goal",
		ItemID:   id,
		ItemName: updated.Name,
		Details:  details,
	})

	return updated, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id string) error {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, &models.ActivityEntry{
		Action:   "deleted",
		ItemType: "goal",
		ItemID:   id,
		ItemName: goal.Name,
	})

	return nil
}

func (s *goalService) ListGoals(ctx context.Context) ([]services.GoalWithProgress, error) {
	goals, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]services.GoalWithProgress, 0, len(goals))
	for i := range goals {
		out = append(out, *withProgress(&goals[i], now))
	}
	return out, nil
}

func withProgress(goal *models.Goal, now time.Time) *services.GoalWithProgress {
	progress, status := GoalProgress(goal, now)
	return &services.GoalWithProgress{
		Goal:     *goal,
		Progress: progress,
		Status:   status,
	}
}
