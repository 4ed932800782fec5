package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"traction/internal/domain"
	"traction/internal/domain/models"
	"traction/internal/domain/repositories"
)

// PostgresGoalRepository implements the GoalRepository interface
type PostgresGoalRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(config *RepositoryConfig) repositories.GoalRepository {
	return &PostgresGoalRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const goalColumns = "id, name, metric, target_value, current_value, deadline, created_at, updated_at"

// Create creates a new goal. The id is generated by the database.
func (r *PostgresGoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, metric, target_value, current_value, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, r.tables.Goals)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		goal.Name,
		goal.Metric,
		goal.TargetValue,
		goal.CurrentValue,
		goal.Deadline,
		goal.CreatedAt,
		goal.UpdatedAt,
	).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}

	return nil
}

// GetByID retrieves a goal by ID
func (r *PostgresGoalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, goalColumns, r.tables.Goals)

	executor := GetExecutor(ctx, r.pool)
	goal, err := scanGoal(executor.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}

	return goal, nil
}

// Update applies a partial update and returns the updated row.
func (r *PostgresGoalRepository) Update(ctx context.Context, id string, patch *models.GoalPatch) (*models.Goal, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Metric != nil {
		args = append(args, *patch.Metric)
		sets = append(sets, fmt.Sprintf("metric = $%d", len(args)))
	}
	if patch.TargetValue != nil {
		args = append(args, *patch.TargetValue)
		sets = append(sets, fmt.Sprintf("target_value = $%d", len(args)))
	}
	if patch.CurrentValue != nil {
		args = append(args, *patch.CurrentValue)
		sets = append(sets, fmt.Sprintf("current_value = $%d", len(args)))
	}
	if patch.Deadline != nil {
		// *patch.Deadline may itself be nil, which clears the deadline
		args = append(args, *patch.Deadline)
		sets = append(sets, fmt.Sprintf("deadline = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %s SET %s WHERE id = $%d
		RETURNING %s
	`, r.tables.Goals, joinClauses(sets), len(args), goalColumns)

	executor := GetExecutor(ctx, r.pool)
	goal, err := scanGoal(executor.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update goal: %w", err)
	}

	return goal, nil
}

// Delete deletes a goal
func (r *PostgresGoalRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Goals)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListAll retrieves every goal as a flat list
func (r *PostgresGoalRepository) ListAll(ctx context.Context) ([]models.Goal, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY created_at ASC
	`, goalColumns, r.tables.Goals)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}

	return goals, nil
}

func scanGoal(row rowScanner) (*models.Goal, error) {
	var goal models.Goal
	err := row.Scan(
		&goal.ID,
		&goal.Name,
		&goal.Metric,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.Deadline,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
