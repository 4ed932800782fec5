package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"traction/internal/domain/models"
	"traction/internal/domain/repositories"
)

// PostgresActivityRepository implements the ActivityRepository interface.
// The trail is append-only: entries are never updated or deleted.
type PostgresActivityRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(config *RepositoryConfig) repositories.ActivityRepository {
	return &PostgresActivityRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create appends one entry to the trail
func (r *PostgresActivityRepository) Create(ctx context.Context, entry *models.ActivityEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, action, item_type, item_id, item_name, details, user_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.tables.Activity)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		entry.ID,
		entry.Action,
		entry.ItemType,
		entry.ItemID,
		entry.ItemName,
		entry.Details,
		entry.UserEmail,
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("create activity entry: %w", err)
	}

	return nil
}

// ListRecent returns the newest entries, most recent first
func (r *PostgresActivityRepository) ListRecent(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	query := fmt.Sprintf(`
		SELECT id, action, item_type, item_id, item_name, details, user_email, created_at
		FROM %s
		ORDER BY created_at DESC
		LIMIT $1
	`, r.tables.Activity)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var entry models.ActivityEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.ItemType,
			&entry.ItemID,
			&entry.ItemName,
			&entry.Details,
			&entry.UserEmail,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}

	return entries, nil
}
