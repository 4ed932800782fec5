package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"traction/internal/domain/models"
	"traction/internal/domain/repositories"
)

// PostgresSettingsRepository implements the SettingsRepository interface
type PostgresSettingsRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(config *RepositoryConfig) repositories.SettingsRepository {
	return &PostgresSettingsRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByUserID retrieves settings for a specific user
func (r *PostgresSettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Settings, error) {
	query := fmt.Sprintf(`
		SELECT user_id, data, created_at, updated_at
		FROM %s
		WHERE user_id = $1
	`, r.tables.Settings)

	var settings models.Settings
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.Values,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			// No settings saved yet - return nil (not an error)
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &settings, nil
}

// Upsert creates or replaces the settings row for the user
func (r *PostgresSettingsRepository) Upsert(ctx context.Context, settings *models.Settings) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, data, created_at, updated_at
	`, r.tables.Settings)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		settings.UserID,
		settings.Values,
		settings.CreatedAt,
		settings.UpdatedAt,
	).Scan(
		&settings.UserID,
		&settings.Values,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	return nil
}
