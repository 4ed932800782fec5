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

// PostgresAudienceRepository implements the AudienceRepository interface
type PostgresAudienceRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAudienceRepository creates a new audience repository
func NewAudienceRepository(config *RepositoryConfig) repositories.AudienceRepository {
	return &PostgresAudienceRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const audienceColumns = "id, name, description, size, tags, created_at, updated_at"

// Create creates a new audience. The id is generated by the database.
func (r *PostgresAudienceRepository) Create(ctx context.Context, audience *models.Audience) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, size, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Audiences)

	if audience.Tags == nil {
		audience.Tags = []string{}
	}

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		audience.Name,
		audience.Description,
		audience.Size,
		audience.Tags,
		audience.CreatedAt,
		audience.UpdatedAt,
	).Scan(&audience.ID, &audience.CreatedAt, &audience.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create audience: %w", err)
	}

	return nil
}

// GetByID retrieves an audience by ID
func (r *PostgresAudienceRepository) GetByID(ctx context.Context, id string) (*models.Audience, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, audienceColumns, r.tables.Audiences)

	executor := GetExecutor(ctx, r.pool)
	audience, err := scanAudience(executor.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("audience %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get audience: %w", err)
	}

	return audience, nil
}

// Update applies a partial update and returns the updated row.
func (r *PostgresAudienceRepository) Update(ctx context.Context, id string, patch *models.AudiencePatch) (*models.Audience, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Size != nil {
		args = append(args, *patch.Size)
		sets = append(sets, fmt.Sprintf("size = $%d", len(args)))
	}
	if patch.Tags != nil {
		args = append(args, patch.Tags)
		sets = append(sets, fmt.Sprintf("tags = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %s SET %s WHERE id = $%d
		RETURNING %s
	`, r.tables.Audiences, joinClauses(sets), len(args), audienceColumns)

	executor := GetExecutor(ctx, r.pool)
	audience, err := scanAudience(executor.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("audience %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update audience: %w", err)
	}

	return audience, nil
}

// Delete deletes an audience
func (r *PostgresAudienceRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Audiences)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete audience: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("audience %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListAll retrieves every audience as a flat list
func (r *PostgresAudienceRepository) ListAll(ctx context.Context) ([]models.Audience, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY name ASC
	`, audienceColumns, r.tables.Audiences)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list audiences: %w", err)
	}
	defer rows.Close()

	var audiences []models.Audience
	for rows.Next() {
		audience, err := scanAudience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audience: %w", err)
		}
		audiences = append(audiences, *audience)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audiences: %w", err)
	}

	return audiences, nil
}

func scanAudience(row rowScanner) (*models.Audience, error) {
	var audience models.Audience
	err := row.Scan(
		&audience.ID,
		&audience.Name,
		&audience.Description,
		&audience.Size,
		&audience.Tags,
		&audience.CreatedAt,
		&audience.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if audience.Tags == nil {
		audience.Tags = []string{}
	}
	return &audience, nil
}
