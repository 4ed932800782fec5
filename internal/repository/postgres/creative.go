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

// PostgresCreativeRepository implements the CreativeRepository interface
type PostgresCreativeRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCreativeRepository creates a new creative repository
func NewCreativeRepository(config *RepositoryConfig) repositories.CreativeRepository {
	return &PostgresCreativeRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const creativeColumns = "id, name, type, file_url, funnel, created_at, updated_at"

// Create creates a new creative. The id is generated by the database.
func (r *PostgresCreativeRepository) Create(ctx context.Context, creative *models.Creative) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, type, file_url, funnel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Creatives)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		creative.Name,
		creative.Type,
		creative.FileURL,
		creative.Funnel,
		creative.CreatedAt,
		creative.UpdatedAt,
	).Scan(&creative.ID, &creative.CreatedAt, &creative.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create creative: %w", err)
	}

	return nil
}

// GetByID retrieves a creative by ID
func (r *PostgresCreativeRepository) GetByID(ctx context.Context, id string) (*models.Creative, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, creativeColumns, r.tables.Creatives)

	executor := GetExecutor(ctx, r.pool)
	creative, err := scanCreative(executor.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("creative %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get creative: %w", err)
	}

	return creative, nil
}

// Update applies a partial update and returns the updated row.
func (r *PostgresCreativeRepository) Update(ctx context.Context, id string, patch *models.CreativePatch) (*models.Creative, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Type != nil {
		args = append(args, *patch.Type)
		sets = append(sets, fmt.Sprintf("type = $%d", len(args)))
	}
	if patch.FileURL != nil {
		// *patch.FileURL may itself be nil, which clears the URL
		args = append(args, *patch.FileURL)
		sets = append(sets, fmt.Sprintf("file_url = $%d", len(args)))
	}
	if patch.Funnel != nil {
		args = append(args, *patch.Funnel)
		sets = append(sets, fmt.Sprintf("funnel = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %s SET %s WHERE id = $%d
		RETURNING %s
	`, r.tables.Creatives, joinClauses(sets), len(args), creativeColumns)

	executor := GetExecutor(ctx, r.pool)
	creative, err := scanCreative(executor.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("creative %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update creative: %w", err)
	}

	return creative, nil
}

// Delete deletes a creative
func (r *PostgresCreativeRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Creatives)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete creative: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("creative %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListAll retrieves every creative as a flat list
func (r *PostgresCreativeRepository) ListAll(ctx context.Context) ([]models.Creative, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY created_at ASC
	`, creativeColumns, r.tables.Creatives)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}
	defer rows.Close()

	var creatives []models.Creative
	for rows.Next() {
		creative, err := scanCreative(rows)
		if err != nil {
			return nil, fmt.Errorf("scan creative: %w", err)
		}
		creatives = append(creatives, *creative)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate creatives: %w", err)
	}

	return creatives, nil
}

func scanCreative(row rowScanner) (*models.Creative, error) {
	var creative models.Creative
	err := row.Scan(
		&creative.ID,
		&creative.Name,
		&creative.Type,
		&creative.FileURL,
		&creative.Funnel,
		&creative.CreatedAt,
		&creative.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &creative, nil
}
