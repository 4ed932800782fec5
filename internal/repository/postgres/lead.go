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

// PostgresLeadRepository implements the LeadRepository interface
type PostgresLeadRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(config *RepositoryConfig) repositories.LeadRepository {
	return &PostgresLeadRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const leadColumns = "id, name, email, phone, funnel, stage, source, campaign_id, value, created_at, updated_at"

// Create creates a new lead. The id is generated by the database.
func (r *PostgresLeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, phone, funnel, stage, source, campaign_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, r.tables.Leads)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Funnel,
		lead.Stage,
		lead.Source,
		lead.CampaignID,
		lead.Value,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("campaign %v: %w", lead.CampaignID, domain.ErrNotFound)
		}
		return fmt.Errorf("create lead: %w", err)
	}

	return nil
}

// GetByID retrieves a lead by ID
func (r *PostgresLeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, leadColumns, r.tables.Leads)

	executor := GetExecutor(ctx, r.pool)
	lead, err := scanLead(executor.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}

	return lead, nil
}

// Update applies a partial update and returns the updated row.
func (r *PostgresLeadRepository) Update(ctx context.Context, id string, patch *models.LeadPatch) (*models.Lead, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if patch.Phone != nil {
		args = append(args, *patch.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}
	if patch.Funnel != nil {
		args = append(args, *patch.Funnel)
		sets = append(sets, fmt.Sprintf("funnel = $%d", len(args)))
	}
	if patch.Stage != nil {
		args = append(args, *patch.Stage)
		sets = append(sets, fmt.Sprintf("stage = $%d", len(args)))
	}
	if patch.Source != nil {
		args = append(args, *patch.Source)
		sets = append(sets, fmt.Sprintf("source = $%d", len(args)))
	}
	if patch.CampaignID != nil {
		// *patch.CampaignID may itself be nil, which detaches the lead
		args = append(args, *patch.CampaignID)
		sets = append(sets, fmt.Sprintf("campaign_id = $%d", len(args)))
	}
	if patch.Value != nil {
		args = append(args, *patch.Value)
		sets = append(sets, fmt.Sprintf("value = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %s SET %s WHERE id = $%d
		RETURNING %s
	`, r.tables.Leads, joinClauses(sets), len(args), leadColumns)

	executor := GetExecutor(ctx, r.pool)
	lead, err := scanLead(executor.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
		}
		if isPgForeignKeyError(err) {
			return nil, fmt.Errorf("campaign: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}

	return lead, nil
}

// Delete deletes a lead
func (r *PostgresLeadRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Leads)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListAll retrieves every lead as a flat list
func (r *PostgresLeadRepository) ListAll(ctx context.Context) ([]models.Lead, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY created_at DESC
	`, leadColumns, r.tables.Leads)

	return r.queryLeads(ctx, query)
}

// ListByCampaign lists leads attributed to a campaign
func (r *PostgresLeadRepository) ListByCampaign(ctx context.Context, campaignID string) ([]models.Lead, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE campaign_id = $1 ORDER BY created_at DESC
	`, leadColumns, r.tables.Leads)

	return r.queryLeads(ctx, query, campaignID)
}

func (r *PostgresLeadRepository) queryLeads(ctx context.Context, query string, args ...interface{}) ([]models.Lead, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, *lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	return leads, nil
}

func scanLead(row rowScanner) (*models.Lead, error) {
	var lead models.Lead
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Funnel,
		&lead.Stage,
		&lead.Source,
		&lead.CampaignID,
		&lead.Value,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
