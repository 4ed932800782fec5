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

// PostgresCampaignRepository implements the CampaignRepository interface
type PostgresCampaignRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(config *RepositoryConfig) repositories.CampaignRepository {
	return &PostgresCampaignRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const campaignColumns = "id, name, status, channel, budget, spent, start_date, end_date, created_at, updated_at"

// Create creates a new campaign. The id is generated by the database.
func (r *PostgresCampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, status, channel, budget, spent, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, r.tables.Campaigns)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		campaign.Name,
		campaign.Status,
		campaign.Channel,
		campaign.Budget,
		campaign.Spent,
		campaign.StartDate,
		campaign.EndDate,
		campaign.CreatedAt,
		campaign.UpdatedAt,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}

	return nil
}

// GetByID retrieves a campaign by ID
func (r *PostgresCampaignRepository) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE id = $1
	`, campaignColumns, r.tables.Campaigns)

	executor := GetExecutor(ctx, r.pool)
	campaign, err := scanCampaign(executor.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	return campaign, nil
}

// Update applies a partial update and returns the updated row.
func (r *PostgresCampaignRepository) Update(ctx context.Context, id string, patch *models.CampaignPatch) (*models.Campaign, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.Channel != nil {
		args = append(args, *patch.Channel)
		sets = append(sets, fmt.Sprintf("channel = $%d", len(args)))
	}
	if patch.Budget != nil {
		args = append(args, *patch.Budget)
		sets = append(sets, fmt.Sprintf("budget = $%d", len(args)))
	}
	if patch.Spent != nil {
		args = append(args, *patch.Spent)
		sets = append(sets, fmt.Sprintf("spent = $%d", len(args)))
	}
	if patch.StartDate != nil {
		args = append(args, *patch.StartDate)
		sets = append(sets, fmt.Sprintf("start_date = $%d", len(args)))
	}
	if patch.EndDate != nil {
		args = append(args, *patch.EndDate)
		sets = append(sets, fmt.Sprintf("end_date = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE %s SET %s WHERE id = $%d
		RETURNING %s
	`, r.tables.Campaigns, joinClauses(sets), len(args), campaignColumns)

	executor := GetExecutor(ctx, r.pool)
	campaign, err := scanCampaign(executor.QueryRow(ctx, query, args...))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update campaign: %w", err)
	}

	return campaign, nil
}

// Delete deletes a campaign
func (r *PostgresCampaignRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Campaigns)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("campaign has attributed leads: %w", domain.ErrConflict)
		}
		return fmt.Errorf("delete campaign: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListAll retrieves every campaign as a flat list
func (r *PostgresCampaignRepository) ListAll(ctx context.Context) ([]models.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY created_at DESC
	`, campaignColumns, r.tables.Campaigns)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}

	return campaigns, nil
}

func scanCampaign(row rowScanner) (*models.Campaign, error) {
	var campaign models.Campaign
	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Status,
		&campaign.Channel,
		&campaign.Budget,
		&campaign.Spent,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}
