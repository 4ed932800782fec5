package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"traction/internal/config"
	"traction/internal/domain/services"
	"traction/internal/funnel"
	"traction/internal/repository/postgres"
	"traction/internal/service"
	"traction/internal/service/library"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	// Build the service stack so seeding goes through the same validation
	// and audit path as the API.
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	creativeRepo := postgres.NewCreativeRepository(repoConfig)
	campaignRepo := postgres.NewCampaignRepository(repoConfig)
	audienceRepo := postgres.NewAudienceRepository(repoConfig)
	leadRepo := postgres.NewLeadRepository(repoConfig)
	goalRepo := postgres.NewGoalRepository(repoConfig)
	activityRepo := postgres.NewActivityRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	funnelRegistry, err := funnel.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load funnel registry: %v", err)
	}

	activityRecorder := service.NewActivityRecorder(activityRepo, logger)
	folderService := library.NewFolderService(folderRepo, creativeRepo, activityRecorder, logger)
	creativeService := library.NewCreativeService(creativeRepo, folderRepo, txManager, funnelRegistry, activityRecorder, logger)
	campaignService := service.NewCampaignService(campaignRepo, activityRecorder, logger)
	audienceService := service.NewAudienceService(audienceRepo, activityRecorder, logger)
	leadService := service.NewLeadService(leadRepo, funnelRegistry, activityRecorder, logger)
	goalService := service.NewGoalService(goalRepo, activityRecorder, logger)

	log.Println("Seeding demo marketing data...")

	if err := seedDemoData(ctx, &seedServices{
		folders:   folderService,
		creatives: creativeService,
		campaigns: campaignService,
		audiences: audienceService,
		leads:     leadService,
		goals:     goalService,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}

type seedServices struct {
	folders   services.FolderService
	creatives services.CreativeService
	campaigns services.CampaignService
	audiences services.AudienceService
	leads     services.LeadService
	goals     services.GoalService
}

func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// gen_random_uuid() comes from pgcrypto on older PostgreSQL
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "pgcrypto"`); err != nil {
		return err
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.Folders + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			parent_id UUID REFERENCES ` + tables.Folders + `(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			creative_ids TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Creatives + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			file_url TEXT,
			funnel TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Campaigns + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft',
			channel TEXT NOT NULL,
			budget DOUBLE PRECISION NOT NULL DEFAULT 0,
			spent DOUBLE PRECISION NOT NULL DEFAULT 0,
			start_date TIMESTAMPTZ,
			end_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Audiences + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			size INTEGER NOT NULL DEFAULT 0,
			tags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Leads + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			funnel TEXT NOT NULL,
			stage TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			campaign_id UUID REFERENCES ` + tables.Campaigns + `(id) ON DELETE SET NULL,
			value DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Goals + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			metric TEXT NOT NULL,
			target_value DOUBLE PRECISION NOT NULL,
			current_value DOUBLE PRECISION NOT NULL DEFAULT 0,
			deadline TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Settings + ` (
			user_id UUID PRIMARY KEY,
			data JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Activity + ` (
			id UUID PRIMARY KEY,
			action TEXT NOT NULL,
			item_type TEXT NOT NULL,
			item_id TEXT NOT NULL,
			item_name TEXT NOT NULL,
			details TEXT NOT NULL DEFAULT '',
			user_email TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_parent ON ` + tables.Folders + `(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `leads_funnel_stage ON ` + tables.Leads + `(funnel, stage)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `leads_campaign ON ` + tables.Leads + `(campaign_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `activity_created ON ` + tables.Activity + `(created_at DESC)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Activity,
		tables.Settings,
		tables.Goals,
		tables.Leads,
		tables.Audiences,
		tables.Campaigns,
		tables.Creatives,
		tables.Folders,
	}

	for _, name := range tableNames {
		if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS `+name+` CASCADE`); err != nil {
			return err
		}
	}

	return nil
}

func seedDemoData(ctx context.Context, svc *seedServices) error {
	// Folder tree: Evergreen, Q4 Push > (Video Ads, Statics)
	evergreen, err := svc.folders.CreateFolder(ctx, &services.CreateFolderRequest{Name: "Evergreen"})
	if err != nil {
		return err
	}
	q4, err := svc.folders.CreateFolder(ctx, &services.CreateFolderRequest{Name: "Q4 Push"})
	if err != nil {
		return err
	}
	videoAds, err := svc.folders.CreateFolder(ctx, &services.CreateFolderRequest{Name: "Video Ads", ParentID: &q4.ID})
	if err != nil {
		return err
	}
	if _, err := svc.folders.CreateFolder(ctx, &services.CreateFolderRequest{Name: "Statics", ParentID: &q4.ID}); err != nil {
		return err
	}

	creatives := []struct {
		req    services.CreateCreativeRequest
		folder *string
	}{
		{services.CreateCreativeRequest{Name: "Brand Story 30s", Type: "video", Funnel: "acquisition"}, &videoAds.ID},
		{services.CreateCreativeRequest{Name: "Testimonial Carousel", Type: "carousel", Funnel: "acquisition"}, &evergreen.ID},
		{services.CreateCreativeRequest{Name: "Webinar Invite Banner", Type: "image", Funnel: "webinar"}, nil},
		{services.CreateCreativeRequest{Name: "Holiday Promo Copy", Type: "text", Funnel: "ecommerce"}, &q4.ID},
	}
	for _, c := range creatives {
		c.req.FolderID = c.folder
		if _, err := svc.creatives.CreateCreative(ctx, &c.req); err != nil {
			return err
		}
	}

	// Campaigns
	start := time.Now().AddDate(0, -1, 0)
	end := time.Now().AddDate(0, 2, 0)
	metaAds, err := svc.campaigns.CreateCampaign(ctx, &services.CreateCampaignRequest{
		Name: "Meta Prospecting", Status: "active", Channel: "meta_ads",
		Budget: 12000, StartDate: &start, EndDate: &end,
	})
	if err != nil {
		return err
	}
	if _, err := svc.campaigns.CreateCampaign(ctx, &services.CreateCampaignRequest{
		Name: "Google Brand Search", Status: "active", Channel: "google_ads", Budget: 4500,
	}); err != nil {
		return err
	}
	if _, err := svc.campaigns.CreateCampaign(ctx, &services.CreateCampaignRequest{
		Name: "Monthly Newsletter", Status: "draft", Channel: "email", Budget: 500,
	}); err != nil {
		return err
	}

	// Audiences
	audiences := []services.CreateAudienceRequest{
		{Name: "Returning Customers", Description: "Purchased in the last 12 months", Size: 18500, Tags: []string{"retention", "high-intent"}},
		{Name: "Lookalike 1%", Description: "Seeded from top spenders", Size: 240000, Tags: []string{"prospecting"}},
	}
	for i := range audiences {
		if _, err := svc.audiences.CreateAudience(ctx, &audiences[i]); err != nil {
			return err
		}
	}

	// Leads across the acquisition funnel, some attributed to a campaign
	leads := []services.CreateLeadRequest{
		{Name: "Ana Duarte", Email: "ana.duarte@example.com", Funnel: "acquisition", Stage: "new", Source: "meta_ads", CampaignID: &metaAds.ID, Value: 1200},
		{Name: "Marcus Webb", Email: "marcus.webb@example.com", Funnel: "acquisition", Stage: "contacted", Source: "referral", Value: 800},
		{Name: "Priya Nair", Email: "priya.nair@example.com", Funnel: "acquisition", Stage: "qualified", Source: "meta_ads", CampaignID: &metaAds.ID, Value: 5400},
		{Name: "Tom Eriksen", Email: "tom.eriksen@example.com", Funnel: "acquisition", Stage: "won", Source: "google_ads", Value: 3100},
		{Name: "Lena Fischer", Email: "lena.fischer@example.com", Funnel: "webinar", Stage: "registered", Source: "email", Value: 0},
	}
	for i := range leads {
		if _, err := svc.leads.CreateLead(ctx, &leads[i]); err != nil {
			return err
		}
	}

	// Goals
	deadline := time.Now().AddDate(0, 3, 0)
	goals := []services.CreateGoalRequest{
		{Name: "120 qualified leads", Metric: "leads", TargetValue: 120, Deadline: &deadline},
		{Name: "Q4 revenue target", Metric: "revenue", TargetValue: 250000, Deadline: &deadline},
	}
	for i := range goals {
		if _, err := svc.goals.CreateGoal(ctx, &goals[i]); err != nil {
			return err
		}
	}

	return nil
}
