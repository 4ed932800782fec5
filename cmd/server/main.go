package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"traction/internal/auth"
	"traction/internal/config"
	"traction/internal/funnel"
	"traction/internal/handler"
	"traction/internal/middleware"
	"traction/internal/repository/postgres"
	"traction/internal/service"
	"traction/internal/service/library"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.Debug {
		logFile, err := config.SetupLogFile("logs", 10)
		if err != nil {
			log.Printf("Log file setup failed, using stdout only: %v", err)
		} else {
			defer logFile.Close()
			logOut = io.MultiWriter(os.Stdout, logFile)
		}
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
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
	settingsRepo := postgres.NewSettingsRepository(repoConfig)
	activityRepo := postgres.NewActivityRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Load funnel definitions
	funnelRegistry, err := funnel.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load funnel registry: %v", err)
	}
	logger.Info("funnel registry initialized", "funnels", len(funnelRegistry.List()))

	// Create services
	activityRecorder := service.NewActivityRecorder(activityRepo, logger)
	folderService := library.NewFolderService(folderRepo, creativeRepo, activityRecorder, logger)
	creativeService := library.NewCreativeService(creativeRepo, folderRepo, txManager, funnelRegistry, activityRecorder, logger)
	organizer := library.NewOrganizer(folderService, creativeService, logger)
	campaignService := service.NewCampaignService(campaignRepo, activityRecorder, logger)
	audienceService := service.NewAudienceService(audienceRepo, activityRecorder, logger)
	leadService := service.NewLeadService(leadRepo, funnelRegistry, activityRecorder, logger)
	goalService := service.NewGoalService(goalRepo, activityRecorder, logger)
	settingsService := service.NewSettingsService(settingsRepo, funnelRegistry, logger)

	// Create handlers
	folderHandler := handler.NewFolderHandler(folderService, organizer, logger)
	creativeHandler := handler.NewCreativeHandler(creativeService, logger)
	libraryHandler := handler.NewLibraryHandler(folderService, organizer, logger)
	campaignHandler := handler.NewCampaignHandler(campaignService, logger)
	audienceHandler := handler.NewAudienceHandler(audienceService, logger)
	leadHandler := handler.NewLeadHandler(leadService, logger)
	goalHandler := handler.NewGoalHandler(goalService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	activityHandler := handler.NewActivityHandler(activityRecorder, logger)
	funnelHandler := handler.NewFunnelHandler(funnelRegistry, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", funnelHandler.HealthCheck)

	// Library routes
	mux.HandleFunc("GET /api/library", libraryHandler.GetRootContents)
	mux.HandleFunc("GET /api/library/tree", libraryHandler.GetTree)
	mux.HandleFunc("POST /api/library/drop", libraryHandler.HandleDrop)
	mux.HandleFunc("POST /api/library/open", libraryHandler.OpenFolder)
	mux.HandleFunc("GET /api/library/navigation", libraryHandler.GetNavigation)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)
	mux.HandleFunc("GET /api/folders/{id}/contents", folderHandler.ListContents)

	// Creative routes
	mux.HandleFunc("POST /api/creatives", creativeHandler.CreateCreative)
	mux.HandleFunc("GET /api/creatives", creativeHandler.ListCreatives)
	mux.HandleFunc("GET /api/creatives/{id}", creativeHandler.GetCreative)
	mux.HandleFunc("PATCH /api/creatives/{id}", creativeHandler.UpdateCreative)
	mux.HandleFunc("DELETE /api/creatives/{id}", creativeHandler.DeleteCreative)
	mux.HandleFunc("POST /api/creatives/{id}/move", creativeHandler.MoveCreative)

	// Campaign routes
	mux.HandleFunc("POST /api/campaigns", campaignHandler.CreateCampaign)
	mux.HandleFunc("GET /api/campaigns", campaignHandler.ListCampaigns)
	mux.HandleFunc("GET /api/campaigns/{id}", campaignHandler.GetCampaign)
	mux.HandleFunc("PATCH /api/campaigns/{id}", campaignHandler.UpdateCampaign)
	mux.HandleFunc("DELETE /api/campaigns/{id}", campaignHandler.DeleteCampaign)

	// Audience routes
	mux.HandleFunc("POST /api/audiences", audienceHandler.CreateAudience)
	mux.HandleFunc("GET /api/audiences", audienceHandler.ListAudiences)
	mux.HandleFunc("GET /api/audiences/{id}", audienceHandler.GetAudience)
	mux.HandleFunc("PATCH /api/audiences/{id}", audienceHandler.UpdateAudience)
	mux.HandleFunc("DELETE /api/audiences/{id}", audienceHandler.DeleteAudience)

	// Lead routes
	mux.HandleFunc("POST /api/leads", leadHandler.CreateLead)
	mux.HandleFunc("GET /api/leads", leadHandler.ListLeads)
	mux.HandleFunc("GET /api/leads/{id}", leadHandler.GetLead)
	mux.HandleFunc("PATCH /api/leads/{id}", leadHandler.UpdateLead)
	mux.HandleFunc("DELETE /api/leads/{id}", leadHandler.DeleteLead)

	// Goal routes
	mux.HandleFunc("POST /api/goals", goalHandler.CreateGoal)
	mux.HandleFunc("GET /api/goals", goalHandler.ListGoals)
	mux.HandleFunc("GET /api/goals/{id}", goalHandler.GetGoal)
	mux.HandleFunc("PATCH /api/goals/{id}", goalHandler.UpdateGoal)
	mux.HandleFunc("DELETE /api/goals/{id}", goalHandler.DeleteGoal)

	// Funnel routes
	mux.HandleFunc("GET /api/funnels", funnelHandler.ListFunnels)
	mux.HandleFunc("GET /api/funnels/{name}", funnelHandler.GetFunnel)
	mux.HandleFunc("GET /api/funnels/{name}/summary", leadHandler.GetFunnelSummary)

	// Settings routes
	mux.HandleFunc("GET /api/users/me/settings", settingsHandler.GetSettings)
	mux.HandleFunc("PATCH /api/users/me/settings", settingsHandler.UpdateSettings)

	// Activity feed
	mux.HandleFunc("GET /api/activity", activityHandler.ListRecent)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(jwtVerifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
