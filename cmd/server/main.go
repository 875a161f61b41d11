package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "fleethire-backend/internal/api/http"
	"fleethire-backend/internal/config"
	"fleethire-backend/internal/logger"
	"fleethire-backend/internal/repository/postgres"
	"fleethire-backend/internal/security"
	"fleethire-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fleethire Back Office...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	catalogSvc := service.NewCatalogService(
		store.VehicleTypeRepository,
		store.LocationRepository,
		store.PricingRuleRepository,
	)
	draftSvc := service.NewDraftService(catalogSvc, store.QuoteRepository, emailSvc)
	quoteSvc := service.NewQuoteService(store.QuoteRepository)

	// Initialize HTTP handlers
	catalogHandler := httpapi.NewCatalogHandler(catalogSvc)
	draftHandler := httpapi.NewDraftHandler(draftSvc)
	quoteHandler := httpapi.NewQuoteHandler(quoteSvc)

	router := httpapi.NewRouter(authMiddleware, catalogHandler, draftHandler, quoteHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
