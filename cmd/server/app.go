package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hzaben/mufradat-api/internal/config"
	"github.com/hzaben/mufradat-api/internal/platform/logger"
	"github.com/hzaben/mufradat-api/internal/platform/postgres"
	"github.com/hzaben/mufradat-api/internal/service"
	"github.com/hzaben/mufradat-api/internal/service/auth"
	"github.com/hzaben/mufradat-api/internal/store"
)

// application holds the fully wired dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	deckStore     store.DeckStore
	templateStore store.TemplateStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	cloneService     service.CloneService
}

// initializeApp loads configuration, connects to the database, applies
// migrations, and wires every store, service, and handler dependency.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	userStore := postgres.NewUserStore(db, cfg.Auth.BCryptCost, appLogger)
	deckStore := postgres.NewDeckStore(db, appLogger)
	cardStore := postgres.NewCardStore(db, appLogger)
	reviewStore := postgres.NewReviewStore(db, appLogger)
	templateStore := postgres.NewTemplateStore(db, appLogger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	cloneService, err := service.NewCloneService(
		db,
		templateStore,
		deckStore,
		cardStore,
		reviewStore,
		service.NewOwnershipChecker(deckStore),
		appLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create clone service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           appLogger,
		db:               db,
		userStore:        userStore,
		deckStore:        deckStore,
		templateStore:    templateStore,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		cloneService:     cloneService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
