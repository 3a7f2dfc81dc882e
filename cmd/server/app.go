package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/coursetrack/coursetrack/internal/config"
	"github.com/coursetrack/coursetrack/internal/platform/file"
	"github.com/coursetrack/coursetrack/internal/platform/postgres"
	"github.com/coursetrack/coursetrack/internal/service/auth"
	"github.com/coursetrack/coursetrack/internal/store"
	"github.com/coursetrack/coursetrack/internal/tracker"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the file backend is configured.
	db *sql.DB

	snapshotStore store.SnapshotStore
	tracker       *tracker.Tracker
	reconciler    *tracker.Reconciler

	// Auth services are nil unless an owner password hash is configured.
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized: the snapshot backend, the tracker seeded from it, the periodic
// overdue reconciler, and optional owner authentication.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.snapshotStore, err = app.setupSnapshotStore(ctx)
	if err != nil {
		return nil, err
	}

	app.tracker, err = tracker.New(ctx, app.snapshotStore, logger)
	if err != nil {
		app.closeDB()
		return nil, fmt.Errorf("failed to initialize tracker: %w", err)
	}

	interval := time.Duration(cfg.Server.ReconcileIntervalSeconds) * time.Second
	app.reconciler = tracker.NewReconciler(app.tracker, interval, logger)

	if cfg.Auth.AuthEnabled() {
		app.jwtService, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			app.closeDB()
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		app.passwordVerifier = auth.NewBcryptVerifier()
		logger.Info("owner authentication enabled",
			slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))
	} else {
		logger.Info("owner authentication disabled, API is open")
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// setupSnapshotStore builds the configured persistence backend. The postgres
// backend opens the pool, verifies connectivity, and applies migrations
// before use.
func (app *application) setupSnapshotStore(ctx context.Context) (store.SnapshotStore, error) {
	switch app.config.Storage.Backend {
	case "postgres":
		db, err := sql.Open("pgx", app.config.Storage.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := runMigrations(db, app.logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		app.db = db
		app.logger.Info("using postgres snapshot backend")
		return postgres.NewSnapshotStore(db, app.logger), nil

	case "file":
		app.logger.Info("using file snapshot backend",
			slog.String("path", app.config.Storage.FilePath))
		return file.NewSnapshotStore(app.config.Storage.FilePath, app.logger), nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %q", app.config.Storage.Backend)
	}
}

// Run starts the reconciler and the HTTP server, blocking until shutdown.
func (app *application) Run(ctx context.Context) error {
	app.reconciler.Start()

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.reconciler != nil {
		app.reconciler.Stop()
		app.logger.Info("reconciler stopped")
	}
	app.closeDB()
}

func (app *application) closeDB() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", slog.String("error", err.Error()))
	}
	app.db = nil
}
