package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vocabox/internal/config"
	"vocabox/internal/repository/postgres"
	"vocabox/internal/service"
)

// app holds the wiring shared by every command
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sqlx.DB
	clock  service.Clock

	userRepo     *postgres.UserRepo
	itemRepo     *postgres.ItemRepo
	progressRepo *postgres.ProgressRepo

	sessions    *service.SessionStore
	assignments *service.AssignmentService
	auth        *service.AuthService
	review      *service.ReviewService
	stats       *service.StatsService
}

// newApp loads config, connects to the database and builds the services.
// Pending migrations are applied when migrateUp is set.
func newApp(ctx context.Context, cmd *cobra.Command, migrateUp bool) (*app, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := connectDatabase(ctx, cfg.DSN(), logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection established")

	if migrateUp {
		if err := runMigrations(db, cfg.MigrationsPath, logger); err != nil {
			db.Close()
			return nil, err
		}
	}

	a := &app{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		clock:        service.SystemClock(loc),
		userRepo:     postgres.NewUserRepo(db),
		itemRepo:     postgres.NewItemRepo(db),
		progressRepo: postgres.NewProgressRepo(db),
		sessions:     service.NewSessionStore(),
	}

	seed := cfg.ResetSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.assignments = service.NewAssignmentService(
		a.itemRepo, a.progressRepo, cfg.ResetPoolSize, rand.New(rand.NewSource(seed)), a.clock, logger)
	a.auth = service.NewAuthService(a.userRepo, a.assignments, cfg.BotPassword, logger)
	selector := service.NewSelector(a.progressRepo, a.itemRepo, a.clock, logger)
	a.review = service.NewReviewService(selector, a.progressRepo, a.sessions, a.clock, logger)
	a.stats = service.NewStatsService(a.progressRepo, a.clock, logger)

	return a, nil
}

// Close releases the database and flushes logs
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("Failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}
