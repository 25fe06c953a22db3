package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	// Register the pgx stdlib driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/phrazzld/questline/internal/config"
	"github.com/phrazzld/questline/internal/domain/progression"
	"github.com/phrazzld/questline/internal/platform/content"
	"github.com/phrazzld/questline/internal/platform/logger"
	"github.com/phrazzld/questline/internal/platform/postgres"
	"github.com/phrazzld/questline/internal/service"
)

// app bundles the wired components behind every command. Commands build
// one, use the service, and close it before returning.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
	svc    service.ProgressionService
}

// newApp loads configuration and wires logger, database, content loader
// and the progression service together.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Command output goes to stdout; logs go to stderr so piping the
	// command output stays clean.
	log, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.App.LogLevel,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	users := postgres.NewPostgresUserStore(db, log)
	source := content.NewDirLoader(cfg.App.ContentDir, log)

	params := progression.NewParams(progression.ParamsConfig{
		DefaultMissionCount:  cfg.Progression.DailyMissionCount,
		SelectionWeightFloor: cfg.Progression.SelectionWeightFloor,
		MaxNodeLevel:         cfg.Progression.MaxNodeLevel,
	})
	engine := progression.NewService(params, progression.NewRand(time.Now().UnixNano()))

	svc := service.NewProgressionService(db, users, source, engine, service.NewClock(), log)

	return &app{cfg: cfg, logger: log, db: db, svc: svc}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database connection",
			slog.String("error", err.Error()))
	}
}

func openDatabase(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// runWithApp wraps a command body with app construction and teardown.
func runWithApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()
	return fn(logger.WithContext(cmd.Context(), a.logger), a)
}
