package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finance-alerts/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the SQL schema and optional seed data
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seedEnabled    bool
	logger         *slog.Logger
}

type MigrationOption func(*MigrationRunner)

func WithMigrationsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) {
		if path != "" {
			mr.migrationsPath = path
		}
	}
}

func WithSeeds(path string, enabled bool) MigrationOption {
	return func(mr *MigrationRunner) {
		if path != "" {
			mr.seedsPath = path
		}
		mr.seedEnabled = enabled
	}
}

func WithMigrationLogger(logger *slog.Logger) MigrationOption {
	return func(mr *MigrationRunner) {
		if logger != nil {
			mr.logger = logger
		}
	}
}

func NewMigrationRunner(db *sql.DB, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the retries run out or ctx is done
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			mr.logger.Info("Database is ready", "attempts", attempt)
			return nil
		}

		mr.logger.Warn("Database not ready", "attempt", attempt, "max_attempts", maxRetries, "error", err)

		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies pending migrations. A missing directory is not an error.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.Info("Migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("Database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		mr.logger.Info("No new migrations to apply", "version", version)
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	default:
		newVersion, _, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}
		mr.logger.Info("Applied migrations", "from_version", version, "to_version", newVersion)
	}

	return nil
}

// LoadSeeds executes every *.sql file in the seeds directory in name order.
// A failing file is logged and skipped; an unreadable one aborts.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) error {
	if !mr.seedEnabled {
		mr.logger.Debug("Seed data loading disabled")
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.logger.Info("Seeds directory not found, skipping", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			mr.logger.Warn("Failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}

		mr.logger.Info("Executed seed file", "file", filepath.Base(file))
	}

	return nil
}

func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs the SQL migrations and seeds when the database
// config asks for it. It returns nil without touching the database otherwise.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) error {
	if !cfg.RunMigrations {
		return nil
	}

	runner := NewMigrationRunner(db,
		WithMigrationsPath(cfg.MigrationsPath),
		WithSeeds(cfg.SeedsPath, cfg.SeedDatabase),
		WithMigrationLogger(logger),
	)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(ctx); err != nil {
		runner.logger.Warn("Seed data loading failed", "error", err)
	}

	return nil
}
