package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-alerts/internal/config"
	"finance-alerts/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
		&models.ScheduledPayment{},
		&models.NotificationSettings{},
		&models.NotificationHistory{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// PingContext lets the health endpoint check the pool
func (db *DB) PingContext(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CreateIndexes adds the composite indexes the detectors' range scans rely on
func (db *DB) CreateIndexes(logger *slog.Logger) error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_occurred_at ON transactions(user_id, occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_type_occurred_at ON transactions(user_id, type, occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_scheduled_payments_user_next_date ON scheduled_payments(user_id, next_date)",
		"CREATE INDEX IF NOT EXISTS idx_notification_history_user_created_at ON notification_history(user_id, created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			logger.Warn("Failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize connects, migrates and indexes the store. SQL migrations are
// preferred; gorm AutoMigrate is the fallback when they are disabled or fail.
func Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	migrated := false
	if cfg.Database.RunMigrations {
		if err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database, logger); err != nil {
			logger.Warn("Migration runner failed, falling back to AutoMigrate", "error", err)
		} else {
			migrated = true
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(logger); err != nil {
		logger.Warn("Failed to create some indexes", "error", err)
	}

	logger.Info("Database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)

	return db, nil
}
