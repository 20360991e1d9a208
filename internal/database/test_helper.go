package database

import (
	"fmt"
	"testing"
	"time"

	"finance-alerts/internal/config"
	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection would otherwise get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"notification_history",
		"notification_settings",
		"scheduled_payments",
		"budgets",
		"transactions",
		"categories",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

// CreateTestTransaction inserts a transaction; a nil category leaves it uncategorized
func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, category *models.Category, txType string, amount int64, occurredAt time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: "test transaction",
		OccurredAt:  occurredAt.UTC(),
	}
	if category != nil {
		tx.CategoryID = &category.ID
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

func CreateTestBudget(t *testing.T, db *DB, userID uuid.UUID, category *models.Category, limit int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  category.ID,
		Name:        category.Name,
		AmountLimit: limit,
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CreateTestScheduledPayment(t *testing.T, db *DB, userID uuid.UUID, name string, amount int64, nextDate time.Time) *models.ScheduledPayment {
	t.Helper()

	payment := &models.ScheduledPayment{
		UserID:   userID,
		Name:     name,
		Amount:   amount,
		NextDate: nextDate.UTC(),
	}

	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test scheduled payment: %v", err)
	}

	return payment
}
