package repositories

import (
	"context"
	"fmt"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const demoHistoryBatchSize = 200

type demoHistoryRepository struct {
	db *gorm.DB
}

func NewDemoHistoryRepository(db *gorm.DB) DemoHistoryRepositoryInterface {
	return &demoHistoryRepository{db: db}
}

// Save writes the whole history in one database transaction
func (r *demoHistoryRepository) Save(ctx context.Context, history *models.DemoHistory) (models.DemoHistoryStats, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(history.Categories) > 0 {
			if err := tx.CreateInBatches(&history.Categories, demoHistoryBatchSize).Error; err != nil {
				return fmt.Errorf("failed to create categories: %w", err)
			}
		}
		if len(history.Transactions) > 0 {
			if err := tx.Omit("Category").CreateInBatches(&history.Transactions, demoHistoryBatchSize).Error; err != nil {
				return fmt.Errorf("failed to create transactions: %w", err)
			}
		}
		if len(history.Budgets) > 0 {
			if err := tx.Omit("Category").CreateInBatches(&history.Budgets, demoHistoryBatchSize).Error; err != nil {
				return fmt.Errorf("failed to create budgets: %w", err)
			}
		}
		if len(history.Payments) > 0 {
			if err := tx.CreateInBatches(&history.Payments, demoHistoryBatchSize).Error; err != nil {
				return fmt.Errorf("failed to create scheduled payments: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.DemoHistoryStats{}, fmt.Errorf("failed to save demo history: %w", err)
	}
	return history.Stats(), nil
}

// Clear removes every finance row of the user. Notification settings and history are kept.
func (r *demoHistoryRepository) Clear(ctx context.Context, userID uuid.UUID) (models.DemoHistoryStats, error) {
	var stats models.DemoHistoryStats
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			model interface{}
			count *int64
		}{
			{&models.Budget{}, &stats.Budgets},
			{&models.Transaction{}, &stats.Transactions},
			{&models.ScheduledPayment{}, &stats.Payments},
			{&models.Category{}, &stats.Categories},
		}
		for _, step := range steps {
			result := tx.Where("user_id = ?", userID).Delete(step.model)
			if result.Error != nil {
				return result.Error
			}
			*step.count = result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return models.DemoHistoryStats{}, fmt.Errorf("failed to clear demo history: %w", err)
	}
	return stats, nil
}
