package repositories

import (
	"context"
	"fmt"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

type notificationHistoryRepository struct {
	db *gorm.DB
}

func NewNotificationHistoryRepository(db *gorm.DB) NotificationHistoryRepositoryInterface {
	return &notificationHistoryRepository{db: db}
}

func (r *notificationHistoryRepository) Create(ctx context.Context, entry *models.NotificationHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create notification history entry: %w", err)
	}
	return nil
}

// GetByUserID returns the most recent entries first
func (r *notificationHistoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.NotificationHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var entries []models.NotificationHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get notification history: %w", err)
	}
	return entries, nil
}
