package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSettingsNotFound = errors.New("notification settings not found")
)

type notificationSettingsRepository struct {
	db *gorm.DB
}

func NewNotificationSettingsRepository(db *gorm.DB) NotificationSettingsRepositoryInterface {
	return &notificationSettingsRepository{db: db}
}

func (r *notificationSettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	return &settings, nil
}

// Upsert inserts the row or overwrites every column of an existing one
func (r *notificationSettingsRepository) Upsert(ctx context.Context, settings *models.NotificationSettings) error {
	if settings.UserID == uuid.Nil {
		return models.ErrMissingUserID
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"overspend_alerts",
				"missing_transaction_reminders",
				"upcoming_payment_reminders",
				"budget_warnings",
				"telegram_enabled",
				"telegram_chat_id",
				"updated_at",
			}),
		}).
		Create(settings).Error; err != nil {
		return fmt.Errorf("failed to save notification settings: %w", err)
	}
	return nil
}

func (r *notificationSettingsRepository) ListUserIDs(ctx context.Context, afterID uuid.UUID, limit int) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	query := r.db.WithContext(ctx).
		Model(&models.NotificationSettings{}).
		Order("user_id ASC").
		Limit(limit)
	if afterID != uuid.Nil {
		query = query.Where("user_id > ?", afterID)
	}
	if err := query.Pluck("user_id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list users with notification settings: %w", err)
	}
	return userIDs, nil
}
