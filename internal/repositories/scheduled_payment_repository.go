package repositories

import (
	"context"
	"fmt"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduledPaymentRepository struct {
	db *gorm.DB
}

func NewScheduledPaymentRepository(db *gorm.DB) ScheduledPaymentRepositoryInterface {
	return &scheduledPaymentRepository{db: db}
}

func (r *scheduledPaymentRepository) Create(ctx context.Context, payment *models.ScheduledPayment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create scheduled payment: %w", err)
	}
	return nil
}

func (r *scheduledPaymentRepository) GetDueBefore(ctx context.Context, userID uuid.UUID, until time.Time) ([]models.PaymentRecord, error) {
	var payments []models.ScheduledPayment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND next_date <= ?", userID, until.UTC()).
		Order("next_date ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get scheduled payments: %w", err)
	}

	records := make([]models.PaymentRecord, 0, len(payments))
	for i := range payments {
		records = append(records, payments[i].ToRecord())
	}
	return records, nil
}
