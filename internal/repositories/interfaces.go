package repositories

import (
	"context"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the read contract the detectors need over transactions
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	// GetExpensesInRange returns expense records with from <= occurred_at <= to, oldest first
	GetExpensesInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TransactionRecord, error)
	// GetInRange returns records of any type with from <= occurred_at <= to, newest first
	GetInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TransactionRecord, error)
	// GetLatest returns ErrTransactionNotFound when the user has no transactions at all
	GetLatest(ctx context.Context, userID uuid.UUID) (*models.TransactionRecord, error)
	CountInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget lookups
type BudgetRepositoryInterface interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.BudgetRecord, error)
}

// ScheduledPaymentRepositoryInterface defines the contract for scheduled payment lookups
type ScheduledPaymentRepositoryInterface interface {
	Create(ctx context.Context, payment *models.ScheduledPayment) error
	// GetDueBefore returns payments with next_date <= until, overdue ones included, soonest first
	GetDueBefore(ctx context.Context, userID uuid.UUID, until time.Time) ([]models.PaymentRecord, error)
}

// NotificationSettingsRepositoryInterface defines the contract for per-user notification preferences
type NotificationSettingsRepositoryInterface interface {
	// GetByUserID returns ErrSettingsNotFound when the user never saved preferences
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error)
	Upsert(ctx context.Context, settings *models.NotificationSettings) error
	// ListUserIDs pages through users with a settings row in id order, starting after afterID
	ListUserIDs(ctx context.Context, afterID uuid.UUID, limit int) ([]uuid.UUID, error)
}

// NotificationHistoryRepositoryInterface defines the contract for the delivery history store
type NotificationHistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *models.NotificationHistory) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.NotificationHistory, error)
}

// DemoHistoryRepositoryInterface writes and removes generated development data
type DemoHistoryRepositoryInterface interface {
	Save(ctx context.Context, history *models.DemoHistory) (models.DemoHistoryStats, error)
	Clear(ctx context.Context, userID uuid.UUID) (models.DemoHistoryStats, error)
}
