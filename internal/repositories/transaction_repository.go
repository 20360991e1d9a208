package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetExpensesInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TransactionRecord, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND type = ? AND occurred_at >= ? AND occurred_at <= ?",
			userID, models.TransactionTypeExpense, from.UTC(), to.UTC()).
		Order("occurred_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return toTransactionRecords(transactions), nil
}

func (r *transactionRepository) GetInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.TransactionRecord, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, from.UTC(), to.UTC()).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return toTransactionRecords(transactions), nil
}

func (r *transactionRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*models.TransactionRecord, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get latest transaction: %w", err)
	}
	record := transaction.ToRecord()
	return &record, nil
}

func (r *transactionRepository) CountInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, from.UTC(), to.UTC()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func toTransactionRecords(transactions []models.Transaction) []models.TransactionRecord {
	records := make([]models.TransactionRecord, 0, len(transactions))
	for i := range transactions {
		records = append(records, transactions[i].ToRecord())
	}
	return records
}
