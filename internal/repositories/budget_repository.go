package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.BudgetRecord, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	records := make([]models.BudgetRecord, 0, len(budgets))
	for i := range budgets {
		records = append(records, budgets[i].ToRecord())
	}
	return records, nil
}
