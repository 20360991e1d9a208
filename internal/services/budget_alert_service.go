package services

import (
	"context"
	"fmt"
	"time"

	"finance-alerts/internal/detectors"
	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories"

	"github.com/google/uuid"
)

type budgetAlertService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	recorder        detectionRecorder
	clock           Clock
}

func NewBudgetAlertService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger NotificationLoggerInterface,
	clock Clock,
) BudgetAlertServiceInterface {
	return &budgetAlertService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		recorder:        detectionRecorder{metrics: metrics, logger: logger},
		clock:           clockOrNow(clock),
	}
}

func (s *budgetAlertService) DetectBudgetAlerts(ctx context.Context, userID uuid.UUID) ([]models.Alert, error) {
	return s.recorder.run(ctx, userID, DetectorBudget, func() ([]models.Alert, error) {
		now := s.clock()
		budgets, err := s.budgetRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load budgets: %w", err)
		}
		if len(budgets) == 0 {
			return nil, nil
		}

		expenses, err := s.monthExpenses(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		return detectors.DetectBudgetAlerts(now, budgets, expenses), nil
	})
}

func (s *budgetAlertService) ForecastBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.BudgetForecast, error) {
	now := s.clock()
	budget, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, repositories.ErrBudgetNotFound
	}

	expenses, err := s.monthExpenses(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	forecast := detectors.ForecastBudget(now, budget.ToRecord(), expenses)
	return &forecast, nil
}

func (s *budgetAlertService) GetBudgetSummary(ctx context.Context, userID uuid.UUID) (*models.BudgetSummary, error) {
	now := s.clock()
	budgets, err := s.budgetRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	var expenses []models.TransactionRecord
	if len(budgets) > 0 {
		if expenses, err = s.monthExpenses(ctx, userID, now); err != nil {
			return nil, err
		}
	}

	summary := detectors.SummarizeBudgets(now, userID, budgets, expenses)
	return &summary, nil
}

func (s *budgetAlertService) monthExpenses(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.TransactionRecord, error) {
	expenses, err := s.transactionRepo.GetExpensesInRange(ctx, userID, detectors.StartOfMonth(now), detectors.EndOfMonth(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load current month expenses: %w", err)
	}
	return expenses, nil
}
