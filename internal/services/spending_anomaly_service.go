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

type spendingAnomalyService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	recorder        detectionRecorder
	clock           Clock
}

func NewSpendingAnomalyService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger NotificationLoggerInterface,
	clock Clock,
) SpendingAnomalyServiceInterface {
	return &spendingAnomalyService{
		transactionRepo: transactionRepo,
		recorder:        detectionRecorder{metrics: metrics, logger: logger},
		clock:           clockOrNow(clock),
	}
}

func (s *spendingAnomalyService) AnalyzeSpendingPatterns(ctx context.Context, userID uuid.UUID) ([]models.SpendingPattern, error) {
	now := s.clock()
	expenses, err := s.expenseSnapshot(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	patterns := detectors.AnalyzeSpendingPatterns(now, expenses)
	if patterns == nil {
		patterns = []models.SpendingPattern{}
	}
	return patterns, nil
}

func (s *spendingAnomalyService) DetectAnomalies(ctx context.Context, userID uuid.UUID) ([]models.Alert, error) {
	return s.recorder.run(ctx, userID, DetectorSpending, func() ([]models.Alert, error) {
		now := s.clock()
		expenses, err := s.expenseSnapshot(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		return detectors.DetectSpendingAnomalies(now, expenses), nil
	})
}

// expenseSnapshot reads six months of expenses in a single query
func (s *spendingAnomalyService) expenseSnapshot(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.TransactionRecord, error) {
	from := now.AddDate(0, -detectors.SpendingHistoryMonths, 0)
	expenses, err := s.transactionRepo.GetExpensesInRange(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load spending history: %w", err)
	}
	return expenses, nil
}
