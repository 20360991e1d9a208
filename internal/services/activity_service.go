package services

import (
	"context"
	"errors"
	"fmt"

	"finance-alerts/internal/detectors"
	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories"

	"github.com/google/uuid"
)

type activityService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	recorder        detectionRecorder
	clock           Clock
}

func NewActivityService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger NotificationLoggerInterface,
	clock Clock,
) ActivityServiceInterface {
	return &activityService{
		transactionRepo: transactionRepo,
		recorder:        detectionRecorder{metrics: metrics, logger: logger},
		clock:           clockOrNow(clock),
	}
}

func (s *activityService) DetectInactivity(ctx context.Context, userID uuid.UUID) ([]models.Alert, error) {
	return s.recorder.run(ctx, userID, DetectorInactivity, func() ([]models.Alert, error) {
		now := s.clock()
		last, err := s.transactionRepo.GetLatest(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return detectors.DetectInactivity(now, nil, nil), nil
			}
			return nil, fmt.Errorf("failed to load latest transaction: %w", err)
		}

		if !detectors.NeedsCadence(now, last) {
			return nil, nil
		}

		from := now.AddDate(0, 0, -detectors.InactivityLookbackDays)
		recent, err := s.transactionRepo.GetInRange(ctx, userID, from, now)
		if err != nil {
			return nil, fmt.Errorf("failed to load recent transactions: %w", err)
		}
		return detectors.DetectInactivity(now, last, recent), nil
	})
}

func (s *activityService) DetectLowActivity(ctx context.Context, userID uuid.UUID) ([]models.Alert, error) {
	return s.recorder.run(ctx, userID, DetectorLowActivity, func() ([]models.Alert, error) {
		now := s.clock()
		recent, err := s.transactionRepo.GetInRange(ctx, userID, now.AddDate(0, -2, 0), now)
		if err != nil {
			return nil, fmt.Errorf("failed to load recent transactions: %w", err)
		}

		previous, err := s.transactionRepo.CountInRange(ctx, userID,
			detectors.StartOfPreviousMonth(now), detectors.EndOfPreviousMonth(now))
		if err != nil {
			return nil, fmt.Errorf("failed to count previous month transactions: %w", err)
		}
		return detectors.DetectLowActivity(now, recent, previous), nil
	})
}
