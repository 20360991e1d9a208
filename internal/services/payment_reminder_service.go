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

type paymentReminderService struct {
	paymentRepo repositories.ScheduledPaymentRepositoryInterface
	recorder    detectionRecorder
	clock       Clock
}

func NewPaymentReminderService(
	paymentRepo repositories.ScheduledPaymentRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger NotificationLoggerInterface,
	clock Clock,
) PaymentReminderServiceInterface {
	return &paymentReminderService{
		paymentRepo: paymentRepo,
		recorder:    detectionRecorder{metrics: metrics, logger: logger},
		clock:       clockOrNow(clock),
	}
}

func (s *paymentReminderService) DetectPaymentAlerts(ctx context.Context, userID uuid.UUID) ([]models.Alert, error) {
	return s.recorder.run(ctx, userID, DetectorPayment, func() ([]models.Alert, error) {
		now := s.clock()
		payments, err := s.duePayments(ctx, userID, now)
		if err != nil {
			return nil, err
		}
		return detectors.DetectPaymentAlerts(now, payments), nil
	})
}

func (s *paymentReminderService) GetWeeklySummary(ctx context.Context, userID uuid.UUID) (*models.PaymentWeeklySummary, error) {
	now := s.clock()
	payments, err := s.duePayments(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	summary := detectors.SummarizeWeeklyPayments(now, payments)
	summary.UserID = userID
	return &summary, nil
}

// duePayments reads payments due up to the end of the last lookahead day, overdue ones included
func (s *paymentReminderService) duePayments(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.PaymentRecord, error) {
	until := detectors.StartOfDay(now).AddDate(0, 0, detectors.PaymentLookaheadDays+1).Add(-time.Nanosecond)
	payments, err := s.paymentRepo.GetDueBefore(ctx, userID, until)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled payments: %w", err)
	}
	return payments, nil
}
