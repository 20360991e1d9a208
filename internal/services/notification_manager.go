package services

import (
	"context"
	"fmt"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type notificationManager struct {
	spending SpendingAnomalyServiceInterface
	budgets  BudgetAlertServiceInterface
	payments PaymentReminderServiceInterface
	activity ActivityServiceInterface
	metrics  MetricsRecorderInterface
	logger   NotificationLoggerInterface
	clock    Clock
}

func NewNotificationManager(
	spending SpendingAnomalyServiceInterface,
	budgets BudgetAlertServiceInterface,
	payments PaymentReminderServiceInterface,
	activity ActivityServiceInterface,
	metrics MetricsRecorderInterface,
	logger NotificationLoggerInterface,
	clock Clock,
) NotificationManagerInterface {
	return &notificationManager{
		spending: spending,
		budgets:  budgets,
		payments: payments,
		activity: activity,
		metrics:  metrics,
		logger:   logger,
		clock:    clockOrNow(clock),
	}
}

// GenerateNotifications runs every detector concurrently and joins their output.
// The first store failure cancels the remaining detectors and is returned.
func (m *notificationManager) GenerateNotifications(ctx context.Context, userID uuid.UUID) (*models.NotificationPackage, error) {
	startTime := time.Now()

	var spendingAlerts, inactivityAlerts, lowActivityAlerts, paymentAlerts, budgetAlerts []models.Alert

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		alerts, err := m.spending.DetectAnomalies(gctx, userID)
		spendingAlerts = alerts
		return err
	})
	g.Go(func() error {
		alerts, err := m.activity.DetectInactivity(gctx, userID)
		inactivityAlerts = alerts
		return err
	})
	g.Go(func() error {
		alerts, err := m.activity.DetectLowActivity(gctx, userID)
		lowActivityAlerts = alerts
		return err
	})
	g.Go(func() error {
		alerts, err := m.payments.DetectPaymentAlerts(gctx, userID)
		paymentAlerts = alerts
		return err
	})
	g.Go(func() error {
		alerts, err := m.budgets.DetectBudgetAlerts(gctx, userID)
		budgetAlerts = alerts
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to generate notifications: %w", err)
	}

	activityAlerts := make([]models.Alert, 0, len(inactivityAlerts)+len(lowActivityAlerts))
	activityAlerts = append(activityAlerts, inactivityAlerts...)
	activityAlerts = append(activityAlerts, lowActivityAlerts...)

	pkg := &models.NotificationPackage{
		UserID:         userID,
		SpendingAlerts: nonNilAlerts(spendingAlerts),
		ActivityAlerts: activityAlerts,
		PaymentAlerts:  nonNilAlerts(paymentAlerts),
		BudgetAlerts:   nonNilAlerts(budgetAlerts),
		GeneratedAt:    m.clock(),
	}
	for _, family := range models.AllAlertFamilies() {
		pkg.Summary.Add(pkg.AlertsByFamily(family))
	}

	duration := time.Since(startTime)
	m.metrics.RecordProcessingTime(MetricGenerateDuration, duration)
	m.logger.LogPackageGenerated(ctx, pkg, duration.Milliseconds())

	return pkg, nil
}

func nonNilAlerts(alerts []models.Alert) []models.Alert {
	if alerts == nil {
		return []models.Alert{}
	}
	return alerts
}
