package services

import (
	"context"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

// Detector names used in logs and metric labels
const (
	DetectorSpending    = "spending"
	DetectorBudget      = "budget"
	DetectorPayment     = "payment"
	DetectorInactivity  = "inactivity"
	DetectorLowActivity = "low_activity"
)

// detectionRecorder wraps one detector run with logging and metrics
type detectionRecorder struct {
	metrics MetricsRecorderInterface
	logger  NotificationLoggerInterface
}

func (r detectionRecorder) run(ctx context.Context, userID uuid.UUID, detector string, detect func() ([]models.Alert, error)) ([]models.Alert, error) {
	startTime := time.Now()
	r.logger.LogDetectionStarted(ctx, userID, detector)

	alerts, err := detect()
	if err != nil {
		r.metrics.IncrementCounter(MetricDetectionFailed, map[string]string{
			"detector": detector,
		})
		r.logger.LogDetectionFailed(ctx, userID, detector, err.Error())
		return nil, err
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	duration := time.Since(startTime)
	r.metrics.RecordProcessingTime(DetectionDurationMetric(detector), duration)
	for _, alert := range alerts {
		r.metrics.IncrementCounter(MetricAlertsGenerated, map[string]string{
			"type":     string(alert.Type),
			"severity": string(alert.Severity),
		})
	}
	r.logger.LogDetectionCompleted(ctx, userID, detector, len(alerts), duration.Milliseconds())

	return alerts, nil
}

func clockOrNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}
