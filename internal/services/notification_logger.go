package services

import (
	"context"
	"log/slog"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID tags ctx so notification events can be joined to the request or run that caused them
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

type NotificationLogger struct {
	logger *slog.Logger
}

func NewNotificationLogger(logger *slog.Logger) NotificationLoggerInterface {
	return &NotificationLogger{
		logger: logger,
	}
}

func (nl *NotificationLogger) LogDetectionStarted(ctx context.Context, userID uuid.UUID, detector string) {
	nl.logger.DebugContext(ctx, "detection started",
		slog.String("event_type", "detection_started"),
		slog.String("user_id", userID.String()),
		slog.String("detector", detector),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogDetectionCompleted(ctx context.Context, userID uuid.UUID, detector string, alertCount int, durationMs int64) {
	nl.logger.InfoContext(ctx, "detection completed",
		slog.String("event_type", "detection_completed"),
		slog.String("user_id", userID.String()),
		slog.String("detector", detector),
		slog.Int("alert_count", alertCount),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogDetectionFailed(ctx context.Context, userID uuid.UUID, detector string, errorMsg string) {
	nl.logger.ErrorContext(ctx, "detection failed",
		slog.String("event_type", "detection_failed"),
		slog.String("user_id", userID.String()),
		slog.String("detector", detector),
		slog.String("error", errorMsg),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogPackageGenerated(ctx context.Context, pkg *models.NotificationPackage, durationMs int64) {
	nl.logger.InfoContext(ctx, "notification package generated",
		slog.String("event_type", "package_generated"),
		slog.String("user_id", pkg.UserID.String()),
		slog.Int("total", pkg.Summary.Total),
		slog.Int("high", pkg.Summary.High),
		slog.Int("medium", pkg.Summary.Medium),
		slog.Int("low", pkg.Summary.Low),
		slog.Int64("duration_ms", durationMs),
		slog.Time("generated_at", pkg.GeneratedAt),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogDeliverySucceeded(ctx context.Context, userID uuid.UUID, channel string, alertCount int) {
	nl.logger.InfoContext(ctx, "notifications delivered",
		slog.String("event_type", "delivery_succeeded"),
		slog.String("user_id", userID.String()),
		slog.String("channel", channel),
		slog.Int("alert_count", alertCount),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogDeliveryFailed(ctx context.Context, userID uuid.UUID, channel string, alertCount int, errorMsg string) {
	nl.logger.WarnContext(ctx, "notification delivery failed",
		slog.String("event_type", "delivery_failed"),
		slog.String("user_id", userID.String()),
		slog.String("channel", channel),
		slog.Int("alert_count", alertCount),
		slog.String("error", errorMsg),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogDeliverySkipped(ctx context.Context, userID uuid.UUID, reason string, alertCount int) {
	nl.logger.InfoContext(ctx, "notification delivery skipped",
		slog.String("event_type", "delivery_skipped"),
		slog.String("user_id", userID.String()),
		slog.String("reason", reason),
		slog.Int("alert_count", alertCount),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogHistoryWriteFailed(ctx context.Context, userID uuid.UUID, channel string, errorMsg string) {
	nl.logger.WarnContext(ctx, "failed to record notification history",
		slog.String("event_type", "history_write_failed"),
		slog.String("user_id", userID.String()),
		slog.String("channel", channel),
		slog.String("error", errorMsg),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogCircuitBreakerStateChange(ctx context.Context, channel string, oldState, newState string) {
	nl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("channel", channel),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (nl *NotificationLogger) LogSchedulerRunCompleted(ctx context.Context, stats models.SchedulerRunStats, durationMs int64) {
	nl.logger.InfoContext(ctx, "notification run completed",
		slog.String("event_type", "scheduler_run_completed"),
		slog.Int("users", stats.Users),
		slog.Int("succeeded", stats.Succeeded),
		slog.Int("failed", stats.Failed),
		slog.Int("alerts_sent", stats.AlertsSent),
		slog.Int("alerts_failed", stats.AlertsFailed),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

// CorrelationIDFromContext returns the id set by WithCorrelationID, or ""
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
