package services

import (
	"context"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

// Clock supplies "now" to the detection services so tests can pin it
type Clock func() time.Time

// SpendingAnomalyServiceInterface compares current-month spending with the user's own history
type SpendingAnomalyServiceInterface interface {
	AnalyzeSpendingPatterns(ctx context.Context, userID uuid.UUID) ([]models.SpendingPattern, error)
	DetectAnomalies(ctx context.Context, userID uuid.UUID) ([]models.Alert, error)
}

// BudgetAlertServiceInterface evaluates budgets against current-month spend
type BudgetAlertServiceInterface interface {
	DetectBudgetAlerts(ctx context.Context, userID uuid.UUID) ([]models.Alert, error)
	// ForecastBudget returns repositories.ErrBudgetNotFound when the budget belongs to another user
	ForecastBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.BudgetForecast, error)
	GetBudgetSummary(ctx context.Context, userID uuid.UUID) (*models.BudgetSummary, error)
}

// PaymentReminderServiceInterface reminds about scheduled payments due within a week
type PaymentReminderServiceInterface interface {
	DetectPaymentAlerts(ctx context.Context, userID uuid.UUID) ([]models.Alert, error)
	GetWeeklySummary(ctx context.Context, userID uuid.UUID) (*models.PaymentWeeklySummary, error)
}

// ActivityServiceInterface watches how regularly a user records transactions
type ActivityServiceInterface interface {
	DetectInactivity(ctx context.Context, userID uuid.UUID) ([]models.Alert, error)
	DetectLowActivity(ctx context.Context, userID uuid.UUID) ([]models.Alert, error)
}

// NotificationManagerInterface aggregates every detector family into one package
type NotificationManagerInterface interface {
	GenerateNotifications(ctx context.Context, userID uuid.UUID) (*models.NotificationPackage, error)
}

// NotificationDispatcherInterface delivers a user's enabled alerts to their channels.
// Delivery failures are reported in the result, never as an error.
type NotificationDispatcherInterface interface {
	SendNotifications(ctx context.Context, userID uuid.UUID) (*models.DispatchResult, error)
}

// NotificationSettingsServiceInterface manages per-user preferences and delivery history
type NotificationSettingsServiceInterface interface {
	// GetSettings falls back to defaults when the user never saved preferences
	GetSettings(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error)
	UpdateSettings(ctx context.Context, settings *models.NotificationSettings) (*models.NotificationSettings, error)
	GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.NotificationHistory, error)
}

// NotificationChannelInterface is one delivery strategy. Enabled decides from the
// user's settings whether the channel applies; Deliver sends every alert at once.
type NotificationChannelInterface interface {
	Name() string
	Enabled(settings *models.NotificationSettings) bool
	Deliver(ctx context.Context, settings *models.NotificationSettings, alerts []models.TitledAlert) error
}

// DemoHistoryGeneratorInterface builds a synthetic history for trying the detectors out
type DemoHistoryGeneratorInterface interface {
	Generate(userID uuid.UUID, opts models.DemoHistoryOptions) *models.DemoHistory
}

type NotificationSchedulerInterface interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context) models.SchedulerRunStats
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type NotificationLoggerInterface interface {
	LogDetectionStarted(ctx context.Context, userID uuid.UUID, detector string)
	LogDetectionCompleted(ctx context.Context, userID uuid.UUID, detector string, alertCount int, durationMs int64)
	LogDetectionFailed(ctx context.Context, userID uuid.UUID, detector string, errorMsg string)
	LogPackageGenerated(ctx context.Context, pkg *models.NotificationPackage, durationMs int64)
	LogDeliverySucceeded(ctx context.Context, userID uuid.UUID, channel string, alertCount int)
	LogDeliveryFailed(ctx context.Context, userID uuid.UUID, channel string, alertCount int, errorMsg string)
	LogDeliverySkipped(ctx context.Context, userID uuid.UUID, reason string, alertCount int)
	LogHistoryWriteFailed(ctx context.Context, userID uuid.UUID, channel string, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, channel string, oldState, newState string)
	LogSchedulerRunCompleted(ctx context.Context, stats models.SchedulerRunStats, durationMs int64)
}
