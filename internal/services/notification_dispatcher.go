package services

import (
	"context"
	"errors"
	"fmt"

	"finance-alerts/internal/models"
	"finance-alerts/internal/repositories"

	"github.com/google/uuid"
)

// ErrRecipientRejected marks a delivery the channel's transport accepted but the
// recipient refused: a blocked bot, a deleted or unknown chat. Channels wrap it so
// the dispatcher keeps such failures out of the channel-wide breaker.
var ErrRecipientRejected = errors.New("recipient rejected the message")

// DispatcherConfig tunes channel breakers and history recording
type DispatcherConfig struct {
	Breaker       CircuitBreakerConfig
	RecordHistory bool
}

type notificationDispatcher struct {
	manager      NotificationManagerInterface
	settingsRepo repositories.NotificationSettingsRepositoryInterface
	historyRepo  repositories.NotificationHistoryRepositoryInterface
	channels     []NotificationChannelInterface
	breakers     map[string]CircuitBreakerInterface
	config       DispatcherConfig
	metrics      MetricsRecorderInterface
	logger       NotificationLoggerInterface
}

func NewNotificationDispatcher(
	manager NotificationManagerInterface,
	settingsRepo repositories.NotificationSettingsRepositoryInterface,
	historyRepo repositories.NotificationHistoryRepositoryInterface,
	channels []NotificationChannelInterface,
	config DispatcherConfig,
	metrics MetricsRecorderInterface,
	logger NotificationLoggerInterface,
) NotificationDispatcherInterface {
	d := &notificationDispatcher{
		manager:      manager,
		settingsRepo: settingsRepo,
		historyRepo:  historyRepo,
		channels:     channels,
		breakers:     make(map[string]CircuitBreakerInterface, len(channels)),
		config:       config,
		metrics:      metrics,
		logger:       logger,
	}
	for _, channel := range channels {
		d.breakers[channel.Name()] = NewCircuitBreaker(channel.Name(), config.Breaker, d.onBreakerStateChange)
	}
	return d
}

func (d *notificationDispatcher) onBreakerStateChange(channel string, from, to models.CircuitBreakerState) {
	d.metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{
		"channel": channel,
	})
	d.logger.LogCircuitBreakerStateChange(context.Background(), channel, from.String(), to.String())
}

// SendNotifications generates the user's package and pushes the alerts of every
// enabled family to every enabled channel. Only generation and settings store
// failures are returned; delivery failures land in the result.
func (d *notificationDispatcher) SendNotifications(ctx context.Context, userID uuid.UUID) (*models.DispatchResult, error) {
	pkg, err := d.manager.GenerateNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings, err := d.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &models.DispatchResult{
		UserID:   userID,
		Channels: []models.ChannelOutcome{},
		Package:  pkg,
	}

	alertsToSend := alertsForDelivery(pkg, settings)
	if len(alertsToSend) == 0 {
		d.logger.LogDeliverySkipped(ctx, userID, "no alerts in enabled families", 0)
		return result, nil
	}

	delivered := false
	for _, channel := range d.channels {
		if !channel.Enabled(settings) {
			continue
		}
		delivered = true
		d.applyOutcome(ctx, result, alertsToSend, d.deliver(ctx, channel, settings, alertsToSend))
	}

	if !delivered {
		d.logger.LogDeliverySkipped(ctx, userID, "no delivery channel configured", len(alertsToSend))
		d.applyOutcome(ctx, result, alertsToSend, models.ChannelOutcome{
			Channel: models.ChannelNone,
			Status:  models.DeliveryStatusSkipped,
			Sent:    len(alertsToSend),
		})
	}

	return result, nil
}

func (d *notificationDispatcher) loadSettings(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error) {
	settings, err := d.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			return models.DefaultNotificationSettings(userID), nil
		}
		return nil, fmt.Errorf("failed to load notification settings: %w", err)
	}
	return settings, nil
}

// alertsForDelivery flattens the enabled families in dispatch order and attaches titles
func alertsForDelivery(pkg *models.NotificationPackage, settings *models.NotificationSettings) []models.TitledAlert {
	var queued []models.TitledAlert
	for _, family := range models.AllAlertFamilies() {
		if !settings.FamilyEnabled(family) {
			continue
		}
		for _, alert := range pkg.AlertsByFamily(family) {
			queued = append(queued, models.TitledAlert{
				Alert: alert,
				Title: models.AlertTitle(alert.Type),
			})
		}
	}
	return queued
}

func (d *notificationDispatcher) deliver(ctx context.Context, channel NotificationChannelInterface, settings *models.NotificationSettings, alerts []models.TitledAlert) models.ChannelOutcome {
	name := channel.Name()
	breaker := d.breakers[name]

	if breaker.IsOpen() {
		d.logger.LogDeliveryFailed(ctx, settings.UserID, name, len(alerts), ErrCircuitBreakerOpen.Error())
		return models.ChannelOutcome{
			Channel: name,
			Status:  models.DeliveryStatusFailed,
			Failed:  len(alerts),
			Error:   ErrCircuitBreakerOpen.Error(),
		}
	}

	if err := channel.Deliver(ctx, settings, alerts); err != nil {
		if errors.Is(err, ErrRecipientRejected) {
			// the transport answered; only this user's chat is unusable
			breaker.RecordSuccess()
		} else {
			breaker.RecordFailure()
		}
		d.logger.LogDeliveryFailed(ctx, settings.UserID, name, len(alerts), err.Error())
		return models.ChannelOutcome{
			Channel: name,
			Status:  models.DeliveryStatusFailed,
			Failed:  len(alerts),
			Error:   err.Error(),
		}
	}

	breaker.RecordSuccess()
	d.logger.LogDeliverySucceeded(ctx, settings.UserID, name, len(alerts))
	return models.ChannelOutcome{
		Channel: name,
		Status:  models.DeliveryStatusSent,
		Sent:    len(alerts),
	}
}

func (d *notificationDispatcher) applyOutcome(ctx context.Context, result *models.DispatchResult, alerts []models.TitledAlert, outcome models.ChannelOutcome) {
	result.Sent += outcome.Sent
	result.Failed += outcome.Failed
	result.Channels = append(result.Channels, outcome)

	d.metrics.IncrementCounter(MetricDispatches, map[string]string{
		"channel": outcome.Channel,
		"status":  outcome.Status,
	})
	d.metrics.RecordGauge(MetricAlertsDelivered, float64(outcome.Sent), map[string]string{
		"channel": outcome.Channel,
		"status":  models.DeliveryStatusSent,
	})
	d.metrics.RecordGauge(MetricAlertsDelivered, float64(outcome.Failed), map[string]string{
		"channel": outcome.Channel,
		"status":  models.DeliveryStatusFailed,
	})

	d.recordHistory(ctx, result.UserID, alerts, outcome)
}

// recordHistory is best effort: a failed write is logged and counted, never surfaced
func (d *notificationDispatcher) recordHistory(ctx context.Context, userID uuid.UUID, alerts []models.TitledAlert, outcome models.ChannelOutcome) {
	if !d.config.RecordHistory || d.historyRepo == nil {
		return
	}

	var summary models.AlertSummary
	for _, alert := range alerts {
		summary.Add([]models.Alert{alert.Alert})
	}

	entry := &models.NotificationHistory{
		UserID:      userID,
		Channel:     outcome.Channel,
		Status:      outcome.Status,
		AlertCount:  summary.Total,
		HighCount:   summary.High,
		MediumCount: summary.Medium,
		LowCount:    summary.Low,
		Error:       outcome.Error,
	}
	if err := d.historyRepo.Create(ctx, entry); err != nil {
		d.metrics.IncrementCounter(MetricHistoryWriteFailed, nil)
		d.logger.LogHistoryWriteFailed(ctx, userID, outcome.Channel, err.Error())
	}
}
