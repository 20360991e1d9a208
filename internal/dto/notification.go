package dto

import (
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

// UpdateNotificationSettingsRequest is a partial update: omitted fields keep their stored value
type UpdateNotificationSettingsRequest struct {
	OverspendAlerts             *bool   `json:"overspend_alerts"`
	MissingTransactionReminders *bool   `json:"missing_transaction_reminders"`
	UpcomingPaymentReminders    *bool   `json:"upcoming_payment_reminders"`
	BudgetWarnings              *bool   `json:"budget_warnings"`
	TelegramEnabled             *bool   `json:"telegram_enabled"`
	TelegramChatID              *string `json:"telegram_chat_id" validate:"omitempty,max=64,telegram_chat_id"`
}

// ApplyTo copies the provided fields onto a copy of current
func (r *UpdateNotificationSettingsRequest) ApplyTo(current *models.NotificationSettings) *models.NotificationSettings {
	updated := *current
	if r.OverspendAlerts != nil {
		updated.OverspendAlerts = *r.OverspendAlerts
	}
	if r.MissingTransactionReminders != nil {
		updated.MissingTransactionReminders = *r.MissingTransactionReminders
	}
	if r.UpcomingPaymentReminders != nil {
		updated.UpcomingPaymentReminders = *r.UpcomingPaymentReminders
	}
	if r.BudgetWarnings != nil {
		updated.BudgetWarnings = *r.BudgetWarnings
	}
	if r.TelegramEnabled != nil {
		updated.TelegramEnabled = *r.TelegramEnabled
	}
	if r.TelegramChatID != nil {
		updated.TelegramChatID = *r.TelegramChatID
	}
	return &updated
}

// HistoryParams are the query parameters of the history listing
type HistoryParams struct {
	Limit int `query:"limit" json:"limit" validate:"omitempty,min=1,max=200"`
}

// SendNotificationsResponse is returned by the manual dispatch endpoint
type SendNotificationsResponse struct {
	UserID   uuid.UUID               `json:"user_id"`
	Sent     int                     `json:"sent"`
	Failed   int                     `json:"failed"`
	Channels []models.ChannelOutcome `json:"channels"`
	Summary  *models.AlertSummary    `json:"summary,omitempty"`
	SentAt   time.Time               `json:"sent_at"`
}

func NewSendNotificationsResponse(result *models.DispatchResult, sentAt time.Time) SendNotificationsResponse {
	response := SendNotificationsResponse{
		UserID:   result.UserID,
		Sent:     result.Sent,
		Failed:   result.Failed,
		Channels: result.Channels,
		SentAt:   sentAt,
	}
	if result.Package != nil {
		summary := result.Package.Summary
		response.Summary = &summary
	}
	return response
}
