package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettings holds a user's per-family toggles and channel configuration.
// Boolean columns carry no gorm defaults so that false values survive inserts.
type NotificationSettings struct {
	UserID                      uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	OverspendAlerts             bool      `gorm:"not null" json:"overspend_alerts"`
	MissingTransactionReminders bool      `gorm:"not null" json:"missing_transaction_reminders"`
	UpcomingPaymentReminders    bool      `gorm:"not null" json:"upcoming_payment_reminders"`
	BudgetWarnings              bool      `gorm:"not null" json:"budget_warnings"`
	TelegramEnabled             bool      `gorm:"not null" json:"telegram_enabled"`
	TelegramChatID              string    `gorm:"type:varchar(64)" json:"telegram_chat_id,omitempty"`
	CreatedAt                   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt                   time.Time `gorm:"not null" json:"updated_at"`
}

func (s *NotificationSettings) TableName() string {
	return "notification_settings"
}

// DefaultNotificationSettings is used when a user has no settings row:
// every family enabled, no delivery channel configured
func DefaultNotificationSettings(userID uuid.UUID) *NotificationSettings {
	return &NotificationSettings{
		UserID:                      userID,
		OverspendAlerts:             true,
		MissingTransactionReminders: true,
		UpcomingPaymentReminders:    true,
		BudgetWarnings:              true,
	}
}

// FamilyEnabled reports whether alerts of the family should be dispatched
func (s *NotificationSettings) FamilyEnabled(family AlertFamily) bool {
	switch family {
	case AlertFamilySpending:
		return s.OverspendAlerts
	case AlertFamilyActivity:
		return s.MissingTransactionReminders
	case AlertFamilyPayment:
		return s.UpcomingPaymentReminders
	case AlertFamilyBudget:
		return s.BudgetWarnings
	default:
		return false
	}
}

// TelegramConfigured reports whether Telegram delivery is switched on and has a target chat
func (s *NotificationSettings) TelegramConfigured() bool {
	return s.TelegramEnabled && s.TelegramChatID != ""
}
