package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DeliveryStatusSent    = "sent"
	DeliveryStatusFailed  = "failed"
	DeliveryStatusSkipped = "skipped"

	ChannelNone     = "none"
	ChannelTelegram = "telegram"
)

// NotificationHistory records the outcome of one delivery attempt on one channel
type NotificationHistory struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Channel     string    `gorm:"type:varchar(32);not null" json:"channel"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status"`
	AlertCount  int       `gorm:"not null" json:"alert_count"`
	HighCount   int       `gorm:"not null" json:"high_count"`
	MediumCount int       `gorm:"not null" json:"medium_count"`
	LowCount    int       `gorm:"not null" json:"low_count"`
	Error       string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
}

func (h *NotificationHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (h *NotificationHistory) TableName() string {
	return "notification_history"
}

// ChannelOutcome is the delivery result of a single channel
type ChannelOutcome struct {
	Channel string `json:"channel"`
	Status  string `json:"status"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Error   string `json:"error,omitempty"`
}

// DispatchResult is the best-effort bookkeeping of one SendNotifications run
type DispatchResult struct {
	UserID   uuid.UUID            `json:"user_id"`
	Sent     int                  `json:"sent"`
	Failed   int                  `json:"failed"`
	Channels []ChannelOutcome     `json:"channels"`
	Package  *NotificationPackage `json:"package,omitempty"`
}

// SchedulerRunStats summarizes one scheduled pass over all users with notification settings
type SchedulerRunStats struct {
	Users        int `json:"users"`
	Succeeded    int `json:"succeeded"`
	Failed       int `json:"failed"`
	AlertsSent   int `json:"alerts_sent"`
	AlertsFailed int `json:"alerts_failed"`
}
