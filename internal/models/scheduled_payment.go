package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentFrequencyOnce    = "once"
	PaymentFrequencyWeekly  = "weekly"
	PaymentFrequencyMonthly = "monthly"
	PaymentFrequencyYearly  = "yearly"
)

var (
	ErrPaymentNameRequired = errors.New("payment name is required")
	ErrInvalidFrequency    = errors.New("invalid payment frequency")
)

// ScheduledPayment is a recurring or one-off obligation with a due date.
// Advancing NextDate after payment happens outside of this service.
type ScheduledPayment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Amount    int64     `gorm:"not null" json:"amount"`
	NextDate  time.Time `gorm:"not null;index" json:"next_date"`
	Frequency string    `gorm:"type:varchar(20);not null" json:"frequency"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (p *ScheduledPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Frequency == "" {
		p.Frequency = PaymentFrequencyMonthly
	}
	if p.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if p.Name == "" {
		return ErrPaymentNameRequired
	}
	switch p.Frequency {
	case PaymentFrequencyOnce, PaymentFrequencyWeekly, PaymentFrequencyMonthly, PaymentFrequencyYearly:
	default:
		return ErrInvalidFrequency
	}
	return nil
}

func (p *ScheduledPayment) TableName() string {
	return "scheduled_payments"
}

func (p *ScheduledPayment) ToRecord() PaymentRecord {
	return PaymentRecord{
		ID:       p.ID,
		Name:     p.Name,
		Amount:   p.Amount,
		NextDate: p.NextDate,
	}
}

// PaymentRecord is the immutable snapshot of a scheduled payment handed to detectors
type PaymentRecord struct {
	ID       uuid.UUID
	Name     string
	Amount   int64
	NextDate time.Time
}

// PaymentWeeklySummary totals the payments due within the next week
type PaymentWeeklySummary struct {
	UserID        uuid.UUID `json:"user_id"`
	TotalAmount   int64     `json:"total_amount"`
	Count         int       `json:"count"`
	CriticalCount int       `json:"critical_count"`
	GeneratedAt   time.Time `json:"generated_at"`
}
