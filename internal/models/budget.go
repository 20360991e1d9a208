package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetCategoryRequired = errors.New("budget category is required")
	ErrInvalidBudgetLimit     = errors.New("budget limit must not be negative")
)

// Budget is a monthly spending limit for one category
type Budget struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Name        string    `gorm:"type:varchar(100)" json:"name,omitempty"`
	AmountLimit int64     `gorm:"not null" json:"amount_limit"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if b.CategoryID == uuid.Nil {
		return ErrBudgetCategoryRequired
	}
	if b.AmountLimit < 0 {
		return ErrInvalidBudgetLimit
	}
	return nil
}

func (b *Budget) TableName() string {
	return "budgets"
}

// ToRecord builds the detector view of the budget
func (b *Budget) ToRecord() BudgetRecord {
	record := BudgetRecord{
		ID:          b.ID,
		Name:        b.Name,
		CategoryID:  b.CategoryID,
		AmountLimit: b.AmountLimit,
	}
	if b.Category != nil {
		record.CategoryName = b.Category.Name
	}
	if record.Name == "" {
		record.Name = record.CategoryName
	}
	return record
}

// BudgetRecord is the immutable snapshot of a budget handed to detectors
type BudgetRecord struct {
	ID           uuid.UUID
	Name         string
	CategoryID   uuid.UUID
	CategoryName string
	AmountLimit  int64
}

// BudgetUsage is the spend of one budget within the current month
type BudgetUsage struct {
	BudgetID     uuid.UUID `json:"budget_id"`
	Name         string    `json:"name"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Limit        int64     `json:"limit"`
	Spent        int64     `json:"spent"`
	Remaining    int64     `json:"remaining"`
	Percentage   float64   `json:"percentage"`
}

// BudgetForecast projects month-end spend for a single budget
type BudgetForecast struct {
	BudgetUsage
	DailyRate          float64   `json:"daily_rate"`
	DaysElapsed        int       `json:"days_elapsed"`
	DaysRemaining      int       `json:"days_remaining"`
	DaysUntilDepleted  int       `json:"days_until_depleted"`
	ProjectedSpend     int64     `json:"projected_spend"`
	ProjectedOverspend int64     `json:"projected_overspend"`
	WillExceed         bool      `json:"will_exceed"`
	GeneratedAt        time.Time `json:"generated_at"`
}

// BudgetSummary aggregates all budgets of a user for dashboard display
type BudgetSummary struct {
	UserID       uuid.UUID     `json:"user_id"`
	TotalBudgets int           `json:"total_budgets"`
	OnTrack      int           `json:"on_track"`
	AtRisk       int           `json:"at_risk"`
	Exceeded     int           `json:"exceeded"`
	TotalLimit   int64         `json:"total_limit"`
	TotalSpent   int64         `json:"total_spent"`
	Percentage   float64       `json:"percentage"`
	Budgets      []BudgetUsage `json:"budgets"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
