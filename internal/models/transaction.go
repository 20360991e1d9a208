package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	// UncategorizedName labels transactions without a category.
	UncategorizedName = "Без категории"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrMissingUserID          = errors.New("user ID is required")
)

// Transaction is a single income or expense entry logged by a user.
// Amounts are stored in minor currency units (kopecks).
type Transaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Amount      int64      `gorm:"not null" json:"amount"`
	Type        string     `gorm:"type:varchar(20);not null" json:"type"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	OccurredAt  time.Time  `gorm:"not null;index" json:"occurred_at"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = time.Now()
	}
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	return nil
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// IsExpense reports whether the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// ToRecord builds the read-only detector view of the transaction.
// The Category association must be loaded for the name to be filled in.
func (t *Transaction) ToRecord() TransactionRecord {
	record := TransactionRecord{
		ID:           t.ID,
		OccurredAt:   t.OccurredAt,
		Amount:       t.Amount,
		Type:         t.Type,
		CategoryName: UncategorizedName,
	}
	if t.CategoryID != nil {
		record.CategoryID = *t.CategoryID
	}
	if t.Category != nil && t.Category.Name != "" {
		record.CategoryName = t.Category.Name
	}
	return record
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// TransactionRecord is the immutable snapshot of a transaction handed to detectors.
// CategoryID is uuid.Nil for uncategorized rows.
type TransactionRecord struct {
	ID           uuid.UUID
	OccurredAt   time.Time
	Amount       int64
	Type         string
	CategoryID   uuid.UUID
	CategoryName string
}

// Magnitude returns the absolute amount used in detector math.
func (r TransactionRecord) Magnitude() int64 {
	if r.Amount < 0 {
		return -r.Amount
	}
	return r.Amount
}

// IsExpense reports whether the record is an expense
func (r TransactionRecord) IsExpense() bool {
	return r.Type == TransactionTypeExpense
}
