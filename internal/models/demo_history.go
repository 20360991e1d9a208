package models

import "github.com/google/uuid"

// DemoHistory is a generated set of rows for one user, used to exercise the
// detectors in development
type DemoHistory struct {
	UserID       uuid.UUID
	Categories   []Category
	Transactions []Transaction
	Budgets      []Budget
	Payments     []ScheduledPayment
}

// DemoHistoryOptions shapes the generated history
type DemoHistoryOptions struct {
	// Months of history before the current month, clamped to 1..12
	Months int
	// Spike inflates the first spending category in the current month
	Spike bool
	// QuietDays leaves the most recent days without any transaction
	QuietDays int
}

// DemoHistoryStats counts what was written or removed for a user
type DemoHistoryStats struct {
	Categories   int64 `json:"categories"`
	Transactions int64 `json:"transactions"`
	Budgets      int64 `json:"budgets"`
	Payments     int64 `json:"payments"`
}

// Stats counts the rows in the history
func (h *DemoHistory) Stats() DemoHistoryStats {
	return DemoHistoryStats{
		Categories:   int64(len(h.Categories)),
		Transactions: int64(len(h.Transactions)),
		Budgets:      int64(len(h.Budgets)),
		Payments:     int64(len(h.Payments)),
	}
}
