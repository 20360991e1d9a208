package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want error
	}{
		{"expense", Transaction{UserID: uuid.New(), Type: TransactionTypeExpense}, nil},
		{"income", Transaction{UserID: uuid.New(), Type: TransactionTypeIncome}, nil},
		{"missing user", Transaction{Type: TransactionTypeExpense}, ErrMissingUserID},
		{"bad type", Transaction{UserID: uuid.New(), Type: "transfer"}, ErrInvalidTransactionType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tx.Validate())
		})
	}
}

func TestTransaction_ToRecord(t *testing.T) {
	categoryID := uuid.New()
	occurred := time.Date(2026, 10, 3, 12, 0, 0, 0, time.UTC)

	tx := Transaction{
		ID:         uuid.New(),
		CategoryID: &categoryID,
		Amount:     150000,
		Type:       TransactionTypeExpense,
		OccurredAt: occurred,
		Category:   &Category{ID: categoryID, Name: "Продукты"},
	}
	record := tx.ToRecord()

	assert.Equal(t, tx.ID, record.ID)
	assert.Equal(t, categoryID, record.CategoryID)
	assert.Equal(t, "Продукты", record.CategoryName)
	assert.Equal(t, int64(150000), record.Amount)
	assert.Equal(t, occurred, record.OccurredAt)
	assert.True(t, tx.IsExpense())
}

func TestTransaction_ToRecordUncategorized(t *testing.T) {
	tx := Transaction{Type: TransactionTypeIncome, Amount: 1}
	record := tx.ToRecord()

	assert.Equal(t, uuid.Nil, record.CategoryID)
	assert.Equal(t, UncategorizedName, record.CategoryName)
	assert.False(t, tx.IsExpense())
}

func TestBudget_ToRecordFallsBackToCategoryName(t *testing.T) {
	budget := Budget{
		ID:          uuid.New(),
		CategoryID:  uuid.New(),
		AmountLimit: 1000000,
		Category:    &Category{Name: "Кафе и рестораны"},
	}
	record := budget.ToRecord()

	assert.Equal(t, "Кафе и рестораны", record.Name)
	assert.Equal(t, "Кафе и рестораны", record.CategoryName)

	budget.Name = "Обеды"
	assert.Equal(t, "Обеды", budget.ToRecord().Name)
}
