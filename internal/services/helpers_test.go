package services

import (
	"bytes"
	"log/slog"
	"time"

	"finance-alerts/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

var testNow = time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// newBufferedLogger returns a notification logger writing JSON lines into the returned buffer
func newBufferedLogger() (*bytes.Buffer, NotificationLoggerInterface) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return buf, NewNotificationLogger(slog.New(handler))
}

func expenseRecord(categoryID uuid.UUID, categoryName string, amount int64, at time.Time) models.TransactionRecord {
	return models.TransactionRecord{
		ID:           uuid.New(),
		OccurredAt:   at,
		Amount:       amount,
		Type:         models.TransactionTypeExpense,
		CategoryID:   categoryID,
		CategoryName: categoryName,
	}
}

func randomAlert(severity models.Severity) models.Alert {
	return models.Alert{
		Type:     models.AlertTypeBudgetWarning,
		Severity: severity,
		Message:  gofakeit.Sentence(6),
	}
}

func alertsWith(severities ...models.Severity) []models.Alert {
	alerts := make([]models.Alert, 0, len(severities))
	for _, severity := range severities {
		alerts = append(alerts, randomAlert(severity))
	}
	return alerts
}
