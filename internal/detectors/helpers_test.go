package detectors

import (
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

type testCategory struct {
	id   uuid.UUID
	name string
}

func newCategory(name string) testCategory {
	return testCategory{id: uuid.New(), name: name}
}

var uncategorized = testCategory{id: uuid.Nil, name: models.UncategorizedName}

func expense(category testCategory, amount int64, at time.Time) models.TransactionRecord {
	return models.TransactionRecord{
		ID:           uuid.New(),
		OccurredAt:   at,
		Amount:       amount,
		Type:         models.TransactionTypeExpense,
		CategoryID:   category.id,
		CategoryName: category.name,
	}
}

func income(category testCategory, amount int64, at time.Time) models.TransactionRecord {
	record := expense(category, amount, at)
	record.Type = models.TransactionTypeIncome
	return record
}

// inMonth returns a timestamp on the given day of the month offset from testNow's month
func inMonth(monthsAgo, day int) time.Time {
	return time.Date(testNow.Year(), testNow.Month()-time.Month(monthsAgo), day, 12, 0, 0, 0, time.UTC)
}

func alertsOfType(alerts []models.Alert, alertType models.AlertType) []models.Alert {
	var out []models.Alert
	for _, alert := range alerts {
		if alert.Type == alertType {
			out = append(out, alert)
		}
	}
	return out
}

func severityRanks(alerts []models.Alert) []int {
	ranks := make([]int, 0, len(alerts))
	for _, alert := range alerts {
		ranks = append(ranks, alert.Severity.Rank())
	}
	return ranks
}
