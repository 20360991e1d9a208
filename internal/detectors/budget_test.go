package detectors

import (
	"testing"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetFor(category testCategory, limit int64) models.BudgetRecord {
	return models.BudgetRecord{
		ID:           uuid.New(),
		Name:         category.name,
		CategoryID:   category.id,
		CategoryName: category.name,
		AmountLimit:  limit,
	}
}

func TestDetectBudgetAlerts_GroceriesAt85Percent(t *testing.T) {
	groceries := newCategory("Groceries")
	budget := budgetFor(groceries, 1000000)
	expenses := []models.TransactionRecord{
		expense(groceries, 600000, inMonth(0, 2)),
		expense(groceries, 250000, inMonth(0, 9)),
	}

	alerts := DetectBudgetAlerts(testNow, []models.BudgetRecord{budget}, expenses)

	require.Len(t, alerts, 1)
	alert := alerts[0]
	assert.Equal(t, models.AlertTypeBudgetCritical, alert.Type)
	assert.Equal(t, models.SeverityMedium, alert.Severity)
	assert.Equal(t, 85.0, alert.Details["percentage"])
	assert.Equal(t, int64(150000), alert.Details["remaining"])
	assert.Equal(t, int64(850000), alert.Details["spent"])
	assert.Equal(t, int64(1000000), alert.Details["limit"])
	assert.Equal(t, budget.ID.String(), alert.Details["budget_id"])
	assert.Contains(t, alert.Message, "Groceries")
}

func TestDetectBudgetAlerts_BandBoundariesAreLowerInclusive(t *testing.T) {
	cases := []struct {
		spent     int64
		alertType models.AlertType
		severity  models.Severity
		message   string
	}{
		{spent: 499999},
		{spent: 500000, alertType: models.AlertTypeBudgetWarning, severity: models.SeverityLow},
		{spent: 799999, alertType: models.AlertTypeBudgetWarning, severity: models.SeverityLow},
		{spent: 800000, alertType: models.AlertTypeBudgetCritical, severity: models.SeverityMedium},
		{spent: 999999, alertType: models.AlertTypeBudgetCritical, severity: models.SeverityMedium},
		{spent: 1000000, alertType: models.AlertTypeBudgetExceeded, severity: models.SeverityHigh, message: "исчерпан"},
		{spent: 1199999, alertType: models.AlertTypeBudgetExceeded, severity: models.SeverityHigh, message: "исчерпан"},
		{spent: 1200000, alertType: models.AlertTypeBudgetExceeded, severity: models.SeverityHigh, message: "Перерасход"},
		{spent: 5000000, alertType: models.AlertTypeBudgetExceeded, severity: models.SeverityHigh, message: "Перерасход"},
	}

	category := newCategory("Офис")
	budget := budgetFor(category, 1000000)

	for _, tc := range cases {
		alerts := DetectBudgetAlerts(testNow, []models.BudgetRecord{budget},
			[]models.TransactionRecord{expense(category, tc.spent, inMonth(0, 5))})

		if tc.alertType == "" {
			assert.Empty(t, alerts, "spent %d", tc.spent)
			continue
		}
		require.Len(t, alerts, 1, "spent %d", tc.spent)
		assert.Equal(t, tc.alertType, alerts[0].Type, "spent %d", tc.spent)
		assert.Equal(t, tc.severity, alerts[0].Severity, "spent %d", tc.spent)
		assert.NotEmpty(t, alerts[0].Recommendation)
		if tc.message != "" {
			assert.Contains(t, alerts[0].Message, tc.message, "spent %d", tc.spent)
		}
	}
}

func TestDetectBudgetAlerts_RecommendationDiffersPerBand(t *testing.T) {
	seen := map[string]bool{}
	for _, pct := range []float64{50, 80, 100, 120} {
		seen[budgetRecommendation(pct)] = true
	}
	assert.Len(t, seen, 4)
}

func TestDetectBudgetAlerts_OnlyCurrentMonthExpensesOfTheCategory(t *testing.T) {
	groceries := newCategory("Продукты")
	transport := newCategory("Транспорт")
	budget := budgetFor(groceries, 100000)

	expenses := []models.TransactionRecord{
		expense(groceries, 40000, inMonth(0, 1)),
		expense(groceries, 90000, time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)),
		income(groceries, 90000, inMonth(0, 3)),
		expense(transport, 90000, inMonth(0, 3)),
		expense(groceries, 15000, time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)),
	}

	usage := BudgetUsageFor(testNow, budget, expenses)
	assert.Equal(t, int64(55000), usage.Spent)
	assert.Equal(t, int64(45000), usage.Remaining)
	assert.Equal(t, 55.0, usage.Percentage)

	alerts := DetectBudgetAlerts(testNow, []models.BudgetRecord{budget}, expenses)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeBudgetWarning, alerts[0].Type)
}

func TestDetectBudgetAlerts_ZeroLimitNeverAlerts(t *testing.T) {
	category := newCategory("Подписки")
	budget := budgetFor(category, 0)

	alerts := DetectBudgetAlerts(testNow, []models.BudgetRecord{budget},
		[]models.TransactionRecord{expense(category, 100000, inMonth(0, 2))})

	assert.Empty(t, alerts)
	assert.Zero(t, BudgetUsageFor(testNow, budget, nil).Percentage)
}

func TestDetectBudgetAlerts_SortedBySeverityThenPercentage(t *testing.T) {
	a, b, c, d := newCategory("A"), newCategory("B"), newCategory("C"), newCategory("D")
	budgets := []models.BudgetRecord{
		budgetFor(a, 100000),
		budgetFor(b, 100000),
		budgetFor(c, 100000),
		budgetFor(d, 100000),
	}
	expenses := []models.TransactionRecord{
		expense(a, 60000, inMonth(0, 1)),
		expense(b, 85000, inMonth(0, 1)),
		expense(c, 95000, inMonth(0, 1)),
		expense(d, 130000, inMonth(0, 1)),
	}

	alerts := DetectBudgetAlerts(testNow, budgets, expenses)

	require.Len(t, alerts, 4)
	assert.Equal(t, "D", alerts[0].Details["budget_name"])
	assert.Equal(t, "C", alerts[1].Details["budget_name"])
	assert.Equal(t, "B", alerts[2].Details["budget_name"])
	assert.Equal(t, "A", alerts[3].Details["budget_name"])
}

func TestDetectBudgetAlerts_NoBudgets(t *testing.T) {
	assert.Empty(t, DetectBudgetAlerts(testNow, nil, nil))
}

func TestForecastBudget(t *testing.T) {
	category := newCategory("Продукты")
	budget := budgetFor(category, 1000000)
	now := time.Date(2026, 10, 10, 18, 0, 0, 0, time.UTC)

	t.Run("on track", func(t *testing.T) {
		forecast := ForecastBudget(now, budget, []models.TransactionRecord{
			expense(category, 300000, time.Date(2026, 10, 4, 12, 0, 0, 0, time.UTC)),
		})

		assert.Equal(t, 10, forecast.DaysElapsed)
		assert.Equal(t, 21, forecast.DaysRemaining)
		assert.Equal(t, 30000.0, forecast.DailyRate)
		assert.Equal(t, 23, forecast.DaysUntilDepleted)
		assert.Equal(t, int64(930000), forecast.ProjectedSpend)
		assert.Zero(t, forecast.ProjectedOverspend)
		assert.False(t, forecast.WillExceed)
		assert.Equal(t, int64(700000), forecast.Remaining)
	})

	t.Run("projected overspend", func(t *testing.T) {
		forecast := ForecastBudget(now, budget, []models.TransactionRecord{
			expense(category, 500000, time.Date(2026, 10, 4, 12, 0, 0, 0, time.UTC)),
		})

		assert.Equal(t, 10, forecast.DaysUntilDepleted)
		assert.Equal(t, int64(1550000), forecast.ProjectedSpend)
		assert.Equal(t, int64(550000), forecast.ProjectedOverspend)
		assert.True(t, forecast.WillExceed)
	})

	t.Run("nothing spent", func(t *testing.T) {
		forecast := ForecastBudget(now, budget, nil)

		assert.Zero(t, forecast.DailyRate)
		assert.Zero(t, forecast.DaysUntilDepleted)
		assert.Zero(t, forecast.ProjectedSpend)
		assert.False(t, forecast.WillExceed)
	})

	t.Run("already exhausted", func(t *testing.T) {
		forecast := ForecastBudget(now, budget, []models.TransactionRecord{
			expense(category, 1100000, time.Date(2026, 10, 4, 12, 0, 0, 0, time.UTC)),
		})

		assert.Zero(t, forecast.DaysUntilDepleted)
		assert.Equal(t, int64(-100000), forecast.Remaining)
		assert.True(t, forecast.WillExceed)
	})
}

func TestSummarizeBudgets(t *testing.T) {
	a, b, c, d := newCategory("A"), newCategory("B"), newCategory("C"), newCategory("D")
	userID := uuid.New()
	budgets := []models.BudgetRecord{
		budgetFor(a, 100000),
		budgetFor(b, 100000),
		budgetFor(c, 100000),
		budgetFor(d, 100000),
	}
	expenses := []models.TransactionRecord{
		expense(a, 79999, inMonth(0, 1)),
		expense(b, 80000, inMonth(0, 1)),
		expense(c, 100000, inMonth(0, 1)),
		expense(d, 140001, inMonth(0, 1)),
	}

	summary := SummarizeBudgets(testNow, userID, budgets, expenses)

	assert.Equal(t, userID, summary.UserID)
	assert.Equal(t, 4, summary.TotalBudgets)
	assert.Equal(t, 1, summary.OnTrack)
	assert.Equal(t, 1, summary.AtRisk)
	assert.Equal(t, 2, summary.Exceeded)
	assert.Equal(t, int64(400000), summary.TotalLimit)
	assert.Equal(t, int64(400000), summary.TotalSpent)
	assert.Equal(t, 100.0, summary.Percentage)
	assert.Len(t, summary.Budgets, 4)
}
