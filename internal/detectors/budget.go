package detectors

import (
	"fmt"
	"math"
	"sort"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

const (
	budgetOverspendPercentage = 120.0
	budgetExceededPercentage  = 100.0
	budgetCriticalPercentage  = 80.0
	budgetWarningPercentage   = 50.0
)

// BudgetUsageFor sums the budget category's expense magnitudes inside now's
// calendar month, first day 00:00 through the last nanosecond of the last day
func BudgetUsageFor(now time.Time, budget models.BudgetRecord, expenses []models.TransactionRecord) models.BudgetUsage {
	return usageFromTotals(budget, spendByCategory(now, expenses))
}

func spendByCategory(now time.Time, expenses []models.TransactionRecord) map[uuid.UUID]int64 {
	from, to := StartOfMonth(now), EndOfMonth(now)
	totals := make(map[uuid.UUID]int64)
	for _, record := range expenses {
		if !record.IsExpense() || record.OccurredAt.Before(from) || record.OccurredAt.After(to) {
			continue
		}
		totals[record.CategoryID] += record.Magnitude()
	}
	return totals
}

func usageFromTotals(budget models.BudgetRecord, totals map[uuid.UUID]int64) models.BudgetUsage {
	spent := totals[budget.CategoryID]
	name := budget.Name
	if name == "" {
		name = budget.CategoryName
	}
	return models.BudgetUsage{
		BudgetID:     budget.ID,
		Name:         name,
		CategoryID:   budget.CategoryID,
		CategoryName: budget.CategoryName,
		Limit:        budget.AmountLimit,
		Spent:        spent,
		Remaining:    budget.AmountLimit - spent,
		Percentage:   percentOf(spent, budget.AmountLimit),
	}
}

// DetectBudgetAlerts emits at most one alert per budget, picking the highest
// band its current-month usage reaches. Bands include their lower bound.
// Output is ordered by severity, then by usage percentage descending.
func DetectBudgetAlerts(now time.Time, budgets []models.BudgetRecord, expenses []models.TransactionRecord) []models.Alert {
	totals := spendByCategory(now, expenses)

	type scored struct {
		alert      models.Alert
		percentage float64
	}
	var found []scored
	for _, budget := range budgets {
		usage := usageFromTotals(budget, totals)
		if alert, ok := budgetAlert(usage); ok {
			found = append(found, scored{alert: alert, percentage: usage.Percentage})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		ri, rj := found[i].alert.Severity.Rank(), found[j].alert.Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return found[i].percentage > found[j].percentage
	})

	alerts := make([]models.Alert, 0, len(found))
	for _, f := range found {
		alerts = append(alerts, f.alert)
	}
	return alerts
}

func budgetAlert(usage models.BudgetUsage) (models.Alert, bool) {
	pct := usage.Percentage
	alert := models.Alert{
		Recommendation: budgetRecommendation(pct),
		Details: map[string]interface{}{
			"budget_id":   usage.BudgetID.String(),
			"budget_name": usage.Name,
			"category":    usage.CategoryName,
			"spent":       usage.Spent,
			"limit":       usage.Limit,
			"remaining":   usage.Remaining,
			"percentage":  roundTo(pct, 2),
		},
	}

	switch {
	case pct >= budgetOverspendPercentage:
		alert.Type = models.AlertTypeBudgetExceeded
		alert.Severity = models.SeverityHigh
		alert.Message = fmt.Sprintf("Перерасход бюджета «%s»: потрачено %s при лимите %s",
			usage.Name, FormatMoney(usage.Spent), FormatMoney(usage.Limit))
	case pct >= budgetExceededPercentage:
		alert.Type = models.AlertTypeBudgetExceeded
		alert.Severity = models.SeverityHigh
		alert.Message = fmt.Sprintf("Бюджет «%s» исчерпан: использовано %s", usage.Name, FormatPercent(pct))
	case pct >= budgetCriticalPercentage:
		alert.Type = models.AlertTypeBudgetCritical
		alert.Severity = models.SeverityMedium
		alert.Message = fmt.Sprintf("Бюджет «%s» почти исчерпан: использовано %s, осталось %s",
			usage.Name, FormatPercent(pct), FormatMoney(usage.Remaining))
	case pct >= budgetWarningPercentage:
		alert.Type = models.AlertTypeBudgetWarning
		alert.Severity = models.SeverityLow
		alert.Message = fmt.Sprintf("Использовано %s бюджета «%s», осталось %s",
			FormatPercent(pct), usage.Name, FormatMoney(usage.Remaining))
	default:
		return models.Alert{}, false
	}
	return alert, true
}

func budgetRecommendation(pct float64) string {
	switch {
	case pct >= budgetOverspendPercentage:
		return "Бюджет значительно превышен. Пересмотрите лимит или перенесите необязательные траты на следующий месяц"
	case pct >= budgetExceededPercentage:
		return "Лимит достигнут. Воздержитесь от новых трат в этой категории до конца месяца"
	case pct >= budgetCriticalPercentage:
		return "До лимита осталось немного. Планируйте оставшиеся траты в этой категории заранее"
	default:
		return "Половина бюджета уже израсходована. Следите за темпом трат"
	}
}

// ForecastBudget projects month-end spend from the average daily spend so far
func ForecastBudget(now time.Time, budget models.BudgetRecord, expenses []models.TransactionRecord) models.BudgetForecast {
	usage := BudgetUsageFor(now, budget, expenses)

	daysElapsed := now.Day()
	daysRemaining := DaysInMonth(now) - daysElapsed
	dailyRate := float64(usage.Spent) / float64(daysElapsed)

	daysUntilDepleted := 0
	if usage.Remaining > 0 && dailyRate > 0 {
		daysUntilDepleted = int(math.Floor(float64(usage.Remaining) / dailyRate))
	}

	projectedSpend := usage.Spent + int64(math.Round(dailyRate*float64(daysRemaining)))
	projectedOverspend := projectedSpend - usage.Limit
	if projectedOverspend < 0 {
		projectedOverspend = 0
	}

	return models.BudgetForecast{
		BudgetUsage:        usage,
		DailyRate:          roundTo(dailyRate, 2),
		DaysElapsed:        daysElapsed,
		DaysRemaining:      daysRemaining,
		DaysUntilDepleted:  daysUntilDepleted,
		ProjectedSpend:     projectedSpend,
		ProjectedOverspend: projectedOverspend,
		WillExceed:         projectedOverspend > 0,
		GeneratedAt:        now,
	}
}

// SummarizeBudgets buckets budgets into on track (<80%), at risk (80% up to 100%)
// and exceeded (>=100%) and totals limit against spend
func SummarizeBudgets(now time.Time, userID uuid.UUID, budgets []models.BudgetRecord, expenses []models.TransactionRecord) models.BudgetSummary {
	totals := spendByCategory(now, expenses)
	summary := models.BudgetSummary{
		UserID:       userID,
		TotalBudgets: len(budgets),
		Budgets:      make([]models.BudgetUsage, 0, len(budgets)),
		GeneratedAt:  now,
	}

	for _, budget := range budgets {
		usage := usageFromTotals(budget, totals)
		switch {
		case usage.Percentage >= budgetExceededPercentage:
			summary.Exceeded++
		case usage.Percentage >= budgetCriticalPercentage:
			summary.AtRisk++
		default:
			summary.OnTrack++
		}
		summary.TotalLimit += usage.Limit
		summary.TotalSpent += usage.Spent
		summary.Budgets = append(summary.Budgets, usage)
	}

	summary.Percentage = roundTo(percentOf(summary.TotalSpent, summary.TotalLimit), 2)
	return summary
}
