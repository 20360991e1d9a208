package detectors

import (
	"fmt"
	"sort"
	"time"

	"finance-alerts/internal/models"
)

const (
	// InactivityMinDays is the silence after which recent cadence is examined
	InactivityMinDays = 3
	// InactivityLookbackDays is the window used to learn the user's cadence
	InactivityLookbackDays = 30

	inactivityMediumDays = 7

	lowActivityMinPrevious = 10
	lowActivityMinDay      = 10
)

// DaysSinceLast is floor((now - last) / 24h)
func DaysSinceLast(now time.Time, last models.TransactionRecord) int {
	return WholeDaysBetween(last.OccurredAt, now)
}

// NeedsCadence reports whether DetectInactivity will look at the trailing
// 30 days of transactions for the given latest transaction
func NeedsCadence(now time.Time, last *models.TransactionRecord) bool {
	return last != nil && DaysSinceLast(now, *last) >= InactivityMinDays
}

// DetectInactivity compares the silence since the last transaction with the
// user's own rhythm over the trailing 30 days. A user with no transactions at
// all gets a welcome reminder instead.
func DetectInactivity(now time.Time, last *models.TransactionRecord, recent []models.TransactionRecord) []models.Alert {
	if last == nil {
		return []models.Alert{{
			Type:           models.AlertTypeReminder,
			Severity:       models.SeverityMedium,
			Message:        "Вы ещё не добавили ни одной операции",
			Recommendation: "Добавьте первые доходы и расходы, чтобы получать подсказки по бюджету",
			Details: map[string]interface{}{
				"days_since_last": 0,
			},
		}}
	}

	daysSince := DaysSinceLast(now, *last)
	if daysSince < InactivityMinDays || len(recent) == 0 {
		return nil
	}

	avgInterval := averageGapDays(recent)
	if float64(daysSince) <= avgInterval*2 {
		return nil
	}

	severity := models.SeverityLow
	if daysSince >= inactivityMediumDays {
		severity = models.SeverityMedium
	}

	return []models.Alert{{
		Type:           models.AlertTypeMissingTransactions,
		Severity:       severity,
		Message:        fmt.Sprintf("Вы не добавляли операции уже %d дн., обычно это происходит раз в %s дн.", daysSince, formatDecimal(avgInterval)),
		Recommendation: "Внесите пропущенные операции, чтобы отчёты и бюджеты оставались точными",
		Details: map[string]interface{}{
			"days_since_last":     daysSince,
			"average_interval":    roundTo(avgInterval, 2),
			"last_transaction_at": last.OccurredAt.In(now.Location()).Format(time.RFC3339),
		},
	}}
}

// averageGapDays is the mean whole-day gap between consecutive transactions,
// newest first, or 1 when there is no pair to measure
func averageGapDays(records []models.TransactionRecord) float64 {
	sorted := make([]models.TransactionRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})

	if len(sorted) < 2 {
		return 1
	}
	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, float64(WholeDaysBetween(sorted[i].OccurredAt, sorted[i-1].OccurredAt)))
	}
	return mean(gaps)
}

// DetectLowActivity flags a month-over-month collapse in logging. recent must
// cover at least the current month; previousMonthCount comes from a separate count.
func DetectLowActivity(now time.Time, recent []models.TransactionRecord, previousMonthCount int64) []models.Alert {
	monthStart := StartOfMonth(now)
	var current int64
	for _, record := range recent {
		if !record.OccurredAt.Before(monthStart) && !record.OccurredAt.After(now) {
			current++
		}
	}

	if previousMonthCount < lowActivityMinPrevious ||
		float64(current) >= float64(previousMonthCount)/2 ||
		now.Day() < lowActivityMinDay {
		return nil
	}

	decrease := percentOf(previousMonthCount-current, previousMonthCount)
	return []models.Alert{{
		Type:     models.AlertTypeLowActivity,
		Severity: models.SeverityLow,
		Message: fmt.Sprintf("В этом месяце добавлено %d операций против %d в прошлом",
			current, previousMonthCount),
		Recommendation: "Проверьте, все ли операции внесены, иначе аналитика будет неполной",
		Details: map[string]interface{}{
			"current_month_count":  current,
			"previous_month_count": previousMonthCount,
			"decrease_percentage":  roundTo(decrease, 2),
		},
	}}
}
