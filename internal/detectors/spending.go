package detectors

import (
	"fmt"
	"sort"
	"time"

	"finance-alerts/internal/models"

	"github.com/google/uuid"
)

const (
	// SpendingHistoryMonths is how far back the spending detector looks
	SpendingHistoryMonths = 6

	minHistoryMonths          = 2
	anomalyStdDevs            = 2.0
	anomalyMinPercentage      = 30.0
	overspendHighPercentage   = 80.0
	overspendMediumPercentage = 50.0

	largeTransactionStdDevs    = 3.0
	largeTransactionFloor      = 10000
	largeTransactionHighFactor = 5.0
	maxLargeTransactionAlerts  = 3

	frequencyStdDevs         = 2.0
	frequencyMinFactor       = 1.5
	frequencyHighPercentage  = 100.0
	maxHighFrequencyAlerts   = 2
	unusualCategoryFloor     = 5000
	unusualCategoryMedium    = 50000
	maxUnusualCategoryAlerts = 2
)

type categoryKey = uuid.UUID

// spendingSplit is the expense snapshot partitioned around the first day of the current month
type spendingSplit struct {
	loc        *time.Location
	current    []models.TransactionRecord
	historical []models.TransactionRecord
	names      map[categoryKey]string
}

func splitSpending(now time.Time, expenses []models.TransactionRecord) spendingSplit {
	monthStart := StartOfMonth(now)
	split := spendingSplit{
		loc:   now.Location(),
		names: make(map[categoryKey]string),
	}
	for _, record := range expenses {
		if !record.IsExpense() || record.OccurredAt.After(now) {
			continue
		}
		name := record.CategoryName
		if record.CategoryID == uuid.Nil || name == "" {
			name = models.UncategorizedName
		}
		split.names[record.CategoryID] = name
		if record.OccurredAt.Before(monthStart) {
			split.historical = append(split.historical, record)
		} else {
			split.current = append(split.current, record)
		}
	}
	return split
}

// AnalyzeSpendingPatterns compares each category's current-month spend with its
// monthly history. Categories with fewer than two historical months are left out.
// The result is ordered by category name.
func AnalyzeSpendingPatterns(now time.Time, expenses []models.TransactionRecord) []models.SpendingPattern {
	return analyzePatterns(splitSpending(now, expenses))
}

func analyzePatterns(split spendingSplit) []models.SpendingPattern {
	currentTotals := make(map[categoryKey]int64)
	for _, record := range split.current {
		currentTotals[record.CategoryID] += record.Magnitude()
	}

	monthly := make(map[categoryKey]map[monthKey]int64)
	for _, record := range split.historical {
		months, ok := monthly[record.CategoryID]
		if !ok {
			months = make(map[monthKey]int64)
			monthly[record.CategoryID] = months
		}
		months[monthOf(record.OccurredAt, split.loc)] += record.Magnitude()
	}

	patterns := make([]models.SpendingPattern, 0, len(monthly))
	for category, months := range monthly {
		if len(months) < minHistoryMonths {
			continue
		}

		totals := make([]float64, 0, len(months))
		for _, total := range months {
			totals = append(totals, float64(total))
		}
		average := mean(totals)
		stdDev := populationStdDev(totals)
		current := currentTotals[category]
		difference := float64(current) - average

		var percentage float64
		if average != 0 {
			percentage = difference / average * 100
		}

		patterns = append(patterns, models.SpendingPattern{
			CategoryID:           category,
			CategoryName:         split.names[category],
			AverageMonthly:       average,
			CurrentMonth:         current,
			Difference:           difference,
			DifferencePercentage: percentage,
			StdDev:               stdDev,
			MonthsOfHistory:      len(months),
			IsAnomaly:            float64(current) > average+anomalyStdDevs*stdDev && percentage > anomalyMinPercentage,
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].CategoryName != patterns[j].CategoryName {
			return patterns[i].CategoryName < patterns[j].CategoryName
		}
		return patterns[i].CategoryID.String() < patterns[j].CategoryID.String()
	})
	return patterns
}

// DetectSpendingAnomalies runs the overspending, large transaction, high frequency
// and unusual category passes over one expense snapshot covering the trailing
// six months. Alerts come back ordered by severity only.
func DetectSpendingAnomalies(now time.Time, expenses []models.TransactionRecord) []models.Alert {
	split := splitSpending(now, expenses)

	var alerts []models.Alert
	alerts = append(alerts, overspendingAlerts(analyzePatterns(split))...)
	alerts = append(alerts, largeTransactionAlerts(split)...)
	alerts = append(alerts, highFrequencyAlerts(split)...)
	alerts = append(alerts, unusualCategoryAlerts(split)...)

	models.SortAlertsBySeverity(alerts)
	return alerts
}

func overspendingAlerts(patterns []models.SpendingPattern) []models.Alert {
	var alerts []models.Alert
	for _, pattern := range patterns {
		// both gates are required even though IsAnomaly already implies the second
		if !pattern.IsAnomaly || pattern.DifferencePercentage <= anomalyMinPercentage {
			continue
		}

		severity := models.SeverityLow
		switch {
		case pattern.DifferencePercentage > overspendHighPercentage:
			severity = models.SeverityHigh
		case pattern.DifferencePercentage > overspendMediumPercentage:
			severity = models.SeverityMedium
		}

		alerts = append(alerts, models.Alert{
			Type:     models.AlertTypeOverspending,
			Severity: severity,
			Message: fmt.Sprintf("Расходы в категории «%s» выросли на %s: %s при обычных %s в месяц",
				pattern.CategoryName,
				FormatPercent(pattern.DifferencePercentage),
				FormatMoney(pattern.CurrentMonth),
				FormatMoney(int64(pattern.AverageMonthly))),
			Recommendation: fmt.Sprintf("Проверьте последние траты в категории «%s» и решите, какие из них можно сократить до конца месяца",
				pattern.CategoryName),
			Details: map[string]interface{}{
				"category_id":     pattern.CategoryID.String(),
				"category":        pattern.CategoryName,
				"current_month":   pattern.CurrentMonth,
				"average_monthly": roundTo(pattern.AverageMonthly, 2),
				"difference":      roundTo(pattern.Difference, 2),
				"percentage":      roundTo(pattern.DifferencePercentage, 2),
				"std_dev":         roundTo(pattern.StdDev, 2),
			},
		})
	}
	return alerts
}

func largeTransactionAlerts(split spendingSplit) []models.Alert {
	if len(split.historical) == 0 {
		return nil
	}

	magnitudes := make([]float64, 0, len(split.historical))
	for _, record := range split.historical {
		magnitudes = append(magnitudes, float64(record.Magnitude()))
	}
	average := mean(magnitudes)
	threshold := average + largeTransactionStdDevs*populationStdDev(magnitudes)

	var flagged []models.TransactionRecord
	for _, record := range split.current {
		amount := record.Magnitude()
		if float64(amount) > threshold && amount > largeTransactionFloor {
			flagged = append(flagged, record)
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		if flagged[i].Magnitude() != flagged[j].Magnitude() {
			return flagged[i].Magnitude() > flagged[j].Magnitude()
		}
		return flagged[i].OccurredAt.Before(flagged[j].OccurredAt)
	})
	if len(flagged) > maxLargeTransactionAlerts {
		flagged = flagged[:maxLargeTransactionAlerts]
	}

	alerts := make([]models.Alert, 0, len(flagged))
	for _, record := range flagged {
		amount := record.Magnitude()
		severity := models.SeverityMedium
		if float64(amount) > largeTransactionHighFactor*average {
			severity = models.SeverityHigh
		}
		name := split.names[record.CategoryID]

		alerts = append(alerts, models.Alert{
			Type:     models.AlertTypeLargeTransaction,
			Severity: severity,
			Message: fmt.Sprintf("Крупная операция %s в категории «%s» от %s",
				FormatMoney(amount), name, record.OccurredAt.In(split.loc).Format("02.01.2006")),
			Recommendation: "Убедитесь, что операция ожидаемая и верно отнесена к категории",
			Details: map[string]interface{}{
				"transaction_id": record.ID.String(),
				"category":       name,
				"amount":         amount,
				"average_amount": roundTo(average, 2),
				"threshold":      roundTo(threshold, 2),
				"occurred_at":    record.OccurredAt.In(split.loc).Format(time.RFC3339),
			},
		})
	}
	return alerts
}

type frequencyCandidate struct {
	category     categoryKey
	count        int
	average      float64
	percentage   float64
	historyMonth int
}

func highFrequencyAlerts(split spendingSplit) []models.Alert {
	currentCounts := make(map[categoryKey]int)
	for _, record := range split.current {
		currentCounts[record.CategoryID]++
	}

	monthlyCounts := make(map[categoryKey]map[monthKey]int)
	for _, record := range split.historical {
		months, ok := monthlyCounts[record.CategoryID]
		if !ok {
			months = make(map[monthKey]int)
			monthlyCounts[record.CategoryID] = months
		}
		months[monthOf(record.OccurredAt, split.loc)]++
	}

	var candidates []frequencyCandidate
	for category, count := range currentCounts {
		months := monthlyCounts[category]
		if len(months) < minHistoryMonths {
			continue
		}
		counts := make([]float64, 0, len(months))
		for _, c := range months {
			counts = append(counts, float64(c))
		}
		average := mean(counts)
		stdDev := populationStdDev(counts)

		current := float64(count)
		if current > average+frequencyStdDevs*stdDev && current > average*frequencyMinFactor {
			candidates = append(candidates, frequencyCandidate{
				category:     category,
				count:        count,
				average:      average,
				percentage:   (current - average) / average * 100,
				historyMonth: len(months),
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].percentage != candidates[j].percentage {
			return candidates[i].percentage > candidates[j].percentage
		}
		return split.names[candidates[i].category] < split.names[candidates[j].category]
	})
	if len(candidates) > maxHighFrequencyAlerts {
		candidates = candidates[:maxHighFrequencyAlerts]
	}

	alerts := make([]models.Alert, 0, len(candidates))
	for _, candidate := range candidates {
		severity := models.SeverityMedium
		if candidate.percentage > frequencyHighPercentage {
			severity = models.SeverityHigh
		}
		name := split.names[candidate.category]

		alerts = append(alerts, models.Alert{
			Type:     models.AlertTypeHighFrequency,
			Severity: severity,
			Message: fmt.Sprintf("В категории «%s» уже %d операций в этом месяце, обычно около %s",
				name, candidate.count, formatDecimal(candidate.average)),
			Recommendation: "Частые мелкие покупки быстро складываются в заметную сумму, попробуйте объединять их",
			Details: map[string]interface{}{
				"category":          name,
				"current_count":     candidate.count,
				"average_count":     roundTo(candidate.average, 2),
				"percentage":        roundTo(candidate.percentage, 2),
				"months_of_history": candidate.historyMonth,
			},
		})
	}
	return alerts
}

func unusualCategoryAlerts(split spendingSplit) []models.Alert {
	seen := make(map[categoryKey]bool)
	for _, record := range split.historical {
		seen[record.CategoryID] = true
	}

	totals := make(map[categoryKey]int64)
	for _, record := range split.current {
		if !seen[record.CategoryID] {
			totals[record.CategoryID] += record.Magnitude()
		}
	}

	type candidate struct {
		category categoryKey
		total    int64
	}
	var candidates []candidate
	for category, total := range totals {
		if total > unusualCategoryFloor {
			candidates = append(candidates, candidate{category: category, total: total})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].total != candidates[j].total {
			return candidates[i].total > candidates[j].total
		}
		return split.names[candidates[i].category] < split.names[candidates[j].category]
	})
	if len(candidates) > maxUnusualCategoryAlerts {
		candidates = candidates[:maxUnusualCategoryAlerts]
	}

	alerts := make([]models.Alert, 0, len(candidates))
	for _, c := range candidates {
		severity := models.SeverityLow
		if c.total > unusualCategoryMedium {
			severity = models.SeverityMedium
		}
		name := split.names[c.category]

		alerts = append(alerts, models.Alert{
			Type:           models.AlertTypeUnusualCategory,
			Severity:       severity,
			Message:        fmt.Sprintf("Новая категория расходов «%s»: %s за месяц", name, FormatMoney(c.total)),
			Recommendation: "Если это не разовая трата, заведите для категории бюджет",
			Details: map[string]interface{}{
				"category": name,
				"amount":   c.total,
			},
		})
	}
	return alerts
}
