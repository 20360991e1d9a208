package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Severity is the ordinal classification of an alert
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities for sorting: high first
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// AlertType discriminates the finding an alert describes
type AlertType string

const (
	AlertTypeOverspending        AlertType = "overspending"
	AlertTypeUnusualCategory     AlertType = "unusual_category"
	AlertTypeHighFrequency       AlertType = "high_frequency"
	AlertTypeLargeTransaction    AlertType = "large_transaction"
	AlertTypeMissingTransactions AlertType = "missing_transactions"
	AlertTypeLowActivity         AlertType = "low_activity"
	AlertTypeReminder            AlertType = "reminder"
	AlertTypeUpcomingPayment     AlertType = "upcoming_payment"
	AlertTypePaymentToday        AlertType = "payment_today"
	AlertTypeOverduePayment      AlertType = "overdue_payment"
	AlertTypeBudgetWarning       AlertType = "budget_warning"
	AlertTypeBudgetCritical      AlertType = "budget_critical"
	AlertTypeBudgetExceeded      AlertType = "budget_exceeded"
)

// AlertFamily groups alert types the way users toggle them in settings
type AlertFamily string

const (
	AlertFamilySpending AlertFamily = "spending"
	AlertFamilyActivity AlertFamily = "activity"
	AlertFamilyPayment  AlertFamily = "payment"
	AlertFamilyBudget   AlertFamily = "budget"
)

// Alert is an ephemeral finding produced by a detector. It has no identity.
type Alert struct {
	Type           AlertType              `json:"type"`
	Severity       Severity               `json:"severity"`
	Message        string                 `json:"message"`
	Recommendation string                 `json:"recommendation"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// SortAlertsBySeverity orders alerts high → medium → low, keeping input order within a severity
func SortAlertsBySeverity(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
}

// TitledAlert is an alert queued for delivery together with its display title
type TitledAlert struct {
	Alert
	Title string `json:"title"`
}

// AlertSummary counts alerts by severity
type AlertSummary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Add tallies the given alerts into the summary
func (s *AlertSummary) Add(alerts []Alert) {
	for _, alert := range alerts {
		s.Total++
		switch alert.Severity {
		case SeverityHigh:
			s.High++
		case SeverityMedium:
			s.Medium++
		case SeverityLow:
			s.Low++
		}
	}
}

// NotificationPackage is the aggregated output of one detection run for a user
type NotificationPackage struct {
	UserID         uuid.UUID    `json:"user_id"`
	SpendingAlerts []Alert      `json:"spending_alerts"`
	ActivityAlerts []Alert      `json:"activity_alerts"`
	PaymentAlerts  []Alert      `json:"payment_alerts"`
	BudgetAlerts   []Alert      `json:"budget_alerts"`
	Summary        AlertSummary `json:"summary"`
	GeneratedAt    time.Time    `json:"generated_at"`
}

// AlertsByFamily returns the package's alert list for a family
func (p *NotificationPackage) AlertsByFamily(family AlertFamily) []Alert {
	switch family {
	case AlertFamilySpending:
		return p.SpendingAlerts
	case AlertFamilyActivity:
		return p.ActivityAlerts
	case AlertFamilyPayment:
		return p.PaymentAlerts
	case AlertFamilyBudget:
		return p.BudgetAlerts
	default:
		return nil
	}
}

// AllAlertFamilies lists families in dispatch order
func AllAlertFamilies() []AlertFamily {
	return []AlertFamily{
		AlertFamilySpending,
		AlertFamilyActivity,
		AlertFamilyPayment,
		AlertFamilyBudget,
	}
}

// SpendingPattern compares a category's current month with its history
type SpendingPattern struct {
	CategoryID           uuid.UUID `json:"category_id"`
	CategoryName         string    `json:"category_name"`
	AverageMonthly       float64   `json:"average_monthly"`
	CurrentMonth         int64     `json:"current_month"`
	Difference           float64   `json:"difference"`
	DifferencePercentage float64   `json:"difference_percentage"`
	StdDev               float64   `json:"std_dev"`
	MonthsOfHistory      int       `json:"months_of_history"`
	IsAnomaly            bool      `json:"is_anomaly"`
}

var alertTitles = map[AlertType]string{
	AlertTypeOverspending:        "Перерасход по категории",
	AlertTypeUnusualCategory:     "Необычная категория расходов",
	AlertTypeHighFrequency:       "Частые траты",
	AlertTypeLargeTransaction:    "Крупная операция",
	AlertTypeMissingTransactions: "Нет новых операций",
	AlertTypeLowActivity:         "Низкая активность",
	AlertTypeReminder:            "Напоминание",
	AlertTypeUpcomingPayment:     "Предстоящий платёж",
	AlertTypePaymentToday:        "Платёж сегодня",
	AlertTypeOverduePayment:      "Просроченный платёж",
	AlertTypeBudgetWarning:       "Бюджет расходуется",
	AlertTypeBudgetCritical:      "Бюджет почти исчерпан",
	AlertTypeBudgetExceeded:      "Бюджет превышен",
}

// AlertTitle returns the human title for an alert type, falling back to the raw type
func AlertTitle(alertType AlertType) string {
	if title, ok := alertTitles[alertType]; ok {
		return title
	}
	return string(alertType)
}
