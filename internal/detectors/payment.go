package detectors

import (
	"fmt"
	"sort"
	"time"

	"finance-alerts/internal/models"
)

const (
	// PaymentLookaheadDays bounds how far ahead scheduled payments are scanned
	PaymentLookaheadDays = 7

	largePaymentFloor = 50000
)

// DaysUntilDue is the signed calendar-day distance from now's date to the due date.
// Yesterday is -1 and today is 0 regardless of the time of day.
func DaysUntilDue(now, due time.Time) int {
	return CalendarDaysBetween(now, due, now.Location())
}

// DetectPaymentAlerts classifies payments due within the lookahead window,
// overdue ones included. Small payments four or more days out are suppressed.
func DetectPaymentAlerts(now time.Time, payments []models.PaymentRecord) []models.Alert {
	type scored struct {
		alert     models.Alert
		daysUntil int
	}
	var found []scored

	for _, payment := range payments {
		daysUntil := DaysUntilDue(now, payment.NextDate)
		alert, ok := paymentAlert(now, payment, daysUntil)
		if !ok {
			continue
		}
		found = append(found, scored{alert: alert, daysUntil: daysUntil})
	}

	sort.SliceStable(found, func(i, j int) bool {
		ri, rj := found[i].alert.Severity.Rank(), found[j].alert.Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return found[i].daysUntil < found[j].daysUntil
	})

	alerts := make([]models.Alert, 0, len(found))
	for _, f := range found {
		alerts = append(alerts, f.alert)
	}
	return alerts
}

func paymentAlert(now time.Time, payment models.PaymentRecord, daysUntil int) (models.Alert, bool) {
	amount := FormatMoney(payment.Amount)
	alert := models.Alert{
		Details: map[string]interface{}{
			"payment_id":     payment.ID.String(),
			"payment_name":   payment.Name,
			"amount":         payment.Amount,
			"days_until_due": daysUntil,
			"due_date":       payment.NextDate.In(now.Location()).Format("2006-01-02"),
		},
	}

	switch {
	case daysUntil < 0:
		alert.Type = models.AlertTypeOverduePayment
		alert.Severity = models.SeverityHigh
		alert.Message = fmt.Sprintf("Платёж «%s» на %s просрочен на %d дн.", payment.Name, amount, -daysUntil)
		alert.Recommendation = "Оплатите как можно скорее, чтобы избежать штрафов и пеней"
	case daysUntil == 0:
		alert.Type = models.AlertTypePaymentToday
		alert.Severity = models.SeverityHigh
		alert.Message = fmt.Sprintf("Сегодня нужно оплатить «%s»: %s", payment.Name, amount)
		alert.Recommendation = "Проверьте, что на счёте достаточно средств"
	case daysUntil == 1:
		alert.Type = models.AlertTypeUpcomingPayment
		alert.Severity = models.SeverityHigh
		alert.Message = fmt.Sprintf("Завтра платёж «%s»: %s", payment.Name, amount)
		alert.Recommendation = "Подготовьте средства заранее"
	case daysUntil <= 3:
		alert.Type = models.AlertTypeUpcomingPayment
		alert.Severity = models.SeverityMedium
		alert.Message = fmt.Sprintf("Через %d дн. платёж «%s»: %s", daysUntil, payment.Name, amount)
		alert.Recommendation = "Запланируйте оплату на ближайшие дни"
	case daysUntil <= PaymentLookaheadDays && payment.Amount >= largePaymentFloor:
		alert.Type = models.AlertTypeUpcomingPayment
		alert.Severity = models.SeverityLow
		alert.Message = fmt.Sprintf("Через %d дн. крупный платёж «%s»: %s", daysUntil, payment.Name, amount)
		alert.Recommendation = "Учтите этот платёж при планировании расходов на неделю"
	default:
		return models.Alert{}, false
	}
	return alert, true
}

// SummarizeWeeklyPayments totals payments due within the lookahead window.
// Critical payments are overdue or due today or tomorrow.
func SummarizeWeeklyPayments(now time.Time, payments []models.PaymentRecord) models.PaymentWeeklySummary {
	summary := models.PaymentWeeklySummary{GeneratedAt: now}
	for _, payment := range payments {
		daysUntil := DaysUntilDue(now, payment.NextDate)
		if daysUntil > PaymentLookaheadDays {
			continue
		}
		summary.Count++
		summary.TotalAmount += payment.Amount
		if daysUntil <= 1 {
			summary.CriticalCount++
		}
	}
	return summary
}
