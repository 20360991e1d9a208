package detectors

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ruPrinter = message.NewPrinter(language.Russian)

// FormatMoney renders minor units as roubles with Russian digit grouping.
// Kopecks are shown only when present.
func FormatMoney(minor int64) string {
	amount := decimal.New(minor, -2)
	if amount.Equal(amount.Truncate(0)) {
		return ruPrinter.Sprintf("%d ₽", amount.IntPart())
	}
	value, _ := amount.Float64()
	return ruPrinter.Sprintf("%.2f ₽", value)
}

// FormatPercent rounds to one decimal place and drops a trailing zero
func FormatPercent(value float64) string {
	return decimal.NewFromFloat(value).Round(1).String() + "%"
}

// roundTo rounds for alert details so payloads stay readable
func roundTo(value float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return rounded
}

func formatDecimal(value float64) string {
	return decimal.NewFromFloat(value).Round(1).String()
}
