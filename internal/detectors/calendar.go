package detectors

import (
	"math"
	"time"

	"github.com/jinzhu/now"
)

const day = 24 * time.Hour

// StartOfMonth returns midnight of the first day of t's month in t's location
func StartOfMonth(t time.Time) time.Time {
	return now.With(t).BeginningOfMonth()
}

// EndOfMonth returns the last representable instant of t's month
func EndOfMonth(t time.Time) time.Time {
	return now.With(t).EndOfMonth()
}

// StartOfPreviousMonth returns midnight of the first day of the month before t's
func StartOfPreviousMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, -1, 0)
}

// EndOfPreviousMonth returns the last instant of the month before t's
func EndOfPreviousMonth(t time.Time) time.Time {
	return now.With(StartOfPreviousMonth(t)).EndOfMonth()
}

func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

func DaysInMonth(t time.Time) int {
	return EndOfMonth(t).Day()
}

// CalendarDaysBetween is the signed number of calendar days from a to b,
// both taken as dates in loc. DST shifts are absorbed by rounding.
func CalendarDaysBetween(a, b time.Time, loc *time.Location) int {
	from := StartOfDay(a.In(loc))
	to := StartOfDay(b.In(loc))
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// WholeDaysBetween is floor((later - earlier) / 24h), clamped at zero
func WholeDaysBetween(earlier, later time.Time) int {
	elapsed := later.Sub(earlier)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / day)
}

// monthKey identifies a calendar month in loc
type monthKey struct {
	year  int
	month time.Month
}

func monthOf(t time.Time, loc *time.Location) monthKey {
	local := t.In(loc)
	return monthKey{year: local.Year(), month: local.Month()}
}
