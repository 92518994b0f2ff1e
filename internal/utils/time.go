package utils

import (
	"math"
	"time"

	"mealtrack/internal/constants"
)

// DateKey formats t as the YYYY-MM-DD storage key for its local calendar
// day. Time-of-day is discarded.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD string into a time.Time at local midnight.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole-day difference between the calendar days of
// a and b. The result is negative when b precedes a. Rounding absorbs the
// 23- and 25-hour days a DST transition produces between local midnights.
func DaysBetween(a, b time.Time) int {
	a = StartOfDay(a)
	b = StartOfDay(b)
	return int(math.Round(b.Sub(a).Hours() / 24))
}
