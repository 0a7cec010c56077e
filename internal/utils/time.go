package utils

import (
	"time"

	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ShiftDate returns the date string shifted by the given number of days.
// Invalid input is returned unchanged.
func ShiftDate(dateStr string, days int) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.AddDate(0, 0, days).Format(constants.DateFormat)
}

// AfterDate reports whether a is strictly later than b. Date strings in
// the standard format compare correctly as plain strings, which keeps the
// comparison independent of timezones.
func AfterDate(a, b string) bool {
	return a > b
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// FirstWeekday returns the weekday of the first day of the given month
// (Sunday == 0).
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}
