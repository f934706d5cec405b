// Package dates turns the free-text stay dates written by guests, in Spanish
// or English, into calendar dates.
package dates

import (
	"fmt"
	"strconv"
	"time"

	apperrors "cocoresort/pkg/errors"
)

// ISOLayout is the only format accepted for individual dates and the format
// every extracted range is returned in.
const ISOLayout = "2006-01-02"

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ParseISODate parses a YYYY-MM-DD date at UTC midnight.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, s)
	}
	return t, nil
}

// FormatISODate renders t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(ISOLayout)
}

const secondsPerDay = 24 * 60 * 60

// Nights returns the number of nights between two calendar dates. It works on
// Unix seconds since time.Duration saturates after roughly 292 years.
func Nights(start, end time.Time) int {
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}

// civilDate builds a UTC date and rejects any day that does not exist in the
// given month, checking February 29 against the leap-year rule first.
func civilDate(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	if month == time.February && day == 29 && !IsLeapYear(year) {
		return time.Time{}, fmt.Errorf("february 29 in %d: not a leap year", year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("day %d out of range for %s %d", day, month, year)
	}
	return t, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}
