// Package dateutils provides the date operations used by the import pipeline.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the operation-date layout of Boursorama exports.
const DateLayoutISO = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	t, err := time.Parse(DateLayoutISO, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// ToISODate formats a time.Time value as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}
