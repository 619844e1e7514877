// Package normalize builds the canonical identity key of a statement row.
// Two rows a human would consider the same transaction on the same account
// must normalize to an identical key regardless of case or incidental
// whitespace differences.
package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Key composes the canonical key for a row:
//
//	"{account_id}_{date}_{amount}_{label}"
//
// where date is the date-only portion of rawDate, amount is formatted to
// exactly two decimal places and label is lower-cased with whitespace runs
// collapsed. Pure and deterministic; no locale involved.
func Key(accountID int64, rawDate string, amount decimal.Decimal, label string) string {
	return fmt.Sprintf("%d_%s_%s_%s", accountID, DatePart(rawDate), amount.StringFixed(2), Label(label))
}

// DatePart returns the date-only portion of a raw date value, dropping any
// time-of-day component. An empty or blank input yields an empty segment; a
// row in that state should already have been rejected upstream.
func DatePart(rawDate string) string {
	rawDate = strings.TrimSpace(rawDate)
	if rawDate == "" {
		return ""
	}
	if idx := strings.IndexAny(rawDate, " T"); idx >= 0 {
		return rawDate[:idx]
	}
	return rawDate
}

// Label lower-cases a label, collapses any run of whitespace characters to a
// single ASCII space and trims the result.
func Label(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}
