package statement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts covers the date formats observed across issuer statements.
// Order matters: day-first layouts come before the ISO fallback so that
// ambiguous numeric dates resolve the way Indian statements print them.
var dateLayouts = []string{
	"2 Jan 2006",      // 15 Jan 2024
	"2/1/2006",        // 15/01/2024
	"2-1-2006",        // 15-01-2024
	"2-Jan-2006",      // 15-Jan-2024
	"January 2, 2006", // January 15, 2024
	"2 January 2006",  // 15 January 2024
	"2006-1-2",        // 2024-01-15
	"2.1.2006",        // 15.01.2024
}

// ParseDate parses a matched date string against the known layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// amountReplacer strips currency symbols, separators and whitespace from
// matched monetary strings. The backtick shows up in ICICI statements
// where the rupee glyph is rendered by a custom font.
var amountReplacer = strings.NewReplacer(
	"₹", "",
	"$", "",
	"`", "",
	",", "",
	" ", "",
	" ", "",
	"\t", "",
)

// ParseAmount converts a matched currency string such as "₹1,23,456.78",
// "$1,234.56" or "Rs.1,234.56 DR" into an exact decimal value. Grouping
// style (Indian lakh/crore or Western thousands) does not matter since
// separators are stripped before parsing.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)
	for _, suffix := range []string{"DR", "CR"} {
		if strings.HasSuffix(upper, suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}
	if i := strings.Index(strings.ToUpper(s), "RS."); i == 0 {
		s = s[3:]
	}
	s = amountReplacer.Replace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount string")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Due-date plausibility bounds. Statements older than ~18 months or due
// dates more than two years out are treated as pattern misfires.
const (
	maxPastDays    = 550
	maxFutureYears = 2
)

// ValidDueDate reports whether a parsed due date is plausible relative
// to now and, when a statement date is present, chronologically after it.
func ValidDueDate(due time.Time, statementDate *time.Time, now time.Time) bool {
	if due.Year() > now.Year()+maxFutureYears {
		return false
	}
	if now.Sub(due) > maxPastDays*24*time.Hour {
		return false
	}
	if statementDate != nil && due.Before(*statementDate) {
		return false
	}
	return true
}
