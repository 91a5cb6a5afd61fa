// Package statement defines the structured statement record, the
// per-field extraction rules, and the engine that applies them to
// extracted PDF text.
package statement

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field identifies a structured field extracted from statement text.
type Field string

const (
	FieldCardLast4      Field = "card_last4"
	FieldStatementDate  Field = "statement_date"
	FieldDueDate        Field = "due_date"
	FieldAmountDue      Field = "amount_due"
	FieldMinimumDue     Field = "minimum_due"
	FieldCreditLimit    Field = "credit_limit"
	FieldAvailableLimit Field = "available_limit"
)

// Kind selects the normalizer applied to a matched value.
type Kind int

const (
	// KindDigits keeps the matched card suffix as-is.
	KindDigits Kind = iota
	// KindDate parses the match against the known statement date layouts.
	KindDate
	// KindAmount parses the match as a fixed-point monetary amount.
	KindAmount
)

// Rule binds a field to an ordered list of patterns and a normalizer.
// Patterns are tried in order; the first pattern that matches wins, and
// within a pattern the first match in document order is used. For card
// patterns carrying multiple capture groups the last group holds the
// suffix.
type Rule struct {
	Field    Field
	Kind     Kind
	Patterns []*regexp.Regexp
}

// NewRule compiles the given pattern sources with the multiline,
// dotall and case-insensitive flags used throughout the rule tables.
// Invalid patterns panic; rules are static data compiled at startup.
func NewRule(field Field, kind Kind, patterns ...string) Rule {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile("(?ims)"+p))
	}
	return Rule{Field: field, Kind: kind, Patterns: compiled}
}

// Record is a fully extracted statement. AmountDue, DueDate and
// CardLast4 are mandatory; the rest may be absent depending on the
// issuer layout.
type Record struct {
	UserID           string
	Issuer           string
	CardLast4        string
	StatementDate    *time.Time
	DueDate          time.Time
	AmountDue        decimal.Decimal
	MinimumDue       *decimal.Decimal
	CreditLimit      *decimal.Decimal
	AvailableLimit   *decimal.Decimal
	SourceReceivedAt time.Time
}

// StatementPeriod returns the canonical billing-period key used for
// deduplication. When the statement date could not be extracted the due
// date stands in, so repeated ingestions of the same document still
// collide on the same key.
func (r *Record) StatementPeriod() string {
	if r.StatementDate != nil {
		return r.StatementDate.Format("2006-01-02")
	}
	return r.DueDate.Format("2006-01-02")
}

// PartialExtractionError reports an extraction missing one or more
// mandatory fields. Such results are surfaced for diagnosis, never
// persisted.
type PartialExtractionError struct {
	Missing []Field
}

func (e *PartialExtractionError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("partial extraction: missing mandatory fields [%s]", strings.Join(names, ", "))
}
