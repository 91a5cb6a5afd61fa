package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// mandatoryFields are required for a record to be valid. Extractions
// missing any of them come back as a PartialExtractionError.
var mandatoryFields = []Field{FieldDueDate, FieldAmountDue, FieldCardLast4}

// Engine applies an issuer's ordered extraction rules to statement text.
//
// Match selection is deterministic: for each rule, patterns are tried in
// the order the rule lists them; the first pattern that matches anywhere
// in the text wins; within that pattern the first match in document
// order is used. When a pattern carries several capture groups (masked
// card numbers split around the mask) the last group is taken.
type Engine struct {
	now func() time.Time
}

// NewEngine creates a field extraction engine.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Extract runs every rule against the text and assembles a Record. A
// rule that matches nothing leaves its field unset rather than failing.
// After all rules run, mandatory fields are validated; a missing
// mandatory field or an implausible due date yields a
// PartialExtractionError listing what is absent.
func (e *Engine) Extract(text string, rules []Rule) (*Record, error) {
	rec := &Record{}
	matched := map[Field]bool{}

	for _, rule := range rules {
		raw, ok := firstMatch(text, rule)
		if !ok {
			continue
		}
		if e.apply(rec, rule, raw) {
			matched[rule.Field] = true
		}
	}

	if matched[FieldDueDate] && !ValidDueDate(rec.DueDate, rec.StatementDate, e.now()) {
		matched[FieldDueDate] = false
	}

	var missing []Field
	for _, f := range mandatoryFields {
		if !matched[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &PartialExtractionError{Missing: missing}
	}
	return rec, nil
}

// firstMatch returns the selected capture for a rule, honoring the
// documented selection policy.
func firstMatch(text string, rule Rule) (string, bool) {
	for _, pattern := range rule.Patterns {
		groups := pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		// groups[0] is the whole match; the capture of interest is the
		// last non-empty group.
		for i := len(groups) - 1; i >= 1; i-- {
			if groups[i] != "" {
				return groups[i], true
			}
		}
	}
	return "", false
}

// apply normalizes a raw match into its typed field on the record.
// Normalization failures are treated the same as a non-match.
func (e *Engine) apply(rec *Record, rule Rule, raw string) bool {
	switch rule.Kind {
	case KindDigits:
		rec.CardLast4 = raw
		return true
	case KindDate:
		t, err := ParseDate(raw)
		if err != nil {
			return false
		}
		return e.applyDate(rec, rule.Field, t)
	case KindAmount:
		d, err := ParseAmount(raw)
		if err != nil {
			return false
		}
		return applyAmount(rec, rule.Field, d)
	}
	return false
}

func (e *Engine) applyDate(rec *Record, field Field, t time.Time) bool {
	switch field {
	case FieldStatementDate:
		rec.StatementDate = &t
	case FieldDueDate:
		rec.DueDate = t
	default:
		return false
	}
	return true
}

func applyAmount(rec *Record, field Field, d decimal.Decimal) bool {
	switch field {
	case FieldAmountDue:
		rec.AmountDue = d
	case FieldMinimumDue:
		rec.MinimumDue = &d
	case FieldCreditLimit:
		rec.CreditLimit = &d
	case FieldAvailableLimit:
		rec.AvailableLimit = &d
	default:
		return false
	}
	return true
}
