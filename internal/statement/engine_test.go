package statement

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedEngine() *Engine {
	e := NewEngine()
	e.now = func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
	return e
}

func testRules() []Rule {
	return []Rule{
		NewRule(FieldCardLast4, KindDigits, `card number\s*:?\s*(\d{4})\s*x+\s*(\d{4})`, `ending\s+(\d{4})`),
		NewRule(FieldStatementDate, KindDate, `statement date\s*:?\s*(\d{1,2} \w{3} \d{4})`),
		NewRule(FieldDueDate, KindDate, `payment due date\s*:?\s*(\d{1,2} \w{3} \d{4})`),
		NewRule(FieldAmountDue, KindAmount, `total amount due\s*:?\s*(₹?[\d,]+\.?\d*)`),
		NewRule(FieldMinimumDue, KindAmount, `minimum amount due\s*:?\s*(₹?[\d,]+\.?\d*)`),
	}
}

func TestExtractCompleteStatement(t *testing.T) {
	text := `
CREDIT CARD STATEMENT
Card Number: 4321 XXXXXXXX 9876
Statement Date: 10 May 2024
Payment Due Date: 28 May 2024
Total Amount Due: ₹45,230.50
Minimum Amount Due: ₹2,262.00
`
	rec, err := fixedEngine().Extract(text, testRules())
	require.NoError(t, err)

	assert.Equal(t, "9876", rec.CardLast4)
	assert.Equal(t, "45230.5", rec.AmountDue.String())
	require.NotNil(t, rec.MinimumDue)
	assert.Equal(t, "2262", rec.MinimumDue.String())
	assert.Equal(t, time.Date(2024, time.May, 28, 0, 0, 0, 0, time.UTC), rec.DueDate)
	require.NotNil(t, rec.StatementDate)
	assert.Equal(t, "2024-05-10", rec.StatementPeriod())
}

func TestExtractMissingMandatoryFields(t *testing.T) {
	// A scanned statement yields no text at all.
	_, err := fixedEngine().Extract("", testRules())

	var partial *PartialExtractionError
	require.True(t, errors.As(err, &partial))
	assert.ElementsMatch(t, []Field{FieldDueDate, FieldAmountDue, FieldCardLast4}, partial.Missing)
	assert.Contains(t, partial.Error(), "missing mandatory fields")
}

func TestExtractPartialReportsOnlyAbsentFields(t *testing.T) {
	text := `
Card Number: 1111 XXXXXXXX 2222
Total Amount Due: 1,000.00
`
	_, err := fixedEngine().Extract(text, testRules())

	var partial *PartialExtractionError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, []Field{FieldDueDate}, partial.Missing)
}

func TestExtractOptionalFieldsMayBeAbsent(t *testing.T) {
	text := `
Card ending 5555
Payment Due Date: 25 Jun 2024
Total Amount Due: 780.00
`
	rec, err := fixedEngine().Extract(text, testRules())
	require.NoError(t, err)

	assert.Equal(t, "5555", rec.CardLast4)
	assert.Nil(t, rec.MinimumDue)
	assert.Nil(t, rec.StatementDate)
	// Without a statement date the due date keys the billing period.
	assert.Equal(t, "2024-06-25", rec.StatementPeriod())
}

func TestExtractPatternOrderWins(t *testing.T) {
	// Both card patterns could match; the first listed pattern is taken
	// even though the second appears earlier in the document.
	text := `
Card ending 1111
Card Number: 9999 XXXXXXXX 2222
Payment Due Date: 25 Jun 2024
Total Amount Due: 780.00
`
	rec, err := fixedEngine().Extract(text, testRules())
	require.NoError(t, err)
	assert.Equal(t, "2222", rec.CardLast4)
}

func TestExtractFirstMatchInDocumentOrder(t *testing.T) {
	text := `
Card ending 4444
Payment Due Date: 25 Jun 2024
Total Amount Due: 100.00
Total Amount Due: 999.99
`
	rec, err := fixedEngine().Extract(text, testRules())
	require.NoError(t, err)
	assert.Equal(t, "100", rec.AmountDue.String())
}

func TestExtractMaskedCardTakesLastGroup(t *testing.T) {
	text := `
Card Number: 1234 XXXXXXXX 5678
Payment Due Date: 25 Jun 2024
Total Amount Due: 780.00
`
	rec, err := fixedEngine().Extract(text, testRules())
	require.NoError(t, err)
	assert.Equal(t, "5678", rec.CardLast4)
}

func TestExtractImplausibleDueDateIsDropped(t *testing.T) {
	// A pattern misfire that matched a historical date must not produce
	// a record with a due date years in the past.
	text := `
Card ending 4444
Payment Due Date: 25 Jun 2019
Total Amount Due: 780.00
`
	_, err := fixedEngine().Extract(text, testRules())

	var partial *PartialExtractionError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, []Field{FieldDueDate}, partial.Missing)
}

func TestExtractUnparseableValueIsNonMatch(t *testing.T) {
	rules := []Rule{
		NewRule(FieldCardLast4, KindDigits, `ending\s+(\d{4})`),
		NewRule(FieldDueDate, KindDate, `due by\s+(\S+)`),
		NewRule(FieldAmountDue, KindAmount, `pay\s+(\S+)`),
	}
	text := "Card ending 1234\ndue by tomorrow\npay later"

	_, err := fixedEngine().Extract(text, rules)

	var partial *PartialExtractionError
	require.True(t, errors.As(err, &partial))
	assert.ElementsMatch(t, []Field{FieldDueDate, FieldAmountDue}, partial.Missing)
}

func TestExtractCaseInsensitiveAcrossLines(t *testing.T) {
	text := "CARD ENDING 7777\nPAYMENT DUE DATE: 25 JUN 2024\nTOTAL AMOUNT DUE: 1,500.00"

	rec, err := fixedEngine().Extract(text, testRules())
	require.NoError(t, err)
	assert.Equal(t, "7777", rec.CardLast4)
	assert.Equal(t, "1500", rec.AmountDue.String())
}
