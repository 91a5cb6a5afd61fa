package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finwatch/cc-statement-tracker/internal/store"
)

func TestBillTable(t *testing.T) {
	stmtDate := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	minDue := decimal.RequireFromString("623.00")

	bills := []store.Bill{
		{
			Issuer:        "rbl",
			CardLast4:     "26",
			TotalDue:      decimal.RequireFromString("12450.75"),
			MinDue:        &minDue,
			DueDate:       time.Date(2024, time.May, 28, 0, 0, 0, 0, time.UTC),
			StatementDate: &stmtDate,
		},
		{
			Issuer:    "hdfc",
			CardLast4: "0042",
			TotalDue:  decimal.RequireFromString("23199.10"),
			DueDate:   time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	BillTable(&buf, "rahul", bills)
	out := buf.String()

	assert.Contains(t, out, "Credit Card Bills - rahul")
	assert.Contains(t, out, "rbl")
	assert.Contains(t, out, "₹12450.75")
	assert.Contains(t, out, "₹623.00")
	assert.Contains(t, out, "2024-05-28")
	// Absent optional values render as N/A.
	assert.Contains(t, out, "N/A")
}

func TestBillTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	BillTable(&buf, "rahul", nil)

	assert.Contains(t, buf.String(), `No bills found for user "rahul"`)
}
