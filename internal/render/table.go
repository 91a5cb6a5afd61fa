// Package render formats stored bills as a terminal summary table.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/finwatch/cc-statement-tracker/internal/store"
)

// BillTable writes a per-user summary of stored bills. Read-only; the
// renderer never mutates records.
func BillTable(w io.Writer, user string, bills []store.Bill) {
	if len(bills) == 0 {
		fmt.Fprintf(w, "No bills found for user %q.\n", user)
		return
	}

	fmt.Fprintf(w, "\nCredit Card Bills - %s\n", user)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Bank", "Card", "Min Due", "Total Due", "Due Date",
		"Available Limit", "Statement Date", "Credit Limit",
	})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, b := range bills {
		table.Append([]string{
			b.Issuer,
			b.CardLast4,
			amount(b.MinDue),
			"₹" + b.TotalDue.StringFixed(2),
			b.DueDate.Format("2006-01-02"),
			amount(b.AvailableLimit),
			date(b.StatementDate),
			amount(b.CreditLimit),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func amount(d *decimal.Decimal) string {
	if d == nil {
		return "N/A"
	}
	return "₹" + d.StringFixed(2)
}

func date(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}
