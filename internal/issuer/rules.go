package issuer

import "github.com/finwatch/cc-statement-tracker/internal/statement"

// DefaultProfiles returns the built-in issuer profiles. Each profile is
// pure data: sender domains plus ordered extraction rules per field,
// most-specific pattern first. Adding a bank means adding a profile
// here, never branching in the engine.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Issuer:  SBI,
			Domains: []string{"sbicard.com", "sbi.co.in"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`XXXX XXXX XXXX (\w+)`,
					`Credit Card Number.*?XXXX XXXX XXXX (\w+)`,
					`XXXX\s+XXXX\s+XXXX\s+XX(\d{2,4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					`Statement\s*Date\s*[:\-]?\s*(\d{2}\s+[A-Za-z]{3}\s+\d{4})`,
					`Statement\s*Date\s*[:\-]?\s*(\d{1,2}\s+[A-Za-z]+\s+\d{4})`,
					`Statement.*?Date.*?(\d{2}/\d{2}/\d{4})`,
					`Statement.*?(\d{2}-\d{2}-\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					`Total Payment Due\s*[:\-]?\s*₹?\s*([\d,]+\.\d{2})`,
					`Total Amount Due\s*[:\-]?\s*₹?\s*([\d,]+\.\d{2})`,
					`\*Total Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					// Label on one line, date on the next line or far right.
					`Payment\s+Due\s+Date[\s:\-.]*?(?:\r?\n|\s)+.*?([0-3]?\d\s+[A-Za-z]{3}\s+\d{4})`,
					`Payment\s+Due\s+Date[\s:\-.]*?(?:\r?\n|\s)+.*?(\d{2}/\d{2}/\d{4})`,
					`Payment\s+Due\s+Date[\s:\-.]*?(?:\r?\n|\s)+.*?(\d{2}-[A-Za-z]{3}-\d{4})`,
					`(?:Total\s+)?Payment\s+Due\s+Date\s*[:\-]?\s*([0-3]?\d\s+[A-Za-z]{3}\s+\d{4})`,
					`Payment\s+Due\s+Date\s*[:\-]?\s*(\d{2}-[A-Za-z]{3}-\d{4})`,
					`Payment\s+Due\s+Date\s*[:\-]?\s*(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					`Minimum\s+(?:Amount|Payment)\s+Due\s*[:\-]?\s*₹?\s*([\d,]+\.\d{2})`,
					`\*\*Minimum Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					`Credit\s+Limit\s*\(.*?\)\s*[:\-]?\s*₹?\s*([\d,]+\.\d{2})`,
					`Credit\s+Limit.*?₹?\s*([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					`Available\s+Credit\s+Limit\s*[:\-]?\s*₹?\s*([\d,]+\.\d{2})`,
					`Available.*?Limit.*?₹?\s*([\d,]+\.\d{2})`,
				),
			},
		},
		{
			Issuer:  IndusInd,
			Domains: []string{"indusind.com"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`Credit Card No\. (\d{4})XXXXXXXX(\d{4})`,
					`Credit Card No\.\s+\d{4}X+(\d{4})`,
					`Card.*?No.*?(\d{4})XXXXXXXX(\d{4})`,
					`(\d{4})\*+(\d{4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					`Statement Date\s+(\d{2}/\d{2}/\d{4})`,
					`Statement.*?Date.*?(\d{2}/\d{2}/\d{4})`,
					`Statement.*?(\d{2}-\d{2}-\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					`Total Amount Due[\s\S]*?([\d,]+\.\d{2}) DR`,
					`Total Amount Due\s+([\d,]+\.\d{2})\s+DR`,
					`Total.*?Due.*?([\d,]+\.\d{2})`,
					`Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					`Payment Due Date\s+(\d{2}/\d{2}/\d{4})`,
					`Due Date.*?(\d{2}/\d{2}/\d{4})`,
					`Pay.*?by.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					`Minimum Amount Due\s+([\d,]+\.\d{2})`,
					`Min.*?Due.*?([\d,]+\.\d{2})`,
					`MAD.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					`Credit.*?Credit Limit\s+([\d,]+\.\d{2})`,
					`Total.*?Limit.*?([\d,]+\.\d{2})`,
					`Credit Limit.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					`Available Credit Limit\s+([\d,]+\.\d{2})`,
					`Available.*?Limit.*?([\d,]+\.\d{2})`,
				),
			},
		},
		{
			Issuer:  Axis,
			Domains: []string{"axisbank.com"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`(\d{6})\*+(\d{4})`,
					`(\d{4})\*+(\d{4})`,
					`Card.*?(\d{6})\*+(\d{4})`,
					`Neo.*?(\d{6})\*+(\d{4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					`Statement\s*Date\s*[:\-]?\s*(\d{2}/\d{2}/\d{4})`,
					`Generation\s*Date\s*[:\-]?\s*(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					`([\d,]+\.\d{2}) Dr\s+([\d,]+\.\d{2}) Dr`,
					`Total Payment Due.*?([\d,]+\.\d{2})`,
					`Total.*?Due.*?([\d,]+\.\d{2}) Dr`,
					`Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					`(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})\s*$`,
					`Payment Due Date.*?(\d{2}/\d{2}/\d{4})`,
					`Due.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					`([\d,]+\.\d{2}) Dr\s+([\d,]+\.\d{2}) Dr`,
					`Minimum Payment Due.*?([\d,]+\.\d{2})`,
					`Min.*?Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					`Credit Limit\s+([\d,]+\.\d{2})`,
					`Total.*?Limit.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					`Available Credit Limit\s+([\d,]+\.\d{2})`,
					`Available.*?Limit.*?([\d,]+\.\d{2})`,
				),
			},
		},
		{
			Issuer:  ICICI,
			Domains: []string{"icicibank.com"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`(\d{4})XXXXXXXX(\d{4})`,
					`(\d{4})\*+(\d{4})`,
					`Card.*?(\d{4})XXXXXXXX(\d{4})`,
					`Credit Card.*?(\d{4})\*+(\d{4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					// Doubled letters come from the layered fonts in ICICI PDFs.
					`SSTTAATTEEMMEENNTT DDAATTEE\s+(\w+ \d{1,2}, \d{4})`,
					`Statement.*?Date.*?(\w+ \d{1,2}, \d{4})`,
					`Statement.*?(\d{2}/\d{2}/\d{4})`,
					`STATEMENT.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					"Total Amount due\\s+-\\s+`([\\d,]+\\.\\d{2})",
					"Total.*?due.*?`([\\d,]+\\.\\d{2})",
					`Total Amount.*?([\d,]+\.\d{2})`,
					`Amount due.*?([\d,]+\.\d{2})`,
					`TOTAL\s+([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					`PPAAYYMMEENNTT DDUUEE DDAATTEE\s+(\w+ \d{1,2}, \d{4})`,
					`Payment.*?Due.*?Date.*?(\w+ \d{1,2}, \d{4})`,
					`Due Date.*?(\d{2}/\d{2}/\d{4})`,
					`PAYMENT.*?DUE.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					"Minimum Amount due.*?`([\\d,]+\\.\\d{2})",
					`Minimum.*?due.*?([\d,]+\.\d{2})`,
					`Min.*?Amount.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					"Credit Limit \\(Including cash\\).*?`([\\d,]+\\.\\d{2})",
					"Credit Limit.*?`([\\d,]+\\.\\d{2})",
					`Total.*?Limit.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					"Available Credit \\(Including cash\\).*?`([\\d,]+\\.\\d{2})",
					"Available.*?Credit.*?`([\\d,]+\\.\\d{2})",
					`Available.*?([\d,]+\.\d{2})`,
				),
			},
		},
		{
			Issuer:  Kotak,
			Domains: []string{"kotak.com"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`(\d{4})XXXXXXXX(\d{4})`,
					`(\d{4})\*+(\d{4})`,
					`Card.*?(\d{4})XXXXXXXX(\d{4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					`Statement Date (\d{2}-\w{3}-\d{4})`,
					`Statement.*?Date.*?(\d{2}-\w{3}-\d{4})`,
					`Statement.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					`Total Amount Due \(TAD\) Rs\.([\d,]+\.\d{2})`,
					`Total.*?Due.*?Rs\.([\d,]+\.\d{2})`,
					`TAD.*?Rs\.([\d,]+\.\d{2})`,
					`Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					`Remember to pay by (\d{2}-\w{3}-\d{4})`,
					`Pay by (\d{2}-\w{3}-\d{4})`,
					`Due.*?(\d{2}-\w{3}-\d{4})`,
					`Payment.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					`Minimum Amount Due \(MAD\) Rs\.([\d,]+\.\d{2})`,
					`MAD.*?Rs\.([\d,]+\.\d{2})`,
					`Minimum.*?Rs\.([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					`Total Credit Limit \(incl\.cash\): Rs\.([\d,]+\.\d{2})`,
					`Credit Limit.*?Rs\.([\d,]+\.\d{2})`,
					`Total.*?Limit.*?Rs\.([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					`Available Credit Limit: Rs\.([\d,]+\.\d{2})`,
					`Available.*?Rs\.([\d,]+\.\d{2})`,
					`Available.*?Limit.*?([\d,]+\.\d{2})`,
				),
			},
		},
		{
			Issuer:  RBL,
			Domains: []string{"rblbank.com"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`XXXXXXXXXXXXXX(\d{2})`,
					`(\d{4})\*+(\d{4})`,
					`Card.*?(\d{4})\*+(\d{4})`,
					`XXXX.*?(\d{4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					`Statement Date\s+(\d{2}-\d{2}-\d{4})`,
					`Statement.*?Date.*?(\d{2}-\d{2}-\d{4})`,
					`Statement.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					`Total Amount Due\s+([\d,]+\.\d{2})`,
					`Total.*?Due.*?([\d,]+\.\d{2})`,
					`Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					`Payment Due Date\s+(\d{2} \w{3} \d{4})`,
					`Due Date.*?(\d{2} \w{3} \d{4})`,
					`Payment.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					`Min\. Amt\. Due\s+([\d,]+\.\d{2})`,
					`Minimum.*?Due.*?([\d,]+\.\d{2})`,
					`Min.*?Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					`Total Credit Limit\s+([\d,]+\.\d{2})`,
					`Credit Limit.*?([\d,]+\.\d{2})`,
					`Total.*?Limit.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					`Available Credit Limit\s+([\d,]+\.\d{2})`,
					`Available.*?Limit.*?([\d,]+\.\d{2})`,
				),
			},
		},
		{
			Issuer:  HDFC,
			Domains: []string{"hdfcbank.com", "hdfcbank.net"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`(\d{4})\s*\*+\s*(\d{4})`,
					`(\d{4})XXXXXXXX(\d{4})`,
					`Card.*?(\d{4})\*+(\d{4})`,
					`HDFC.*?(\d{4})\*+(\d{4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					`Statement Date\s*:?\s*(\d{2}/\d{2}/\d{4})`,
					`Statement.*?(\d{2}-\d{2}-\d{4})`,
					`Date.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					`Total Amount Due\s*:?\s*Rs\.?\s*([\d,]+\.\d{2})`,
					`Total.*?Due.*?Rs\.?\s*([\d,]+\.\d{2})`,
					`Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					`Payment Due Date\s*:?\s*(\d{2}/\d{2}/\d{4})`,
					`Due Date.*?(\d{2}/\d{2}/\d{4})`,
					`Pay.*?by.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					`Minimum Amount Due\s*:?\s*Rs\.?\s*([\d,]+\.\d{2})`,
					`Min.*?Due.*?Rs\.?\s*([\d,]+\.\d{2})`,
					`Minimum.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					`Credit Limit\s*:?\s*Rs\.?\s*([\d,]+\.\d{2})`,
					`Total.*?Limit.*?Rs\.?\s*([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					`Available Credit\s*:?\s*Rs\.?\s*([\d,]+\.\d{2})`,
					`Available.*?Rs\.?\s*([\d,]+\.\d{2})`,
				),
			},
		},
		{
			Issuer:  BOB,
			Domains: []string{"bobcard.co.in", "bankofbaroda.co.in"},
			Rules: []statement.Rule{
				statement.NewRule(statement.FieldCardLast4, statement.KindDigits,
					`(\d{4})\s*\*+\s*(\d{4})`,
					`(\d{4})XXXXXXXX(\d{4})`,
					`Card.*?(\d{4})\*+(\d{4})`,
				),
				statement.NewRule(statement.FieldStatementDate, statement.KindDate,
					`Statement Date\s*:?\s*(\d{2}/\d{2}/\d{4})`,
					`Statement.*?(\d{2}-\d{2}-\d{4})`,
					`Date.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldAmountDue, statement.KindAmount,
					`Total Amount Due\s*:?\s*([\d,]+\.\d{2})`,
					`Total.*?Due.*?([\d,]+\.\d{2})`,
					`Amount Due.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldDueDate, statement.KindDate,
					`Payment Due Date\s*:?\s*(\d{2}/\d{2}/\d{4})`,
					`Due Date.*?(\d{2}/\d{2}/\d{4})`,
					`Pay.*?by.*?(\d{2}/\d{2}/\d{4})`,
				),
				statement.NewRule(statement.FieldMinimumDue, statement.KindAmount,
					`Minimum Amount Due\s*:?\s*([\d,]+\.\d{2})`,
					`Min.*?Due.*?([\d,]+\.\d{2})`,
					`Minimum.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldCreditLimit, statement.KindAmount,
					`Credit Limit\s*:?\s*([\d,]+\.\d{2})`,
					`Total.*?Limit.*?([\d,]+\.\d{2})`,
				),
				statement.NewRule(statement.FieldAvailableLimit, statement.KindAmount,
					`Available Credit\s*:?\s*([\d,]+\.\d{2})`,
					`Available.*?([\d,]+\.\d{2})`,
				),
			},
		},
	}
}
