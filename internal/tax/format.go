package tax

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders thousands-separated amounts (e.g. 440,000).
// Safe for concurrent use.
var printer = message.NewPrinter(language.English)

// baht formats an amount with thousand separators and at most two decimal
// places. Whole amounts render without a fraction.
func baht(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatBreakdown renders the fixed calculator answer for a breakdown.
//
// The structure is fixed: income and deduction lines, the net income shown
// as an explicit subtraction, the tax result (or a no-tax statement), and a
// one-line restatement of the net income formula.
func FormatBreakdown(b Breakdown) string {
	var sb strings.Builder

	sb.WriteString("Here is your tax calculation:\n\n")

	sb.WriteString("Income & deductions\n")
	fmt.Fprintf(&sb, "- Annual income: %s baht\n", baht(b.Annual))
	fmt.Fprintf(&sb, "- Flat-rate expenses (50%% of income, capped at 100,000): %s baht\n", baht(b.Expense))
	fmt.Fprintf(&sb, "- Personal allowance: %s baht\n\n", baht(b.Deduction))

	sb.WriteString("Net taxable income\n")
	fmt.Fprintf(&sb, "= %s - %s - %s\n", baht(b.Annual), baht(b.Expense), baht(b.Deduction))
	fmt.Fprintf(&sb, "= %s baht\n\n", baht(b.Net))

	sb.WriteString("Result\n")
	if b.Tax > 0 {
		fmt.Fprintf(&sb, "You owe %s baht in tax.\n\n", baht(b.Tax))
	} else {
		sb.WriteString("No tax owed: your net income is below the taxable threshold.\n\n")
	}

	sb.WriteString("Note: net income = annual income - expenses - allowances")

	return sb.String()
}
