package tax

import (
	"strings"
	"testing"
)

func TestFormatBreakdownWithTax(t *testing.T) {
	b, err := Compute(50_000)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	out := FormatBreakdown(b)

	// Fixed order: income lines, explicit subtraction, result, formula note.
	wantFragments := []string{
		"Annual income: 600,000 baht",
		"Flat-rate expenses (50% of income, capped at 100,000): 100,000 baht",
		"Personal allowance: 60,000 baht",
		"= 600,000 - 100,000 - 60,000",
		"= 440,000 baht",
		"You owe 21,500 baht in tax.",
		"net income = annual income - expenses - allowances",
	}

	pos := 0
	for _, frag := range wantFragments {
		idx := strings.Index(out[pos:], frag)
		if idx < 0 {
			t.Fatalf("missing or out-of-order fragment %q in:\n%s", frag, out)
		}
		pos += idx
	}
}

func TestFormatBreakdownNoTax(t *testing.T) {
	b, err := Compute(10_000)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	out := FormatBreakdown(b)

	if !strings.Contains(out, "No tax owed") {
		t.Errorf("expected no-tax statement, got:\n%s", out)
	}
	if strings.Contains(out, "You owe") {
		t.Errorf("unexpected tax-owed line for zero tax:\n%s", out)
	}
}
