package chat

import (
	"regexp"
	"strconv"
)

// Kind is the classification of a user message.
type Kind int

const (
	// KindGeneral routes to the retrieval+generation path.
	KindGeneral Kind = iota

	// KindTax routes to the deterministic tax calculator.
	KindTax
)

// Intent is the result of classifying one user message.
type Intent struct {
	Kind   Kind
	Salary int64 // monthly salary in baht; set only when Kind == KindTax
}

// salaryPattern matches the salary keyword immediately followed by optional
// whitespace and a digit sequence, anywhere in the message. The Thai
// keyword matches the reference behavior; the English one is accepted as
// well.
var salaryPattern = regexp.MustCompile(`(?i)(?:เงินเดือน|salary)\s*(\d+)`)

// ParseIntent classifies a user message.
//
// Only the first salary mention drives the classification; additional
// matches in the same message are ignored. A digit capture that does not
// fit in an int64 is treated as no match and falls through to the general
// path rather than surfacing an error.
func ParseIntent(text string) Intent {
	m := salaryPattern.FindStringSubmatch(text)
	if m == nil {
		return Intent{Kind: KindGeneral}
	}

	salary, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// Overflow on an absurdly long digit run. Safer to answer
		// conversationally than to guess a number.
		return Intent{Kind: KindGeneral}
	}

	return Intent{Kind: KindTax, Salary: salary}
}
