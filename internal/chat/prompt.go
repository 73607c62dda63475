package chat

import (
	"fmt"
	"strings"

	"github.com/finnova/finnova/internal/session"
)

// persona is the fixed style preamble for every generated answer.
const persona = `Name: FinNova
Character: a financial analyst who explains things so anyone can follow, no rambling, no heavy jargon.
Strengths: salaries, taxes, personal finance, financial statements.
Tone: like a friend who is great with money. Direct and easy to understand.`

// buildAnswerPrompt assembles the generation prompt: persona, retrieved
// reference passages, prior conversation summary, and the raw user
// question, each under a fixed label, ending with the concision
// instruction.
func buildAnswerPrompt(context, summary, question string) string {
	var sb strings.Builder

	sb.WriteString(persona)
	sb.WriteString("\n\nReference information:\n")
	sb.WriteString(context)
	sb.WriteString("\n\nPrior conversation summary:\n")
	sb.WriteString(summary)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\nAnswer simply and concisely. Do not lecture.")

	return sb.String()
}

// buildSummaryPrompt asks for a 3-line summary of the whole transcript,
// rendered as alternating user:/assistant: lines in chronological order.
func buildSummaryPrompt(turns []session.Turn) string {
	var sb strings.Builder

	sb.WriteString("Summarize this conversation in 3 lines:\n")
	for _, t := range turns {
		fmt.Fprintf(&sb, "user: %s\nassistant: %s\n", t.User, t.Assistant)
	}

	return sb.String()
}
