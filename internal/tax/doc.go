// Package tax implements the deterministic Thai personal income tax
// calculation used by the calculator path of the chat engine.
//
// The computation follows the flat-rate expense deduction (50% of annual
// income, capped) plus the fixed personal allowance, then applies the
// progressive bracket schedule to the remaining net income. It is a pure
// function: no I/O, no hidden state, identical output for identical input.
package tax
