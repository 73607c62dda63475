package tax

import (
	"errors"
	"math"
)

// ErrInvalidSalary indicates the monthly salary is not a finite,
// non-negative number.
var ErrInvalidSalary = errors.New("invalid salary")

// Deduction constants, in baht per year.
const (
	// ExpenseRate is the flat-rate expense deduction applied to annual income.
	ExpenseRate = 0.5

	// ExpenseCap is the ceiling on the flat-rate expense deduction.
	ExpenseCap = 100_000

	// PersonalDeduction is the fixed personal allowance.
	PersonalDeduction = 60_000
)

// bracket is one slice of the progressive schedule. Width is the marginal
// width of the bracket, not a cumulative threshold.
type bracket struct {
	width float64
	rate  float64
}

// schedule is the progressive personal income tax schedule, processed in
// order. The final bracket is unbounded.
var schedule = []bracket{
	{150_000, 0},
	{150_000, 0.05},
	{200_000, 0.10},
	{250_000, 0.15},
	{250_000, 0.20},
	{1_000_000, 0.25},
	{3_000_000, 0.30},
	{math.Inf(1), 0.35},
}

// Breakdown is the result of a tax computation. All fields are non-negative
// amounts in baht, derived deterministically from one monthly salary.
type Breakdown struct {
	Annual    float64 // annual income (salary × 12)
	Expense   float64 // flat-rate expense deduction
	Deduction float64 // personal allowance
	Net       float64 // net taxable income, floored at the computation level
	Tax       float64 // total tax owed
}

// Compute calculates the tax breakdown for the given monthly salary.
// Returns ErrInvalidSalary if the salary is negative, NaN, or infinite.
func Compute(monthlySalary float64) (Breakdown, error) {
	if monthlySalary < 0 || math.IsNaN(monthlySalary) || math.IsInf(monthlySalary, 0) {
		return Breakdown{}, ErrInvalidSalary
	}

	annual := monthlySalary * 12
	expense := math.Min(annual*ExpenseRate, ExpenseCap)
	net := annual - expense - PersonalDeduction

	b := Breakdown{
		Annual:    annual,
		Expense:   expense,
		Deduction: PersonalDeduction,
		Net:       net,
	}

	if net <= 0 {
		return b, nil
	}

	var tax float64
	remain := net
	for _, br := range schedule {
		if remain <= 0 {
			break
		}
		amt := math.Min(remain, br.width)
		tax += amt * br.rate
		remain -= amt
	}

	b.Tax = tax
	return b, nil
}
