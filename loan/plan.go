/*
plan.go - Prepayment and payoff inputs

PURPOSE:
  A PrepaymentPlan carries the optional extras a borrower pays on top of
  the scheduled amounts: per-period extra principal, and an optional
  one-time full payoff at a specific period.

VALIDATION:
  Period keys and the payoff period must be >= 1; extra amounts must be
  strictly positive. Keys beyond the loan's natural end are NOT errors -
  the schedule simply never reaches them.

LOOKUP SEMANTICS:
  ExtraFor returns a zero amount for periods with no entry, so the
  schedule loop never distinguishes "absent" from "zero".
*/
package loan

import (
	"github.com/shopspring/decimal"
)

// PrepaymentPlan is an immutable set of extra principal payments keyed by
// 1-based period index, plus an optional full-payoff period. The zero
// value is a valid empty plan.
type PrepaymentPlan struct {
	extras map[int]decimal.Decimal
	payoff int // 0 = no full payoff
}

// EmptyPlan returns a plan with no prepayments and no payoff.
func EmptyPlan() PrepaymentPlan {
	return PrepaymentPlan{}
}

// NewPrepaymentPlan validates and builds a plan. The extras map is copied;
// payoffPeriod of 0 means no full payoff.
func NewPrepaymentPlan(extras map[int]float64, payoffPeriod int) (PrepaymentPlan, error) {
	p := PrepaymentPlan{payoff: payoffPeriod}
	if len(extras) > 0 {
		p.extras = make(map[int]decimal.Decimal, len(extras))
		for period, amount := range extras {
			p.extras[period] = decimal.NewFromFloat(amount)
		}
	}
	if err := p.validate(); err != nil {
		return PrepaymentPlan{}, err
	}
	return p, nil
}

func (p PrepaymentPlan) validate() error {
	for period, amount := range p.extras {
		if period <= 0 {
			return &PlanError{Period: period, Reason: "index must be positive"}
		}
		if !amount.IsPositive() {
			return &PlanError{Period: period, Reason: "extra amount must be positive"}
		}
	}
	if p.payoff < 0 {
		return &PlanError{Period: p.payoff, Reason: "payoff index must be positive"}
	}
	return nil
}

// ExtraFor returns the extra principal for a period, zero if absent.
func (p PrepaymentPlan) ExtraFor(period int) decimal.Decimal {
	if amount, ok := p.extras[period]; ok {
		return amount
	}
	return decimal.Zero
}

// Payoff returns the full-payoff period and whether one is set.
func (p PrepaymentPlan) Payoff() (int, bool) {
	return p.payoff, p.payoff > 0
}

// IsEmpty reports whether the plan changes nothing.
func (p PrepaymentPlan) IsEmpty() bool {
	return len(p.extras) == 0 && p.payoff == 0
}

// Extras returns a copy of the per-period extras as floats, for
// serialization by presentation layers.
func (p PrepaymentPlan) Extras() map[int]float64 {
	if len(p.extras) == 0 {
		return nil
	}
	out := make(map[int]float64, len(p.extras))
	for period, amount := range p.extras {
		out[period], _ = amount.Float64()
	}
	return out
}
