/*
summary.go - Aggregate view over a computed schedule

PURPOSE:
  Bundles everything a presentation layer needs for summary display:
  the echoed terms, the per-period payment (level payment only), the
  schedule aggregates, and the savings against the no-prepayment
  baseline. Exporters, printers and the API all consume this type
  instead of re-deriving figures.
*/
package loan

import (
	"github.com/shopspring/decimal"
)

// Summary aggregates a schedule with its baseline comparison.
type Summary struct {
	Terms   Terms
	Periods int // actual schedule length (may be < Terms.TotalPeriods())

	// Payment is the constant per-period payment, set only when the
	// convention is LevelPayment.
	Payment    decimal.Decimal
	HasPayment bool

	TotalPayment     decimal.Decimal
	TotalInterest    decimal.Decimal
	BaselineInterest decimal.Decimal
	InterestSaved    decimal.Decimal
}

// Summarize computes the schedule for the terms and plan along with the
// aggregates and baseline comparison. The schedule is returned so the
// caller does not pay for a second generation.
func Summarize(terms Terms, plan PrepaymentPlan) (Summary, Schedule, error) {
	schedule, err := Generate(terms, plan)
	if err != nil {
		return Summary{}, nil, err
	}
	baseline, err := BaselineInterest(terms)
	if err != nil {
		return Summary{}, nil, err
	}

	totalInterest := schedule.TotalInterest()
	s := Summary{
		Terms:            terms,
		Periods:          len(schedule),
		TotalPayment:     schedule.TotalPayment(),
		TotalInterest:    totalInterest,
		BaselineInterest: baseline,
		InterestSaved:    InterestSaved(baseline, totalInterest),
	}
	if payment, ok := terms.Payment(); ok {
		s.Payment = payment
		s.HasPayment = true
	}
	return s, schedule, nil
}
