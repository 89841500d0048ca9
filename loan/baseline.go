/*
baseline.go - No-prepayment interest baseline

PURPOSE:
  Re-runs the amortization recurrence with all prepayment and payoff
  inputs disabled, over the full natural horizon, to answer: "how much
  interest would this loan cost with no extra payments?" The difference
  against an actual schedule's interest is the borrower's savings.

PRECISION:
  Interest is accumulated UNROUNDED each period and rounded to 2
  decimals once at the end. This is a single comparison figure, not a
  per-period schedule, so no per-period rounding applies.
*/
package loan

import (
	"github.com/shopspring/decimal"
)

// BaselineInterest returns the total interest payable under the terms
// with no prepayment or payoff, rounded to 2 decimals.
func BaselineInterest(terms Terms) (decimal.Decimal, error) {
	if err := terms.validate(); err != nil {
		return decimal.Zero, err
	}

	rate := terms.PeriodicRate()
	totalPeriods := terms.TotalPeriods()
	balance := terms.Principal

	var payment, constPrincipal decimal.Decimal
	switch terms.Convention {
	case LevelPayment:
		payment = LevelPaymentAmount(terms.Principal, rate, totalPeriods)
	case LevelPrincipal:
		constPrincipal = terms.Principal.Div(decimal.NewFromInt(int64(totalPeriods)))
	}

	totalInterest := decimal.Zero
	for period := 1; period <= totalPeriods; period++ {
		interest := balance.Mul(rate)
		totalInterest = totalInterest.Add(interest)

		if terms.Convention == LevelPayment {
			balance = balance.Sub(payment.Sub(interest))
		} else {
			balance = balance.Sub(constPrincipal)
		}
	}

	return round2(totalInterest), nil
}

// InterestSaved is the interest avoided relative to the baseline,
// clamped at zero. Rounding can leave a schedule's summed interest a few
// cents above the baseline's end-rounded figure, which must not surface
// as negative savings.
func InterestSaved(baseline, totalInterest decimal.Decimal) decimal.Decimal {
	saved := baseline.Sub(totalInterest)
	if saved.IsNegative() {
		return decimal.Zero
	}
	return saved
}
