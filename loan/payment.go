/*
payment.go - Level payment (annuity) calculator

PURPOSE:
  Derives the constant per-period payment for the level-payment
  convention from the closed-form annuity formula:

      A = P * r * (1+r)^N / ((1+r)^N - 1)

  where P is the principal, r the periodic rate and N the period count.

ZERO-RATE CASE:
  r = 0 is valid, not an error: (1+0)^N - 1 = 0 would divide by zero, so
  the payment degenerates to P / N.

PRECISION:
  (1+r)^N is computed exactly in decimal; only the final division is
  subject to decimal's division precision. The result is returned
  unrounded so the schedule can carry it without compounding error.
*/
package loan

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// LevelPaymentAmount returns the constant per-period payment for a
// level-payment loan. Pure function; totalPeriods must be positive and
// periodicRate non-negative (guaranteed by Terms validation).
func LevelPaymentAmount(principal, periodicRate decimal.Decimal, totalPeriods int) decimal.Decimal {
	n := decimal.NewFromInt(int64(totalPeriods))
	if periodicRate.IsZero() {
		return principal.Div(n)
	}
	growth := one.Add(periodicRate).Pow(n) // (1+r)^N
	return principal.Mul(periodicRate).Mul(growth).Div(growth.Sub(one))
}

// Payment returns the rounded per-period payment for level-payment terms.
// For level-principal terms the total payment varies by period, so no
// single payment exists and false is returned.
func (t Terms) Payment() (decimal.Decimal, bool) {
	if t.Convention != LevelPayment {
		return decimal.Zero, false
	}
	return round2(LevelPaymentAmount(t.Principal, t.PeriodicRate(), t.TotalPeriods())), true
}
