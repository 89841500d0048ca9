/*
schedule.go - The period-by-period amortization recurrence

PURPOSE:
  Generates the full amortization schedule for a loan, applying
  per-period prepayments and an optional one-time full payoff, tracking
  the remaining balance until the loan terminates.

ALGORITHM (per period, starting at 1 with balance = principal):
  1. Stop if the balance is already zero.
  2. interest = balance * periodicRate
  3. Scheduled principal component:
       level payment:   payment - interest
       level principal: principal / totalPeriods (constant)
  4. Add the plan's extra for this period to the principal component.
  5. Cap the principal component at the remaining balance. A
     caller-entered prepayment may exceed what is actually owed; the
     balance must never go negative and the borrower must never overpay,
     so the period total is recomputed from the capped component.
  6. If this is the plan's payoff period and a balance remains, clear it:
     the remainder joins both the principal component and the total.
  7. Round the four monetary fields to 2 decimals and emit the record.
  8. Terminate early once the balance reaches zero.

PRECISION:
  The running balance is carried UNROUNDED across periods; rounding
  happens only on the emitted record. Feeding rounded balances forward
  would compound rounding error over long schedules.
*/
package loan

import (
	"github.com/shopspring/decimal"
)

// Generate produces the amortization schedule for the given terms and
// plan. Inputs are validated before any computation; the result is a
// pure function of the inputs and is recomputed fully on every call.
func Generate(terms Terms, plan PrepaymentPlan) (Schedule, error) {
	if err := terms.validate(); err != nil {
		return nil, err
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}

	rate := terms.PeriodicRate()
	totalPeriods := terms.TotalPeriods()
	balance := terms.Principal

	// Per-convention constants, computed once before the loop.
	var payment, constPrincipal decimal.Decimal
	switch terms.Convention {
	case LevelPayment:
		payment = LevelPaymentAmount(terms.Principal, rate, totalPeriods)
	case LevelPrincipal:
		constPrincipal = terms.Principal.Div(decimal.NewFromInt(int64(totalPeriods)))
	}

	payoffPeriod, hasPayoff := plan.Payoff()

	schedule := make(Schedule, 0, totalPeriods)
	for period := 1; period <= totalPeriods; period++ {
		if !balance.IsPositive() {
			break
		}

		interest := balance.Mul(rate)

		var principal decimal.Decimal
		if terms.Convention == LevelPayment {
			principal = payment.Sub(interest)
		} else {
			principal = constPrincipal
		}
		principal = principal.Add(plan.ExtraFor(period))

		// Never pay down more than is owed.
		if principal.GreaterThan(balance) {
			principal = balance
		}
		balance = balance.Sub(principal)
		total := interest.Add(principal)

		// Full payoff clears whatever remains after this period's
		// scheduled and extra payments.
		if hasPayoff && period == payoffPeriod && balance.IsPositive() {
			principal = principal.Add(balance)
			total = total.Add(balance)
			balance = decimal.Zero
		}

		schedule = append(schedule, PeriodRecord{
			Period:    period,
			Principal: round2(principal),
			Interest:  round2(interest),
			Total:     round2(total),
			Balance:   round2(balance),
		})

		if !balance.IsPositive() {
			break
		}
	}

	return schedule, nil
}
