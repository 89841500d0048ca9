/*
Package loan provides the core amortization and prepayment engine.

PURPOSE:
  This package contains the pure financial logic: deriving the constant
  payment for a level-payment loan, generating the period-by-period
  amortization schedule (with optional prepayments and early payoff),
  and computing the interest a borrower saves relative to a
  no-prepayment baseline.

KEY CONCEPTS IN THIS FILE (types.go):
  - Convention: The repayment convention (level payment / level principal)
  - Terms: Immutable loan input (principal, rate, term, periods per year)
  - PeriodRecord: One row of the amortization schedule
  - Schedule: The ordered sequence of PeriodRecords with aggregates

DESIGN PRINCIPLES:
  1. Immutability: Terms and PrepaymentPlan are built once, never mutated
  2. Precision: Uses decimal.Decimal to avoid floating-point errors; the
     running balance is carried unrounded and only rounded for reporting
  3. Purity: Every operation is a pure function of its inputs; schedules
     are recomputed fully on each request, never cached internally

USAGE:
  terms, err := loan.NewMonthlyTerms(1_000_000, 0.048, 30, loan.LevelPayment)
  schedule, err := loan.Generate(terms, loan.EmptyPlan())
  total := schedule.TotalInterest()

SEE ALSO:
  - plan.go: Prepayment and payoff inputs
  - schedule.go: The period recurrence
  - baseline.go: No-prepayment comparison
*/
package loan

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CONVENTION - Repayment convention (closed set)
// =============================================================================

// Convention identifies how each period's payment is split.
type Convention string

const (
	// LevelPayment keeps the total payment constant every period; the
	// principal/interest mix shifts over time (annuity).
	LevelPayment Convention = "level_payment"

	// LevelPrincipal keeps the principal component constant every period;
	// interest and total payment decline over time.
	LevelPrincipal Convention = "level_principal"
)

// Valid reports whether the convention is one of the known values.
// Unknown strings are rejected at Terms construction, never defaulted.
func (c Convention) Valid() bool {
	return c == LevelPayment || c == LevelPrincipal
}

// DefaultPaymentsPerYear is the monthly repayment calendar.
const DefaultPaymentsPerYear = 12

// =============================================================================
// TERMS - Immutable loan input
// =============================================================================

// Terms describes a loan. Construct via NewTerms or NewMonthlyTerms;
// a zero Terms value fails validation everywhere it is used.
type Terms struct {
	Principal       decimal.Decimal
	AnnualRate      decimal.Decimal // nominal, e.g. 0.048 for 4.8%
	Years           int
	PaymentsPerYear int
	Convention      Convention
}

// NewTerms validates and builds loan terms.
func NewTerms(principal, annualRate float64, years, paymentsPerYear int, convention Convention) (Terms, error) {
	t := Terms{
		Principal:       decimal.NewFromFloat(principal),
		AnnualRate:      decimal.NewFromFloat(annualRate),
		Years:           years,
		PaymentsPerYear: paymentsPerYear,
		Convention:      convention,
	}
	if err := t.validate(); err != nil {
		return Terms{}, err
	}
	return t, nil
}

// NewMonthlyTerms builds terms with the default monthly calendar.
func NewMonthlyTerms(principal, annualRate float64, years int, convention Convention) (Terms, error) {
	return NewTerms(principal, annualRate, years, DefaultPaymentsPerYear, convention)
}

func (t Terms) validate() error {
	switch {
	case !t.Principal.IsPositive():
		return &TermsError{Field: "principal", Reason: "must be positive"}
	case t.AnnualRate.IsNegative():
		return &TermsError{Field: "annual_rate", Reason: "must not be negative"}
	case t.Years <= 0:
		return &TermsError{Field: "years", Reason: "must be positive"}
	case t.PaymentsPerYear <= 0:
		return &TermsError{Field: "payments_per_year", Reason: "must be positive"}
	case !t.Convention.Valid():
		return &TermsError{Field: "convention", Reason: "unknown convention " + string(t.Convention)}
	}
	return nil
}

// PeriodicRate is the annual nominal rate divided by payments per year.
func (t Terms) PeriodicRate() decimal.Decimal {
	return t.AnnualRate.Div(decimal.NewFromInt(int64(t.PaymentsPerYear)))
}

// TotalPeriods is the natural schedule length.
func (t Terms) TotalPeriods() int {
	return t.Years * t.PaymentsPerYear
}

// =============================================================================
// SCHEDULE - Ordered per-period breakdown
// =============================================================================

// PeriodRecord is one row of the amortization schedule. All monetary
// fields are rounded to 2 decimal places when the record is built.
type PeriodRecord struct {
	Period    int             // 1-based, sequential
	Principal decimal.Decimal // principal paid this period (incl. prepayment)
	Interest  decimal.Decimal // interest paid this period
	Total     decimal.Decimal // total paid this period
	Balance   decimal.Decimal // remaining balance after this period, >= 0
}

// Schedule is the chronological sequence of period records. It terminates
// at the natural period count or earlier once the balance reaches zero.
type Schedule []PeriodRecord

// TotalPayment sums the rounded per-period totals.
func (s Schedule) TotalPayment() decimal.Decimal {
	sum := decimal.Zero
	for _, rec := range s {
		sum = sum.Add(rec.Total)
	}
	return sum
}

// TotalInterest sums the rounded per-period interest.
func (s Schedule) TotalInterest() decimal.Decimal {
	sum := decimal.Zero
	for _, rec := range s {
		sum = sum.Add(rec.Interest)
	}
	return sum
}

// Final returns the last record, if any.
func (s Schedule) Final() (PeriodRecord, bool) {
	if len(s) == 0 {
		return PeriodRecord{}, false
	}
	return s[len(s)-1], true
}

// round2 rounds a monetary amount to 2 decimal places for reporting.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
