/*
errors.go - Centralized error types for the loan engine

PURPOSE:
  All engine error types in one place. The engine fails fast: invalid
  terms or plans are rejected before any schedule computation, with no
  partial results. Callers (API, CLI, exporters) surface these errors
  as-is and must not attempt to repair the inputs.

ERROR CATEGORIES:
  1. Terms errors - Invalid loan parameters (principal, rate, term, convention)
  2. Plan errors  - Invalid prepayment or payoff period indices

NOT ERRORS:
  - A zero periodic rate (degenerate annuity, handled explicitly)
  - Prepayment/payoff periods beyond the loan's natural end (no-ops)

USAGE:
  if errors.Is(err, loan.ErrInvalidTerms) { ... }

  var termsErr *loan.TermsError
  if errors.As(err, &termsErr) {
      log.Printf("bad field: %s", termsErr.Field)
  }
*/
package loan

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTerms is returned when loan terms violate a constraint:
	// non-positive principal, negative rate, non-positive term or
	// payments-per-year, or an unrecognized repayment convention.
	ErrInvalidTerms = errors.New("invalid loan terms")

	// ErrInvalidPlan is returned when a prepayment plan violates a
	// constraint: a non-positive period index or a non-positive extra
	// amount. Periods beyond the natural schedule are tolerated.
	ErrInvalidPlan = errors.New("invalid prepayment plan")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the violated constraint
// =============================================================================

// TermsError identifies which terms field violated which constraint.
type TermsError struct {
	Field  string
	Reason string
}

func (e *TermsError) Error() string {
	return fmt.Sprintf("invalid loan terms: %s %s", e.Field, e.Reason)
}

func (e *TermsError) Unwrap() error {
	return ErrInvalidTerms
}

// PlanError identifies the offending prepayment plan entry. Period is 0
// when the violation is not tied to a specific period key.
type PlanError struct {
	Period int
	Reason string
}

func (e *PlanError) Error() string {
	if e.Period > 0 {
		return fmt.Sprintf("invalid prepayment plan: period %d %s", e.Period, e.Reason)
	}
	return fmt.Sprintf("invalid prepayment plan: %s", e.Reason)
}

func (e *PlanError) Unwrap() error {
	return ErrInvalidPlan
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTerms) || errors.Is(err, ErrInvalidPlan)
}
