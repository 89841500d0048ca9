package loan

import (
	"errors"
	"testing"
)

// =============================================================================
// TERMS VALIDATION
// =============================================================================

func TestNewTerms_Valid(t *testing.T) {
	terms, err := NewMonthlyTerms(1_000_000, 0.048, 30, LevelPayment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := terms.TotalPeriods(); got != 360 {
		t.Errorf("expected 360 total periods, got %d", got)
	}
	if got := terms.PeriodicRate(); !got.Equal(dec("0.004")) {
		t.Errorf("expected periodic rate 0.004, got %s", got)
	}
}

func TestNewTerms_Invalid(t *testing.T) {
	cases := []struct {
		name            string
		principal       float64
		annualRate      float64
		years           int
		paymentsPerYear int
		convention      Convention
	}{
		{"zero principal", 0, 0.05, 10, 12, LevelPayment},
		{"negative principal", -100, 0.05, 10, 12, LevelPayment},
		{"negative rate", 100, -0.01, 10, 12, LevelPayment},
		{"zero years", 100, 0.05, 0, 12, LevelPayment},
		{"zero payments per year", 100, 0.05, 10, 0, LevelPayment},
		{"unknown convention", 100, 0.05, 10, 12, Convention("balloon")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTerms(tc.principal, tc.annualRate, tc.years, tc.paymentsPerYear, tc.convention)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidTerms) {
				t.Errorf("expected ErrInvalidTerms, got %v", err)
			}
			var termsErr *TermsError
			if !errors.As(err, &termsErr) {
				t.Errorf("expected *TermsError, got %T", err)
			}
			if !IsClientError(err) {
				t.Error("terms errors should be client errors")
			}
		})
	}
}

func TestNewTerms_ZeroRateIsValid(t *testing.T) {
	// A zero periodic rate is a handled degenerate case, not an error.
	if _, err := NewMonthlyTerms(1200, 0, 1, LevelPayment); err != nil {
		t.Fatalf("zero rate should be valid: %v", err)
	}
}

// =============================================================================
// PLAN VALIDATION
// =============================================================================

func TestNewPrepaymentPlan_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		extras map[int]float64
		payoff int
	}{
		{"zero period index", map[int]float64{0: 100}, 0},
		{"negative period index", map[int]float64{-3: 100}, 0},
		{"zero extra amount", map[int]float64{5: 0}, 0},
		{"negative extra amount", map[int]float64{5: -10}, 0},
		{"negative payoff period", nil, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPrepaymentPlan(tc.extras, tc.payoff)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidPlan) {
				t.Errorf("expected ErrInvalidPlan, got %v", err)
			}
		})
	}
}

func TestNewPrepaymentPlan_LookupDefaultsToZero(t *testing.T) {
	plan, err := NewPrepaymentPlan(map[int]float64{12: 50_000}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := plan.ExtraFor(12); !got.Equal(dec("50000")) {
		t.Errorf("expected 50000 at period 12, got %s", got)
	}
	if got := plan.ExtraFor(13); !got.IsZero() {
		t.Errorf("missing period should yield zero, got %s", got)
	}
	if plan.IsEmpty() {
		t.Error("plan with extras should not be empty")
	}
}

func TestEmptyPlan(t *testing.T) {
	plan := EmptyPlan()
	if !plan.IsEmpty() {
		t.Error("EmptyPlan should be empty")
	}
	if _, ok := plan.Payoff(); ok {
		t.Error("EmptyPlan should have no payoff period")
	}
}
