package loan

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLevelPaymentAmount_ThirtyYearMortgage(t *testing.T) {
	// GIVEN: 1,000,000 at 4.8% nominal over 30 years, monthly
	// WHEN: Deriving the annuity payment
	// THEN: A = P*r*(1+r)^N/((1+r)^N-1) = 5246.65 per period

	payment := LevelPaymentAmount(dec("1000000"), dec("0.004"), 360)
	if got := payment.Round(2); !got.Equal(dec("5246.65")) {
		t.Errorf("expected payment 5246.65, got %s", got)
	}
}

func TestLevelPaymentAmount_ZeroRate(t *testing.T) {
	// GIVEN: A zero periodic rate (closed form would divide by zero)
	// WHEN: Deriving the payment
	// THEN: Payment degenerates to principal / totalPeriods, exactly

	payment := LevelPaymentAmount(dec("1200"), decimal.Zero, 12)
	if !payment.Equal(dec("100")) {
		t.Errorf("expected exactly 100, got %s", payment)
	}
}

func TestLevelPaymentAmount_SinglePeriod(t *testing.T) {
	// One period: the whole principal plus one period of interest.
	payment := LevelPaymentAmount(dec("1000"), dec("0.01"), 1)
	if got := payment.Round(2); !got.Equal(dec("1010")) {
		t.Errorf("expected 1010, got %s", got)
	}
}

func TestTermsPayment_OnlyForLevelPayment(t *testing.T) {
	levelPrincipal, err := NewMonthlyTerms(1_000_000, 0.048, 30, LevelPrincipal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := levelPrincipal.Payment(); ok {
		t.Error("level-principal terms have no constant payment")
	}

	levelPayment, err := NewMonthlyTerms(1_000_000, 0.048, 30, LevelPayment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payment, ok := levelPayment.Payment()
	if !ok {
		t.Fatal("level-payment terms should expose a payment")
	}
	if !payment.Equal(dec("5246.65")) {
		t.Errorf("expected 5246.65, got %s", payment)
	}
}
