package cache

import (
	"context"
	"testing"

	"github.com/warp/loan-engine/loan"
)

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Error("missing key should be a miss")
	}
	if err := c.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok := c.Get(ctx, "k")
	if !ok || value != "v" {
		t.Errorf("expected hit with v, got %q %v", value, ok)
	}
}

func TestKey_Deterministic(t *testing.T) {
	terms, err := loan.NewMonthlyTerms(1_000_000, 0.048, 30, loan.LevelPayment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plan, err := loan.NewPrepaymentPlan(map[int]float64{24: 30_000, 12: 50_000}, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Map iteration order must not leak into the key.
	first := Key(terms, plan)
	second := Key(terms, plan)
	if first != second {
		t.Errorf("key must be deterministic: %q vs %q", first, second)
	}
}

func TestKey_DistinguishesInputs(t *testing.T) {
	terms, _ := loan.NewMonthlyTerms(1_000_000, 0.048, 30, loan.LevelPayment)
	otherConvention, _ := loan.NewMonthlyTerms(1_000_000, 0.048, 30, loan.LevelPrincipal)
	plan, _ := loan.NewPrepaymentPlan(map[int]float64{12: 50_000}, 0)

	base := Key(terms, loan.EmptyPlan())
	if Key(otherConvention, loan.EmptyPlan()) == base {
		t.Error("convention must affect the key")
	}
	if Key(terms, plan) == base {
		t.Error("prepayments must affect the key")
	}
}
