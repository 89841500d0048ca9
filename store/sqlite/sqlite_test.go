package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	store, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGetCalculation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	calc := &Calculation{
		Convention:       "level_payment",
		Principal:        1_000_000,
		AnnualRate:       0.048,
		Years:            30,
		PaymentsPerYear:  12,
		Prepayments:      map[int]float64{12: 50_000, 24: 30_000},
		PayoffPeriod:     60,
		Payment:          5246.65,
		Periods:          60,
		TotalPayment:     1_040_954.51,
		TotalInterest:    215_253.56,
		BaselineInterest: 888_795.28,
		InterestSaved:    673_541.72,
	}

	if err := store.SaveCalculation(ctx, calc); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if calc.ID == "" {
		t.Fatal("save should assign an id")
	}
	if calc.CreatedAt.IsZero() {
		t.Fatal("save should assign a timestamp")
	}

	got, err := store.GetCalculation(ctx, calc.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Convention != "level_payment" || got.Periods != 60 {
		t.Errorf("unexpected round trip: %+v", got)
	}
	if got.Prepayments[12] != 50_000 || got.Prepayments[24] != 30_000 {
		t.Errorf("prepayments did not survive the round trip: %v", got.Prepayments)
	}
	if got.InterestSaved != 673_541.72 {
		t.Errorf("expected interest saved 673541.72, got %v", got.InterestSaved)
	}
}

func TestGetCalculation_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetCalculation(context.Background(), "no-such-id")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestListCalculations_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.August, 27, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		calc := &Calculation{
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
			Convention:      "level_principal",
			Principal:       float64(100_000 * (i + 1)),
			AnnualRate:      0.05,
			Years:           10,
			PaymentsPerYear: 12,
			Periods:         120,
		}
		if err := store.SaveCalculation(ctx, calc); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	list, err := store.ListCalculations(ctx, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows with limit 2, got %d", len(list))
	}
	if list[0].Principal != 300_000 {
		t.Errorf("expected newest first, got principal %v", list[0].Principal)
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Error("expected newest first ordering")
	}
	if list[0].Prepayments != nil {
		t.Errorf("empty prepayments should stay nil, got %v", list[0].Prepayments)
	}
}
