/*
Package cache provides a short-lived cache for computed schedules.

The engine is fast, but identical requests are common (a caller tweaking
one prepayment and re-running the rest unchanged), so the API keeps the
serialized response keyed by the full input. Two implementations: Redis
for deployments, an in-memory map for tests and single-node runs.

Keys are deterministic functions of the loan terms and prepayment plan;
a missing key is a miss, never an error.
*/
package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/warp/loan-engine/loan"
)

// ScheduleCache stores serialized schedule responses by input key.
type ScheduleCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key builds the deterministic cache key for a terms/plan pair.
func Key(terms loan.Terms, plan loan.PrepaymentPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "loan:%s:%s:%s:%d:%d",
		terms.Convention, terms.Principal, terms.AnnualRate,
		terms.Years, terms.PaymentsPerYear)

	extras := plan.Extras()
	periods := make([]int, 0, len(extras))
	for period := range extras {
		periods = append(periods, period)
	}
	sort.Ints(periods)
	for _, period := range periods {
		fmt.Fprintf(&b, ":x%d=%v", period, extras[period])
	}
	if payoff, ok := plan.Payoff(); ok {
		fmt.Fprintf(&b, ":p%d", payoff)
	}
	return b.String()
}

// Memory is a map-backed cache for tests and single-node runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok
}

func (m *Memory) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
