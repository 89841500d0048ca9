/*
scenarios.go - Built-in demo loans

PURPOSE:
  A small catalog of representative loans so the API can be explored
  without crafting request bodies: a plain 30-year annuity mortgage, its
  level-principal twin, an aggressively prepaid variant, and a zero-rate
  loan exercising the degenerate annuity case.

Scenarios are plain ScheduleRequests; running one goes through exactly
the same path as POST /api/loans/schedule.
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type scenario struct {
	ScenarioDTO
	Request ScheduleRequest
}

var scenarios = []scenario{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "mortgage-30y",
			Name:        "30-year level payment mortgage",
			Description: "1,000,000 at 4.8% over 30 years, constant monthly payment",
		},
		Request: ScheduleRequest{
			Principal:  1_000_000,
			AnnualRate: 0.048,
			Years:      30,
			Convention: "level_payment",
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "mortgage-30y-level-principal",
			Name:        "30-year level principal mortgage",
			Description: "Same terms with a constant principal component and declining totals",
		},
		Request: ScheduleRequest{
			Principal:  1_000_000,
			AnnualRate: 0.048,
			Years:      30,
			Convention: "level_principal",
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "mortgage-prepaid",
			Name:        "Prepaid mortgage with early payoff",
			Description: "Extras at periods 12 and 24, full payoff at period 60",
		},
		Request: ScheduleRequest{
			Principal:    1_000_000,
			AnnualRate:   0.048,
			Years:        30,
			Convention:   "level_payment",
			Prepayments:  map[int]float64{12: 50_000, 24: 30_000},
			PayoffPeriod: 60,
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "interest-free",
			Name:        "Interest-free loan",
			Description: "12,000 at 0% over 2 years; payment is principal / periods",
		},
		Request: ScheduleRequest{
			Principal:  12_000,
			AnnualRate: 0,
			Years:      2,
			Convention: "level_payment",
		},
	},
}

// ListScenarios returns the demo catalog.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.ScenarioDTO
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RunScenario computes the schedule for one demo loan.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, s := range scenarios {
		if s.ID == id {
			resp, status, err := h.computeSchedule(r, s.Request)
			if err != nil {
				writeError(w, status, "Scenario run failed", err)
				return
			}
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Scenario not found", nil)
}
