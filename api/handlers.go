/*
handlers.go - HTTP handlers for the loan engine

PURPOSE:
  Exposes the amortization engine via REST. Handlers parse JSON, call
  the engine, and serialize the result; all financial logic lives in
  the loan package.

ENDPOINTS:
  Loans:
    POST /api/loans/schedule   Full schedule + summary (cached, recorded)
    POST /api/loans/payment    Level-payment quote
    POST /api/loans/savings    Baseline vs actual interest comparison

  History:
    GET  /api/calculations       Recent computations, newest first
    GET  /api/calculations/{id}  One stored computation

  Scenarios:
    GET  /api/scenarios               Built-in demo loans
    POST /api/scenarios/{id}/run      Run a demo loan

REQUEST FLOW:
  1. Decode request body
  2. Build loan.Terms / loan.PrepaymentPlan (fails fast on bad input)
  3. Serve from the schedule cache when the exact inputs were seen
  4. Compute, record to history (non-critical on failure), respond

ERROR HANDLING:
  - 400: engine input errors (loan.IsClientError)
  - 404: unknown calculation or scenario id
  - 500: storage or serialization failures

SEE ALSO:
  - dto.go: Request/response shapes
  - scenarios.go: Demo loan catalog
  - server.go: Router setup and middleware
*/
package api

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/warp/loan-engine/loan"
	"github.com/warp/loan-engine/metrics"
	"github.com/warp/loan-engine/store/cache"
	"github.com/warp/loan-engine/store/sqlite"
)

const timeFormat = time.RFC3339

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Cache cache.ScheduleCache
}

// NewHandler creates a handler backed by the given store and cache.
func NewHandler(store *sqlite.Store, scheduleCache cache.ScheduleCache) *Handler {
	return &Handler{Store: store, Cache: scheduleCache}
}

// =============================================================================
// LOAN HANDLERS
// =============================================================================

// ComputeSchedule generates the full amortization schedule.
func (h *Handler) ComputeSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	resp, status, err := h.computeSchedule(r, req)
	if err != nil {
		writeError(w, status, "Schedule computation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// computeSchedule is shared by the schedule endpoint and scenario runs.
func (h *Handler) computeSchedule(r *http.Request, req ScheduleRequest) (*ScheduleResponse, int, error) {
	terms, err := toTerms(req)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	plan, err := toPlan(req)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	key := cache.Key(terms, plan)
	if cached, ok := h.Cache.Get(r.Context(), key); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		var resp ScheduleResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, http.StatusOK, nil
		}
		// Fall through and recompute on a corrupt entry.
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	summary, schedule, err := loan.Summarize(terms, plan)
	if err != nil {
		metrics.Calculations.WithLabelValues(string(terms.Convention), "error").Inc()
		return nil, http.StatusBadRequest, err
	}
	metrics.Calculations.WithLabelValues(string(terms.Convention), "ok").Inc()
	metrics.SchedulePeriods.Observe(float64(summary.Periods))

	resp := &ScheduleResponse{
		Summary:  toSummaryDTO(summary),
		Schedule: toScheduleDTO(schedule),
	}

	// Recording the calculation is not critical to serving it.
	record := calculationFrom(req, summary)
	if err := h.Store.SaveCalculation(r.Context(), record); err != nil {
		log.Printf("Warning: failed to record calculation: %v", err)
	} else {
		resp.CalculationID = record.ID
	}

	if encoded, err := json.Marshal(resp); err == nil {
		if err := h.Cache.Set(r.Context(), key, string(encoded)); err != nil {
			log.Printf("Warning: failed to cache schedule: %v", err)
		}
	}

	return resp, http.StatusOK, nil
}

// QuotePayment returns the constant per-period payment for the
// level-payment convention.
func (h *Handler) QuotePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.PaymentsPerYear == 0 {
		req.PaymentsPerYear = loan.DefaultPaymentsPerYear
	}

	terms, err := loan.NewTerms(req.Principal, req.AnnualRate, req.Years,
		req.PaymentsPerYear, loan.LevelPayment)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan terms", err)
		return
	}

	payment, _ := terms.Payment()
	paymentFloat, _ := payment.Float64()
	writeJSON(w, http.StatusOK, PaymentResponse{
		Payment:      paymentFloat,
		TotalPeriods: terms.TotalPeriods(),
	})
}

// CompareSavings reports interest saved against the no-prepayment baseline.
func (h *Handler) CompareSavings(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	terms, err := toTerms(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan terms", err)
		return
	}
	plan, err := toPlan(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid prepayment plan", err)
		return
	}

	summary, _, err := loan.Summarize(terms, plan)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Savings computation failed", err)
		return
	}

	baseline, _ := summary.BaselineInterest.Float64()
	totalInterest, _ := summary.TotalInterest.Float64()
	saved, _ := summary.InterestSaved.Float64()
	writeJSON(w, http.StatusOK, SavingsResponse{
		BaselineInterest: baseline,
		TotalInterest:    totalInterest,
		InterestSaved:    saved,
		Periods:          summary.Periods,
	})
}

// =============================================================================
// HISTORY HANDLERS
// =============================================================================

// ListCalculations returns recent computations.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	calculations, err := h.Store.ListCalculations(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	dtos := make([]CalculationDTO, len(calculations))
	for i, c := range calculations {
		dtos[i] = toCalculationDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCalculation returns one stored computation.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	calculation, err := h.Store.GetCalculation(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Calculation not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load calculation", err)
		return
	}
	writeJSON(w, http.StatusOK, toCalculationDTO(calculation))
}

// =============================================================================
// HELPERS
// =============================================================================

func calculationFrom(req ScheduleRequest, summary loan.Summary) *sqlite.Calculation {
	principal, _ := summary.Terms.Principal.Float64()
	annualRate, _ := summary.Terms.AnnualRate.Float64()
	totalPayment, _ := summary.TotalPayment.Float64()
	totalInterest, _ := summary.TotalInterest.Float64()
	baseline, _ := summary.BaselineInterest.Float64()
	saved, _ := summary.InterestSaved.Float64()

	c := &sqlite.Calculation{
		Convention:       string(summary.Terms.Convention),
		Principal:        principal,
		AnnualRate:       annualRate,
		Years:            summary.Terms.Years,
		PaymentsPerYear:  summary.Terms.PaymentsPerYear,
		Prepayments:      req.Prepayments,
		PayoffPeriod:     req.PayoffPeriod,
		Periods:          summary.Periods,
		TotalPayment:     totalPayment,
		TotalInterest:    totalInterest,
		BaselineInterest: baseline,
		InterestSaved:    saved,
	}
	if summary.HasPayment {
		c.Payment, _ = summary.Payment.Float64()
	}
	return c
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
		if loan.IsClientError(err) {
			status = http.StatusBadRequest
		}
	}
	writeJSON(w, status, resp)
}
