/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the engine's decimal-based domain model from the external
  contract: all monetary fields cross the wire as float64, already
  rounded to 2 decimals by the engine.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  DTOs are pure data carriers. Validation happens in the engine's
  constructors; handlers only translate the structured errors to HTTP.

SEE ALSO:
  - handlers.go: Uses these types
  - loan: The domain types these mirror
*/
package api

import (
	"github.com/warp/loan-engine/loan"
	"github.com/warp/loan-engine/store/sqlite"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ScheduleRequest describes a loan plus its optional prepayment plan.
// PaymentsPerYear defaults to 12 when omitted.
type ScheduleRequest struct {
	Principal       float64         `json:"principal"`
	AnnualRate      float64         `json:"annual_rate"`
	Years           int             `json:"years"`
	PaymentsPerYear int             `json:"payments_per_year,omitempty"`
	Convention      string          `json:"convention"`
	Prepayments     map[int]float64 `json:"prepayments,omitempty"`
	PayoffPeriod    int             `json:"payoff_period,omitempty"`
}

// PaymentRequest asks only for the level-payment quote.
type PaymentRequest struct {
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annual_rate"`
	Years           int     `json:"years"`
	PaymentsPerYear int     `json:"payments_per_year,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PeriodRecordDTO is one schedule row.
type PeriodRecordDTO struct {
	Period    int     `json:"period"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Total     float64 `json:"total"`
	Balance   float64 `json:"balance"`
}

// SummaryDTO echoes the terms and carries the aggregates.
type SummaryDTO struct {
	Convention       string   `json:"convention"`
	Principal        float64  `json:"principal"`
	AnnualRate       float64  `json:"annual_rate"`
	Years            int      `json:"years"`
	PaymentsPerYear  int      `json:"payments_per_year"`
	Payment          *float64 `json:"payment,omitempty"` // level payment only
	Periods          int      `json:"periods"`
	TotalPayment     float64  `json:"total_payment"`
	TotalInterest    float64  `json:"total_interest"`
	BaselineInterest float64  `json:"baseline_interest"`
	InterestSaved    float64  `json:"interest_saved"`
}

// ScheduleResponse is the full computation result.
type ScheduleResponse struct {
	CalculationID string            `json:"calculation_id,omitempty"`
	Summary       SummaryDTO        `json:"summary"`
	Schedule      []PeriodRecordDTO `json:"schedule"`
}

// PaymentResponse is the level-payment quote.
type PaymentResponse struct {
	Payment      float64 `json:"payment"`
	TotalPeriods int     `json:"total_periods"`
}

// SavingsResponse compares a prepaid loan against its baseline.
type SavingsResponse struct {
	BaselineInterest float64 `json:"baseline_interest"`
	TotalInterest    float64 `json:"total_interest"`
	InterestSaved    float64 `json:"interest_saved"`
	Periods          int     `json:"periods"`
}

// CalculationDTO is one history entry.
type CalculationDTO struct {
	ID               string          `json:"id"`
	CreatedAt        string          `json:"created_at"`
	Convention       string          `json:"convention"`
	Principal        float64         `json:"principal"`
	AnnualRate       float64         `json:"annual_rate"`
	Years            int             `json:"years"`
	PaymentsPerYear  int             `json:"payments_per_year"`
	Prepayments      map[int]float64 `json:"prepayments,omitempty"`
	PayoffPeriod     int             `json:"payoff_period,omitempty"`
	Payment          float64         `json:"payment,omitempty"`
	Periods          int             `json:"periods"`
	TotalPayment     float64         `json:"total_payment"`
	TotalInterest    float64         `json:"total_interest"`
	BaselineInterest float64         `json:"baseline_interest"`
	InterestSaved    float64         `json:"interest_saved"`
}

// ScenarioDTO describes one built-in demo loan.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toTerms(req ScheduleRequest) (loan.Terms, error) {
	if req.PaymentsPerYear == 0 {
		req.PaymentsPerYear = loan.DefaultPaymentsPerYear
	}
	return loan.NewTerms(req.Principal, req.AnnualRate, req.Years,
		req.PaymentsPerYear, loan.Convention(req.Convention))
}

func toPlan(req ScheduleRequest) (loan.PrepaymentPlan, error) {
	return loan.NewPrepaymentPlan(req.Prepayments, req.PayoffPeriod)
}

func toSummaryDTO(s loan.Summary) SummaryDTO {
	principal, _ := s.Terms.Principal.Float64()
	annualRate, _ := s.Terms.AnnualRate.Float64()
	totalPayment, _ := s.TotalPayment.Float64()
	totalInterest, _ := s.TotalInterest.Float64()
	baseline, _ := s.BaselineInterest.Float64()
	saved, _ := s.InterestSaved.Float64()

	dto := SummaryDTO{
		Convention:       string(s.Terms.Convention),
		Principal:        principal,
		AnnualRate:       annualRate,
		Years:            s.Terms.Years,
		PaymentsPerYear:  s.Terms.PaymentsPerYear,
		Periods:          s.Periods,
		TotalPayment:     totalPayment,
		TotalInterest:    totalInterest,
		BaselineInterest: baseline,
		InterestSaved:    saved,
	}
	if s.HasPayment {
		payment, _ := s.Payment.Float64()
		dto.Payment = &payment
	}
	return dto
}

func toScheduleDTO(schedule loan.Schedule) []PeriodRecordDTO {
	out := make([]PeriodRecordDTO, len(schedule))
	for i, rec := range schedule {
		principal, _ := rec.Principal.Float64()
		interest, _ := rec.Interest.Float64()
		total, _ := rec.Total.Float64()
		balance, _ := rec.Balance.Float64()
		out[i] = PeriodRecordDTO{
			Period:    rec.Period,
			Principal: principal,
			Interest:  interest,
			Total:     total,
			Balance:   balance,
		}
	}
	return out
}

func toCalculationDTO(c sqlite.Calculation) CalculationDTO {
	return CalculationDTO{
		ID:               c.ID,
		CreatedAt:        c.CreatedAt.Format(timeFormat),
		Convention:       c.Convention,
		Principal:        c.Principal,
		AnnualRate:       c.AnnualRate,
		Years:            c.Years,
		PaymentsPerYear:  c.PaymentsPerYear,
		Prepayments:      c.Prepayments,
		PayoffPeriod:     c.PayoffPeriod,
		Payment:          c.Payment,
		Periods:          c.Periods,
		TotalPayment:     c.TotalPayment,
		TotalInterest:    c.TotalInterest,
		BaselineInterest: c.BaselineInterest,
		InterestSaved:    c.InterestSaved,
	}
}
