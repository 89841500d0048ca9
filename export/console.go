/*
Package export renders computed schedules for humans: a fixed-width
console view, a styled spreadsheet, and a payment-curve chart.

These are pure presentation layers over loan.Schedule and loan.Summary.
They carry no financial logic and no default destinations: every writer,
filename and path is an explicit parameter.
*/
package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/warp/loan-engine/loan"
)

var hundred = decimal.NewFromInt(100)

// WriteSummary writes the loan summary block.
func WriteSummary(w io.Writer, s loan.Summary) error {
	ratePercent := s.Terms.AnnualRate.Mul(hundred)

	fmt.Fprintln(w, "========== Loan Summary ==========")
	fmt.Fprintf(w, "Principal:         %s\n", s.Terms.Principal.StringFixed(2))
	fmt.Fprintf(w, "Annual rate:       %s%%\n", ratePercent.String())
	fmt.Fprintf(w, "Term:              %d years (%d periods)\n", s.Terms.Years, s.Terms.TotalPeriods())
	fmt.Fprintf(w, "Convention:        %s\n", conventionLabel(s.Terms.Convention))
	if s.HasPayment {
		fmt.Fprintf(w, "Payment:           %s per period\n", s.Payment.StringFixed(2))
	}
	if s.Periods != s.Terms.TotalPeriods() {
		fmt.Fprintf(w, "Paid off after:    %d periods\n", s.Periods)
	}
	fmt.Fprintf(w, "Total payment:     %s\n", s.TotalPayment.StringFixed(2))
	fmt.Fprintf(w, "Total interest:    %s\n", s.TotalInterest.StringFixed(2))
	fmt.Fprintf(w, "Baseline interest: %s\n", s.BaselineInterest.StringFixed(2))
	fmt.Fprintf(w, "Interest saved:    %s\n", s.InterestSaved.StringFixed(2))
	_, err := fmt.Fprintln(w, "==================================")
	return err
}

// WriteSchedule writes the period table.
func WriteSchedule(w io.Writer, schedule loan.Schedule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Period\tPrincipal\tInterest\tTotal\tBalance\t")
	for _, rec := range schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			rec.Period,
			rec.Principal.StringFixed(2),
			rec.Interest.StringFixed(2),
			rec.Total.StringFixed(2),
			rec.Balance.StringFixed(2),
		)
	}
	return tw.Flush()
}

func conventionLabel(c loan.Convention) string {
	switch c {
	case loan.LevelPayment:
		return "level payment"
	case loan.LevelPrincipal:
		return "level principal"
	default:
		return string(c)
	}
}
