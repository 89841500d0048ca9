/*
main.go - Command-line amortization calculator

PURPOSE:
  Computes a schedule straight from flags, prints the summary and table,
  and optionally exports the spreadsheet and chart.

COMMAND-LINE FLAGS:
  -principal    Loan principal
  -rate         Annual nominal rate (0.048 for 4.8%)
  -years        Term in years
  -per-year     Payments per year (default 12)
  -convention   level_payment | level_principal
  -prepay       Extra principal by period, e.g. "12:50000,24:30000"
  -payoff       Full payoff period (0 = none)
  -xlsx         Write the schedule workbook to this path
  -png          Write the payment chart to this path

EXAMPLES:
  ./amortize -principal=1000000 -rate=0.048 -years=30
  ./amortize -principal=1000000 -rate=0.048 -years=30 \
      -prepay="12:50000,24:30000" -payoff=60 -xlsx=schedule.xlsx
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/warp/loan-engine/export"
	"github.com/warp/loan-engine/loan"
)

func main() {
	principal := flag.Float64("principal", 0, "loan principal")
	rate := flag.Float64("rate", 0, "annual nominal rate, e.g. 0.048")
	years := flag.Int("years", 0, "term in years")
	perYear := flag.Int("per-year", loan.DefaultPaymentsPerYear, "payments per year")
	convention := flag.String("convention", string(loan.LevelPayment), "level_payment or level_principal")
	prepay := flag.String("prepay", "", `extra principal by period, e.g. "12:50000,24:30000"`)
	payoff := flag.Int("payoff", 0, "full payoff period (0 = none)")
	xlsxPath := flag.String("xlsx", "", "write the schedule workbook to this path")
	pngPath := flag.String("png", "", "write the payment chart to this path")
	flag.Parse()

	terms, err := loan.NewTerms(*principal, *rate, *years, *perYear, loan.Convention(*convention))
	if err != nil {
		log.Fatalf("Invalid terms: %v", err)
	}

	extras, err := parsePrepayments(*prepay)
	if err != nil {
		log.Fatalf("Invalid -prepay: %v", err)
	}
	plan, err := loan.NewPrepaymentPlan(extras, *payoff)
	if err != nil {
		log.Fatalf("Invalid plan: %v", err)
	}

	summary, schedule, err := loan.Summarize(terms, plan)
	if err != nil {
		log.Fatalf("Failed to compute schedule: %v", err)
	}

	if err := export.WriteSummary(os.Stdout, summary); err != nil {
		log.Fatalf("Failed to print summary: %v", err)
	}
	fmt.Println()
	if err := export.WriteSchedule(os.Stdout, schedule); err != nil {
		log.Fatalf("Failed to print schedule: %v", err)
	}

	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, summary, schedule); err != nil {
			log.Fatalf("Failed to export workbook: %v", err)
		}
		log.Printf("Workbook written to %s", *xlsxPath)
	}

	if *pngPath != "" {
		f, err := os.Create(*pngPath)
		if err != nil {
			log.Fatalf("Failed to create chart file: %v", err)
		}
		if err := export.RenderChart(f, schedule); err != nil {
			f.Close()
			log.Fatalf("Failed to render chart: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to write chart: %v", err)
		}
		log.Printf("Chart written to %s", *pngPath)
	}
}

// parsePrepayments parses "12:50000,24:30000" into a period->amount map.
func parsePrepayments(s string) (map[int]float64, error) {
	if s == "" {
		return nil, nil
	}
	out := make(map[int]float64)
	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected period:amount, got %q", pair)
		}
		period, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("bad period %q: %w", parts[0], err)
		}
		amount, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad amount %q: %w", parts[1], err)
		}
		out[period] = amount
	}
	return out, nil
}
