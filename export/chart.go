package export

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/warp/loan-engine/loan"
)

// RenderChart draws the remaining balance, principal and interest curves
// over the period index as a PNG.
func RenderChart(w io.Writer, schedule loan.Schedule) error {
	if len(schedule) < 2 {
		return errors.New("schedule too short to chart")
	}

	periods := make([]float64, len(schedule))
	balances := make([]float64, len(schedule))
	principals := make([]float64, len(schedule))
	interests := make([]float64, len(schedule))
	for i, rec := range schedule {
		periods[i] = float64(rec.Period)
		balances[i], _ = rec.Balance.Float64()
		principals[i], _ = rec.Principal.Float64()
		interests[i], _ = rec.Interest.Float64()
	}

	graph := chart.Chart{
		Title:  "Loan Payment Breakdown Over Time",
		Width:  1000,
		Height: 600,
		XAxis:  chart.XAxis{Name: "Period"},
		YAxis:  chart.YAxis{Name: "Amount"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Remaining Balance",
				XValues: periods,
				YValues: balances,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Principal Payment",
				XValues: periods,
				YValues: principals,
				Style: chart.Style{
					StrokeColor:     drawing.ColorGreen,
					StrokeDashArray: []float64{5, 5},
				},
			},
			chart.ContinuousSeries{
				Name:    "Interest Payment",
				XValues: periods,
				YValues: interests,
				Style: chart.Style{
					StrokeColor:     drawing.ColorRed,
					StrokeDashArray: []float64{2, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
