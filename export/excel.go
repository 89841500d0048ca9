package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/warp/loan-engine/loan"
)

const sheetName = "Loan Schedule"

var columnHeaders = []string{
	"Period",
	"Principal Payment",
	"Interest Payment",
	"Total Payment",
	"Remaining Balance",
}

// ExportXLSX writes the schedule and summary to a styled workbook:
// bold white-on-blue header, bordered cells, centered period column,
// thousands-separated money columns, frozen header row.
func ExportXLSX(filename string, s loan.Summary, schedule loan.Schedule) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, rec := range schedule {
		row := i + 2
		principal, _ := rec.Principal.Float64()
		interest, _ := rec.Interest.Float64()
		total, _ := rec.Total.Float64()
		balance, _ := rec.Balance.Float64()
		values := []any{rec.Period, principal, interest, total, balance}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rec.Period, err)
			}
		}
	}

	if err := applyStyles(f, len(schedule)); err != nil {
		return err
	}
	if err := writeSummaryBlock(f, s, schedule, len(schedule)+4); err != nil {
		return err
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func applyStyles(f *excelize.File, rows int) error {
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", headerStyle); err != nil {
		return err
	}

	if rows == 0 {
		return nil
	}
	lastRow := rows + 1

	periodStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("failed to build period style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A2", fmt.Sprintf("A%d", lastRow), periodStyle); err != nil {
		return err
	}

	moneyFormat := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &moneyFormat,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       border,
	})
	if err != nil {
		return fmt.Errorf("failed to build money style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "B2", fmt.Sprintf("E%d", lastRow), moneyStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "A", "A", 10); err != nil {
		return err
	}
	return f.SetColWidth(sheetName, "B", "E", 18)
}

func writeSummaryBlock(f *excelize.File, s loan.Summary, schedule loan.Schedule, startRow int) error {
	ratePercent := s.Terms.AnnualRate.Mul(hundred)
	payment := "varies"
	if s.HasPayment {
		payment = s.Payment.StringFixed(2)
	}

	lines := [][2]string{
		{"Principal", s.Terms.Principal.StringFixed(2)},
		{"Annual rate", ratePercent.String() + "%"},
		{"Term", fmt.Sprintf("%d years", s.Terms.Years)},
		{"Convention", conventionLabel(s.Terms.Convention)},
		{"Payment per period", payment},
		{"Total payment", schedule.TotalPayment().StringFixed(2)},
		{"Total interest", schedule.TotalInterest().StringFixed(2)},
		{"Interest saved", s.InterestSaved.StringFixed(2)},
	}

	for i, line := range lines {
		labelCell, _ := excelize.CoordinatesToCellName(1, startRow+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, startRow+i)
		if err := f.SetCellValue(sheetName, labelCell, line[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, valueCell, line[1]); err != nil {
			return err
		}
	}
	return nil
}
