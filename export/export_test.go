package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/warp/loan-engine/loan"
)

func demoLoan(t *testing.T) (loan.Summary, loan.Schedule) {
	t.Helper()
	terms, err := loan.NewMonthlyTerms(12_000, 0.06, 1, loan.LevelPayment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	summary, schedule, err := loan.Summarize(terms, loan.EmptyPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return summary, schedule
}

func TestWriteSchedule(t *testing.T) {
	_, schedule := demoLoan(t)

	var buf bytes.Buffer
	if err := WriteSchedule(&buf, schedule); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Period") {
		t.Error("expected table header")
	}
	// Header plus one line per period.
	lines := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1
	if lines != len(schedule)+1 {
		t.Errorf("expected %d lines, got %d", len(schedule)+1, lines)
	}
}

func TestWriteSummary(t *testing.T) {
	summary, _ := demoLoan(t)

	var buf bytes.Buffer
	if err := WriteSummary(&buf, summary); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Loan Summary", "12000.00", "Annual rate", "level payment", "Total interest"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestExportXLSX(t *testing.T) {
	summary, schedule := demoLoan(t)
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	if err := ExportXLSX(path, summary, schedule); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Loan Schedule", "A1")
	if err != nil || header != "Period" {
		t.Errorf("expected Period header, got %q (%v)", header, err)
	}
	firstBalance, err := f.GetCellValue("Loan Schedule", "E2")
	if err != nil || firstBalance == "" {
		t.Errorf("expected a balance in E2, got %q (%v)", firstBalance, err)
	}
}

func TestRenderChart(t *testing.T) {
	_, schedule := demoLoan(t)

	var buf bytes.Buffer
	if err := RenderChart(&buf, schedule); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// PNG magic bytes.
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}

	if err := RenderChart(&bytes.Buffer{}, loan.Schedule{}); err == nil {
		t.Error("empty schedule should not render")
	}
}
