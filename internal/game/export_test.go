package game

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"rcvis/internal/circuit"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	snap := circuit.Snapshot{EMF: 10, Resistance: 1000, Capacitance: 100, SwitchClosed: true}

	if err := writeWorkbook(path, snap, 0.1); err != nil {
		t.Fatalf("writeWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue("Sheet1", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return v
	}

	if got := cell("B3"); got != "1000" {
		t.Errorf("R cell = %q, want 1000", got)
	}
	if got := cell("B4"); got != "100" {
		t.Errorf("C cell = %q, want 100", got)
	}
	if got := cell("B5"); got != "CLOSED" {
		t.Errorf("switch cell = %q, want CLOSED", got)
	}
	if got := cell("B6"); got != "0.1" {
		t.Errorf("tau cell = %q, want 0.1", got)
	}

	// Sweep corners: (R=1, C=1) and (R=10000, C=10000).
	if got, err := strconv.ParseFloat(cell("B11"), 64); err != nil || got != 1e-6 {
		t.Errorf("sweep min cell = %q, want 1e-6", cell("B11"))
	}
	if got, err := strconv.ParseFloat(cell("F15"), 64); err != nil || got != 100 {
		t.Errorf("sweep max cell = %q, want 100", cell("F15"))
	}
}
