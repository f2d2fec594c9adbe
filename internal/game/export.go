package game

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"github.com/xuri/excelize/v2"

	"rcvis/internal/circuit"
)

// sweepValues are the decade points used for the exported tau table; both
// axes stay inside the valid parameter ranges.
var sweepValues = []float64{1, 10, 100, 1000, 10000}

// errExportCanceled marks a save dialog dismissed by the user; not a failure.
var errExportCanceled = errors.New("export canceled")

// exportDialog asks for a destination and writes the workbook there.
func exportDialog(snap circuit.Snapshot, tau float64) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Time Constant Table"),
		zenity.Filename("rc_time_constants.xlsx"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "Excel workbook",
			Patterns: []string{"*.xlsx"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", errExportCanceled
		}
		return "", err
	}
	if err := writeWorkbook(path, snap, tau); err != nil {
		return "", err
	}
	return path, nil
}

// writeWorkbook writes the current parameters and a tau sweep table over R
// and C decades to an xlsx file.
func writeWorkbook(path string, snap circuit.Snapshot, tau float64) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	switchText := "OPEN"
	if snap.SwitchClosed {
		switchText = "CLOSED"
	}
	summary := [][]any{
		{"RC Circuit Export"},
		{"EMF [V]", snap.EMF},
		{"R [Ohm]", snap.Resistance},
		{"C [uF]", snap.Capacitance},
		{"Switch", switchText},
		{"tau [s]", tau},
		{"tau", circuit.FormatSeconds(tau)},
	}
	for i, row := range summary {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	// Sweep table: R down the rows, C across the columns, tau in seconds.
	base := len(summary) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "tau [s] by R [Ohm] (rows) x C [uF] (columns)"); err != nil {
		return err
	}
	for j, c := range sweepValues {
		cell, err := excelize.CoordinatesToCellName(j+2, base+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c); err != nil {
			return err
		}
	}
	for i, r := range sweepValues {
		cell, err := excelize.CoordinatesToCellName(1, base+2+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, r); err != nil {
			return err
		}
		for j, c := range sweepValues {
			cell, err := excelize.CoordinatesToCellName(j+2, base+2+i)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, r*c*1e-6); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
