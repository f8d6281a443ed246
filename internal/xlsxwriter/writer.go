// =============================================================================
// CSV to XLSX Converter - XLSX Writer Module
// =============================================================================
//
// This module writes a parsed table to an XLSX workbook using excelize.
//
// OUTPUT LAYOUT:
//   - One worksheet (default name "Sheet1")
//   - Row 1 holds the column headers, bold with a thin border
//   - Data rows follow in their original order, starting at row 2
//   - Column order is preserved; no row-index column is added
//   - Empty CSV fields become blank cells
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/types"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "Sheet1"

// =============================================================================
// WRITE OPTIONS
// =============================================================================

// Options controls how a table is laid out in the workbook.
type Options struct {
	// SheetName is the name of the single worksheet.
	// Default: "Sheet1"
	SheetName string

	// InferNumbers writes a column as numeric cells when every non-empty
	// value in it parses as a number. When false every cell is text.
	// Default: false
	InferNumbers bool
}

// DefaultOptions returns the default write options.
func DefaultOptions() Options {
	return Options{
		SheetName:    DefaultSheetName,
		InferNumbers: false,
	}
}

// =============================================================================
// WRITE FUNCTIONS
// =============================================================================

// Write creates the workbook at path from table.
// An existing file at path is replaced.
func Write(table *types.Table, path string, options Options) error {
	if table == nil || len(table.Headers) == 0 {
		return fmt.Errorf("table has no columns")
	}
	if options.SheetName == "" {
		options.SheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := options.SheetName
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			return fmt.Errorf("failed to name worksheet: %w", err)
		}
	}

	if err := writeHeader(f, sheet, table.Headers); err != nil {
		return err
	}

	numeric := make([]bool, len(table.Headers))
	if options.InferNumbers {
		numeric = numericColumns(table)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(row))
		for col, value := range row {
			values[col] = cellValue(value, numeric[col])
		}

		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// writeHeader writes the header row and applies the header style.
func writeHeader(f *excelize.File, sheet string, headers []string) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}

	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}

	return f.SetCellStyle(sheet, "A1", last, style)
}

// cellValue converts one CSV field to the value handed to excelize.
// Empty fields are nil so the cell stays blank.
func cellValue(value string, numeric bool) interface{} {
	if value == "" {
		return nil
	}
	if !numeric {
		return value
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if x, ok := parseFloat(value); ok {
		return x
	}

	return value
}

// numericColumns reports, per column, whether every non-empty value is a
// number. A column with no values at all stays text.
func numericColumns(table *types.Table) []bool {
	numeric := make([]bool, len(table.Headers))

	for col := range table.Headers {
		seen := false
		numeric[col] = true

		for _, row := range table.Rows {
			value := row[col]
			if value == "" {
				continue
			}
			seen = true
			if _, ok := parseFloat(value); !ok {
				numeric[col] = false
				break
			}
		}

		if !seen {
			numeric[col] = false
		}
	}

	return numeric
}

// parseFloat accepts finite decimal numbers only.
func parseFloat(value string) (float64, bool) {
	x, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}
