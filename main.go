// =============================================================================
// CSV to XLSX Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV to XLSX Converter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   csv2xlsx [input-dir] [output-dir] - Convert every CSV file to XLSX
//   csv2xlsx version                  - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core logic (charset, csvparser, xlsxwriter, converter)
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/csv-to-xlsx-conversion/cmd"
)

func main() {
	cmd.Execute()
}
