// =============================================================================
// CSV to XLSX Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxwriter
//   - converter
//
// =============================================================================

package types

// =============================================================================
// TABLE TYPES
// =============================================================================

// Table is the in-memory form of one parsed CSV file.
// It is owned by the conversion of that single file and dropped once the
// spreadsheet has been written.
type Table struct {
	// Headers contains the column names in their original order.
	Headers []string

	// Rows contains the data rows in their original order.
	// Every row has exactly len(Headers) cells.
	Rows [][]string

	// SourceFile is the path of the CSV file the table was parsed from.
	SourceFile string

	// Encoding is the name of the text encoding that decoded the file.
	// Empty when the table was parsed from an already-decoded reader.
	Encoding string
}

// RowCount returns the number of data rows (excluding the header).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}
