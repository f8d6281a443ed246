// =============================================================================
// CSV to XLSX Converter - CSV Parser Module
// =============================================================================
//
// This module is responsible for turning a CSV file into a types.Table. It
// handles:
//   - Standard CSV quoting (double quotes, embedded delimiters and newlines)
//   - Rows shorter than the header (padded with empty cells)
//   - Empty and repeated header names
//   - Files written in more than one possible text encoding
//
// ENCODING FALLBACK:
//   ReadWithFallback reads the file once and tries each candidate encoding in
//   order. Only a decoding error moves on to the next candidate; any other
//   failure (malformed rows, empty file) ends the read immediately. Running
//   out of candidates yields an *ExhaustedError.
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/charset"
	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/types"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrEmptyFile is returned when a CSV file has no header row.
var ErrEmptyFile = errors.New("CSV file is empty")

// FieldCountError reports a data row with more fields than the header.
type FieldCountError struct {
	// Line is the 1-indexed line on which the record starts.
	Line int

	// Expected is the number of header columns.
	Expected int

	// Got is the number of fields found in the record.
	Got int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("expected %d fields in line %d, saw %d", e.Expected, e.Line, e.Got)
}

// Attempt is the outcome of parsing a file with one candidate encoding.
// Exactly one of Table and Err is set.
type Attempt struct {
	Encoding string
	Table    *types.Table
	Err      error
}

// AttemptError reports a non-decoding failure while parsing with a specific
// encoding. No further candidates are tried after one of these.
type AttemptError struct {
	Encoding string
	Err      error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("parse as %s: %v", e.Encoding, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// ExhaustedError reports that every candidate encoding failed to decode the
// file.
type ExhaustedError struct {
	// Attempts holds one failed attempt per candidate, in the order tried.
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	if len(e.Attempts) == 0 {
		return "no candidate encodings to try"
	}

	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Encoding
	}

	last := e.Attempts[len(e.Attempts)-1]
	return fmt.Sprintf("%s all failed: %v", strings.Join(names, "/"), last.Err)
}

// Unwrap exposes every attempt's error to errors.Is and errors.As.
func (e *ExhaustedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// =============================================================================
// FALLBACK READER
// =============================================================================

// ReadWithFallback reads a CSV file and parses it with the first candidate
// encoding that can decode it.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - candidates: The encodings to try, in order.
//
// RETURNS:
//   - The parsed table, with Encoding set to the candidate that succeeded.
//   - An error if the file cannot be read, an *AttemptError for a
//     non-decoding failure, or an *ExhaustedError when no candidate could
//     decode the bytes.
func ReadWithFallback(filePath string, candidates []charset.Candidate) (*types.Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	attempts := make([]Attempt, 0, len(candidates))
	for _, candidate := range candidates {
		attempt := parseAs(data, filePath, candidate)
		if attempt.Err == nil {
			return attempt.Table, nil
		}

		// Only a decoding problem is worth another encoding.
		if !charset.IsDecodeError(attempt.Err) {
			return nil, &AttemptError{Encoding: attempt.Encoding, Err: attempt.Err}
		}

		attempts = append(attempts, attempt)
	}

	return nil, &ExhaustedError{Attempts: attempts}
}

// parseAs decodes data with one candidate and parses the result.
func parseAs(data []byte, filePath string, candidate charset.Candidate) Attempt {
	attempt := Attempt{Encoding: candidate.Name}

	text, err := candidate.Decode(data)
	if err != nil {
		attempt.Err = err
		return attempt
	}

	table, err := Parse(strings.NewReader(text), filePath)
	if err != nil {
		attempt.Err = err
		return attempt
	}

	table.Encoding = candidate.Name
	attempt.Table = table
	return attempt
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads already-decoded CSV text and returns the parsed table.
//
// PARSING PROCESS:
//   1. Read every record (blank lines are skipped by encoding/csv)
//   2. Take the first record as the header and normalise its names
//   3. Check that no data row is wider than the header
//   4. Pad short rows with empty cells
func Parse(r io.Reader, source string) (*types.Table, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader)

	var records [][]string
	var lines []int
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := csvReader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headers := cleanHeaders(records[0])

	rows := make([][]string, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) > len(headers) {
			return nil, &FieldCountError{Line: lines[i+1], Expected: len(headers), Got: len(record)}
		}
		rows = append(rows, padRow(record, len(headers)))
	}

	return &types.Table{
		Headers:    headers,
		Rows:       rows,
		SourceFile: source,
	}, nil
}

// configureReader sets the reader up for standard comma-separated files.
func configureReader(reader *csv.Reader) {
	reader.Comma = ','

	// Row widths are checked against the header by Parse.
	reader.FieldsPerRecord = -1

	// Strict quoting: an unterminated quoted field must fail instead of
	// swallowing the rest of the file into one cell.
	reader.LazyQuotes = false
}

// cleanHeaders makes every header name non-empty and unique.
//
// CLEANING OPERATIONS:
//   - An empty name at index i becomes "Unnamed: i"
//   - A repeated name gets a numeric suffix: "amount", "amount.1", "amount.2"
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	taken := make(map[string]int, len(headers))

	for i, header := range headers {
		if header == "" {
			header = fmt.Sprintf("Unnamed: %d", i)
		}

		name := header
		if next, dup := taken[header]; dup {
			for {
				name = fmt.Sprintf("%s.%d", header, next)
				next++
				if _, clash := taken[name]; !clash {
					break
				}
			}
			taken[header] = next
		}

		if _, ok := taken[name]; !ok {
			taken[name] = 1
		}
		cleaned[i] = name
	}

	return cleaned
}

// padRow returns row extended with empty cells to the given width.
func padRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}

	padded := make([]string, width)
	copy(padded, row)
	return padded
}
