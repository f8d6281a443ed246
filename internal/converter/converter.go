// =============================================================================
// CSV to XLSX Converter - Converter Module
// =============================================================================
//
// This module contains the batch conversion loop. It walks the input
// directory once and converts every CSV file it finds into an XLSX workbook.
//
// CONVERSION PIPELINE (per file):
//   1. Derive the output path (same base name, .xlsx, in the output dir)
//   2. Read the CSV with the encoding fallback (utf-8, then euc-kr)
//   3. Write the table to the output workbook
//   4. Print one status line (success or failure)
//
// FAILURE HANDLING:
//   A failure in one file is reported and the loop moves on to the next
//   file. Only directory-level problems (output directory cannot be created,
//   input directory cannot be listed) abort the run.
//
// CONCURRENCY:
//   Files are processed one at a time, in directory-listing order. Each
//   file's read, parse and write completes before the next file starts.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/charset"
	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/config"
	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/csvparser"
	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/xlsxwriter"
	"github.com/ginjaninja78/csv-to-xlsx-conversion/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path of the generated workbook.
	// This is empty if processing failed.
	OutputFile string

	// Encoding is the name of the encoding that decoded the file.
	// This is empty if processing failed.
	Encoding string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	// This is nil if processing was successful.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsProcessed is the number of data rows written (header excluded).
	RowsProcessed int

	// Columns is the number of columns in the table.
	Columns int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// Summary describes a whole run.
type Summary struct {
	// RunID identifies the run in log records.
	RunID string

	// Results holds one entry per CSV file, in processing order.
	Results []Result

	// Converted and Failed count the results by outcome.
	Converted int
	Failed    int

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Total returns the number of CSV files processed.
func (s *Summary) Total() int {
	return len(s.Results)
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Options configures a Converter.
type Options struct {
	// InputDir is scanned for CSV files.
	InputDir string

	// OutputDir receives the generated workbooks.
	OutputDir string

	// Write controls the workbook layout.
	Write xlsxwriter.Options

	// DryRun reads and reports every file without creating the output
	// directory or writing any workbook.
	DryRun bool
}

// OptionsFromConfig builds converter options from the application config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Write: xlsxwriter.Options{
			SheetName:    cfg.SheetName,
			InferNumbers: cfg.InferNumbers,
		},
	}
}

// Converter runs the batch conversion.
type Converter struct {
	files      *utils.FileManager
	candidates []charset.Candidate
	options    Options

	// out receives the human-readable status lines.
	out io.Writer

	logger *slog.Logger
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter.
//
// PARAMETERS:
//   - options: Directories, write options and dry-run flag.
//   - out: Where per-file status lines are printed.
//   - logger: Diagnostic logger.
func New(options Options, out io.Writer, logger *slog.Logger) *Converter {
	return &Converter{
		files:      utils.NewFileManager(options.InputDir, options.OutputDir),
		candidates: charset.Defaults(),
		options:    options,
		out:        out,
		logger:     logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run converts every CSV file in the input directory.
//
// RETURNS:
//   - A Summary of the run, including failed files.
//   - An error only when the run could not proceed at all.
func (c *Converter) Run() (*Summary, error) {
	startTime := time.Now()
	summary := &Summary{RunID: uuid.NewString()}
	logger := c.logger.With(slog.String("run_id", summary.RunID))

	logger.Info("starting conversion",
		slog.String("input_dir", c.options.InputDir),
		slog.String("output_dir", c.options.OutputDir),
		slog.Bool("dry_run", c.options.DryRun))

	// =========================================================================
	// STEP 1: PREPARE OUTPUT DIRECTORY
	// =========================================================================

	if !c.options.DryRun {
		if err := c.files.EnsureOutputDir(); err != nil {
			return nil, err
		}
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	inputFiles, err := c.files.DiscoverInputFiles()
	if err != nil {
		return nil, err
	}

	logger.Debug("discovered input files", slog.Int("count", len(inputFiles)))

	// =========================================================================
	// STEP 3: CONVERT EACH FILE
	// =========================================================================

	for _, inputPath := range inputFiles {
		result := c.convertFile(inputPath)
		c.report(logger, result)

		if result.Success {
			summary.Converted++
		} else {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
	}

	summary.Elapsed = time.Since(startTime)

	logger.Info("conversion finished",
		slog.Int("converted", summary.Converted),
		slog.Int("failed", summary.Failed),
		slog.Duration("elapsed", summary.Elapsed))

	return summary, nil
}

// convertFile runs the read-parse-write cycle for one file.
func (c *Converter) convertFile(inputPath string) Result {
	startTime := time.Now()
	result := Result{FilePath: inputPath}

	outputPath := c.files.OutputPathFor(inputPath)

	table, err := csvparser.ReadWithFallback(inputPath, c.candidates)
	if err != nil {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	if !c.options.DryRun {
		if err := xlsxwriter.Write(table, outputPath, c.options.Write); err != nil {
			result.Error = fmt.Errorf("failed to write %s: %w", outputPath, err)
			result.Stats.ProcessingTime = time.Since(startTime)
			return result
		}
	}

	result.Success = true
	result.OutputFile = outputPath
	result.Encoding = table.Encoding
	result.Stats = ProcessingStats{
		RowsProcessed:  table.RowCount(),
		Columns:        table.ColumnCount(),
		ProcessingTime: time.Since(startTime),
	}

	return result
}

// report prints the status line for one file and logs the outcome.
func (c *Converter) report(logger *slog.Logger, result Result) {
	if !result.Success {
		fmt.Fprintf(c.out, "✗ %s: %v\n", result.FilePath, result.Error)
		logger.Warn("conversion failed",
			slog.String("file", result.FilePath),
			slog.String("error", result.Error.Error()))
		return
	}

	suffix := ""
	if c.options.DryRun {
		suffix = " [dry run]"
	}
	fmt.Fprintf(c.out, "✓ %s -> %s (encoding: %s)%s\n", result.FilePath, result.OutputFile, result.Encoding, suffix)

	logger.Debug("converted file",
		slog.String("file", result.FilePath),
		slog.String("output", result.OutputFile),
		slog.String("encoding", result.Encoding),
		slog.Int("rows", result.Stats.RowsProcessed),
		slog.Int("columns", result.Stats.Columns),
		slog.Duration("elapsed", result.Stats.ProcessingTime))
}
