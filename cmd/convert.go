// =============================================================================
// CSV to XLSX Converter - Convert Pipeline
// =============================================================================
//
// This file wires configuration, logging and the converter together for the
// root command.
//
// PROCESSING PIPELINE:
//   1. Load configuration (defaults when --config is not given)
//   2. Apply the positional input/output directory arguments
//   3. Run the converter, which prints one status line per CSV file
//   4. Print a summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/config"
	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/converter"
	"github.com/ginjaninja78/csv-to-xlsx-conversion/internal/logging"
)

// runConvert is the main function that orchestrates the conversion.
func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Positional arguments take precedence over the configuration file.
	if len(args) > 0 {
		cfg.InputDir = args[0]
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}

	logger := logging.New(cfg.Logging, verbose, cmd.ErrOrStderr())

	options := converter.OptionsFromConfig(cfg)
	options.DryRun = dryRun

	out := cmd.OutOrStdout()
	summary, err := converter.New(options, out, logger).Run()
	if err != nil {
		return err
	}

	printSummary(out, summary)
	return nil
}

// printSummary writes the end-of-run totals.
func printSummary(w io.Writer, summary *converter.Summary) {
	if summary.Total() == 0 {
		fmt.Fprintln(w, "No CSV files found in the input directory.")
		return
	}

	fmt.Fprintln(w, "\n=== Conversion Complete ===")
	fmt.Fprintf(w, "Total files:     %d\n", summary.Total())
	fmt.Fprintf(w, "Converted:       %d\n", summary.Converted)
	fmt.Fprintf(w, "Failed:          %d\n", summary.Failed)
	fmt.Fprintf(w, "Time elapsed:    %s\n", summary.Elapsed)
}
