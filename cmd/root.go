// =============================================================================
// CSV to XLSX Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command converts every CSV file in the input directory to XLSX.
//
// COBRA CLI STRUCTURE:
//   rootCmd (csv2xlsx [input-dir] [output-dir])
//   └── versionCmd (csv2xlsx version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the optional configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
// When empty, built-in defaults are used.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// dryRun reads and reports every file without writing any output.
var dryRun bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. It runs the batch conversion.
var rootCmd = &cobra.Command{
	Use:   "csv2xlsx [input-dir] [output-dir]",
	Short: "CSV to XLSX Converter - Convert a folder of CSV files to Excel workbooks",
	Long: `CSV to XLSX Converter turns every CSV file in a directory into an XLSX
workbook with the same base name.

Each file is decoded as UTF-8 first. If the bytes are not valid UTF-8, the
file is decoded again as EUC-KR. Files that neither encoding can decode are
reported and skipped; the rest of the directory is still converted.

Defaults:
  input-dir   inputs
  output-dir  outputs (created if missing)

Example Usage:
  csv2xlsx                          # Convert ./inputs into ./outputs
  csv2xlsx data/csv data/xlsx       # Use explicit directories
  csv2xlsx --config ./csv2xlsx.yaml # Use a configuration file`,

	Args: cobra.MaximumNArgs(2),

	// Errors are printed once by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global and local flags.
func init() {
	// --config flag: Optional YAML configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional YAML configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	// --dry-run flag: Read and report without writing output files.
	rootCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Read and report every file without writing output files",
	)
}
