// =============================================================================
// CSV to XLSX Converter - File Manager Utility
// =============================================================================
//
// This module provides the filesystem side of a conversion run:
//   - Output directory creation
//   - Input file discovery
//   - Output file naming
//
// DISCOVERY RULES:
//   - Only the top level of the input directory is scanned
//   - A file is an input when its name ends in ".csv", compared
//     case-insensitively ("a.CSV" is an input, "a.csv.bak" is not)
//   - Sub-directories are skipped, even when their name ends in ".csv"
//   - Files are returned in directory-listing order
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions used for discovery and output naming.
const (
	InputExtension  = ".csv"
	OutputExtension = ".xlsx"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the converter.
type FileManager struct {
	// InputDir is the directory scanned for CSV files.
	InputDir string

	// OutputDir is the directory where XLSX files are written.
	OutputDir string
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(inputDir, outputDir string) *FileManager {
	return &FileManager{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureOutputDir creates the output directory and any missing parents.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles lists the CSV files in the input directory.
//
// RETURNS:
//   - A slice of file paths (InputDir joined with the entry name).
//   - An error if the directory cannot be read.
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !IsCSVName(entry.Name()) {
			continue
		}

		path := filepath.Join(fm.InputDir, entry.Name())
		if entry.IsDir() {
			continue
		}

		// A symlink to a directory is skipped. A dangling link stays in the
		// list so reading it fails and gets reported like any other file.
		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				continue
			}
		}

		files = append(files, path)
	}

	return files, nil
}

// IsCSVName reports whether a file name carries the CSV extension,
// ignoring case.
func IsCSVName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), InputExtension)
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// OutputPathFor derives the spreadsheet path for an input file: same base
// name, ".xlsx" extension, inside OutputDir.
//
// EXAMPLE:
//   inputs/sales.CSV -> outputs/sales.xlsx
func (fm *FileManager) OutputPathFor(inputPath string) string {
	return filepath.Join(fm.OutputDir, baseName(filepath.Base(inputPath))+OutputExtension)
}

// baseName strips the last extension from a file name. Leading dots do not
// start an extension, so ".csv" is returned unchanged.
func baseName(name string) string {
	if !strings.Contains(strings.TrimLeft(name, "."), ".") {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
