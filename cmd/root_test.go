package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, verbose, dryRun = "", false, false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootConvertsDirectory(t *testing.T) {
	root := t.TempDir()
	in := filepath.Join(root, "in")
	out := filepath.Join(root, "out")
	require.NoError(t, os.Mkdir(in, 0755))

	legacy, err := korean.EUCKR.NewEncoder().Bytes([]byte("이름\n홍길동\n"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(in, "a.csv"), []byte("a,b\n1,2\n3,4\n5,6\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "b.csv"), legacy, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "c.csv"), []byte{0xFF, 0xFF}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("skip"), 0644))

	stdout, err := execute(t, in, out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "a.xlsx"))
	assert.FileExists(t, filepath.Join(out, "b.xlsx"))
	assert.NoFileExists(t, filepath.Join(out, "c.xlsx"))
	assert.NoFileExists(t, filepath.Join(out, "notes.xlsx"))

	var success, failure int
	for _, line := range strings.Split(stdout, "\n") {
		switch {
		case strings.HasPrefix(line, "✓ "):
			success++
		case strings.HasPrefix(line, "✗ "):
			failure++
			assert.Contains(t, line, "c.csv")
		}
	}
	assert.Equal(t, 2, success)
	assert.Equal(t, 1, failure)
	assert.NotContains(t, stdout, "notes.txt")
	assert.Contains(t, stdout, "(encoding: euc-kr)")
	assert.Contains(t, stdout, "Converted:       2")
	assert.Contains(t, stdout, "Failed:          1")
}

func TestRootUsesConfigDirectories(t *testing.T) {
	root := t.TempDir()
	in := filepath.Join(root, "from-config")
	out := filepath.Join(root, "to-config")
	require.NoError(t, os.Mkdir(in, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "x.csv"), []byte("x\n1\n"), 0644))

	cfgPath := filepath.Join(root, "config.yaml")
	cfg := "input_dir: " + in + "\noutput_dir: " + out + "\nsheet_name: Data\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	_, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "x.xlsx"))
}

func TestRootMissingInputDir(t *testing.T) {
	root := t.TempDir()

	_, err := execute(t, filepath.Join(root, "missing"), filepath.Join(root, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan input directory")
}

func TestRootEmptyInputDir(t *testing.T) {
	root := t.TempDir()

	stdout, err := execute(t, root, filepath.Join(root, "out"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "No CSV files found")
}

func TestRootTooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b", "c")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CSV to XLSX Converter")
	assert.Contains(t, stdout, "Version:    "+Version)
}
