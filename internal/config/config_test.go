package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, "outputs", cfg.OutputDir)
	assert.Equal(t, "Sheet1", cfg.SheetName)
	assert.False(t, cfg.InferNumbers)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			yaml: `
input_dir: data/in
output_dir: data/out
sheet_name: 변환
infer_numbers: true
logging:
  level: debug
  format: json
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "data/in", cfg.InputDir)
				assert.Equal(t, "data/out", cfg.OutputDir)
				assert.Equal(t, "변환", cfg.SheetName)
				assert.True(t, cfg.InferNumbers)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "partial file gets defaults",
			yaml: "output_dir: elsewhere\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "inputs", cfg.InputDir)
				assert.Equal(t, "elsewhere", cfg.OutputDir)
				assert.Equal(t, "Sheet1", cfg.SheetName)
				assert.Equal(t, "info", cfg.Logging.Level)
			},
		},
		{
			name:    "bad yaml",
			yaml:    "input_dir: [unterminated\n",
			wantErr: "failed to parse config file",
		},
		{
			name:    "unknown level",
			yaml:    "logging:\n  level: loud\n",
			wantErr: `unknown log level "loud"`,
		},
		{
			name:    "unknown format",
			yaml:    "logging:\n  format: xml\n",
			wantErr: `unknown log format "xml"`,
		},
		{
			name:    "sheet name too long",
			yaml:    "sheet_name: abcdefghijklmnopqrstuvwxyz0123456789\n",
			wantErr: "longer than 31 characters",
		},
		{
			name:    "sheet name with slash",
			yaml:    "sheet_name: a/b\n",
			wantErr: "not allowed by Excel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
