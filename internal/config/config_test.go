package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Nil(t, cfg.LogPath())
}

func TestLoadEmptyFileGivesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
color: never
verbosity: 2
format: yaml
log_file: /tmp/sequent.log
`))
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.Equal(t, "yaml", cfg.Format)
	require.NotNil(t, cfg.LogPath())
	assert.Equal(t, "/tmp/sequent.log", *cfg.LogPath())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "verbosity: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 1, cfg.Verbosity)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "colour: never\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"color", "color: purple\n", `color "purple"`},
		{"format", "format: xml\n", `format "xml"`},
		{"verbosity", "verbosity: 9\n", "verbosity 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "color: [never\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
