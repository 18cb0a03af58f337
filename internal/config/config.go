// Package config loads the optional .sequent.yaml file that sets defaults for
// the command line tools. Command line flags take precedence over it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".sequent.yaml"

var (
	ValidColors  = []string{"auto", "always", "never"}
	ValidFormats = []string{"text", "json", "yaml"}
)

// Config holds tool defaults.
type Config struct {
	// Color selects colored diagnostics: auto, always or never.
	Color string `yaml:"color"`

	// Verbosity is passed to commonlog.Configure. Zero logs notices and
	// above; every step up adds a level.
	Verbosity int `yaml:"verbosity"`

	// Format is the output format of `sequent parse`.
	Format string `yaml:"format"`

	// LogFile redirects logs from stderr to a file.
	LogFile string `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Color:  "auto",
		Format: "text",
	}
}

// Load reads the configuration at path. A missing file is not an error and
// yields the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if !slices.Contains(ValidColors, c.Color) {
		return fmt.Errorf("color %q must be one of %v", c.Color, ValidColors)
	}
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("format %q must be one of %v", c.Format, ValidFormats)
	}
	if c.Verbosity < -4 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d must be between -4 and 2", c.Verbosity)
	}
	return nil
}

// LogPath returns the log file for commonlog.Configure, or nil for stderr.
func (c *Config) LogPath() *string {
	if c.LogFile == "" {
		return nil
	}
	return &c.LogFile
}
