// Package config reads the imstyle CLI configuration file.
//
// The file is JSON with comments:
//
//	{
//	  // multiplies every font size read from a theme
//	  "fontScale": 1.5,
//	  "themeDirs": ["themes", "/usr/share/imstyle"],
//	  "patterns": ["**/*.ini"],
//	  "logLevel": "debug"
//	}
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/imstyle/internal/log"
	"github.com/tidwall/jsonc"
)

// FileName is looked up in the working directory when --config is not given
const FileName = ".imstyle.json"

// ErrInvalid is wrapped by errors for well-formed files with bad values
var ErrInvalid = errors.New("invalid configuration")

// Config holds the CLI settings
type Config struct {
	FontScale float32  `json:"fontScale"`
	ThemeDirs []string `json:"themeDirs"`
	Patterns  []string `json:"patterns"`
	LogLevel  string   `json:"logLevel"`
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		FontScale: 1,
		ThemeDirs: []string{"."},
		LogLevel:  log.LevelInfo.String(),
	}
}

// Load reads path. A missing file yields Default() and no error. Relative
// theme directories are resolved against the directory holding the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // G304: user supplied config path
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("No config at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, d := range cfg.ThemeDirs {
		if !filepath.IsAbs(d) {
			cfg.ThemeDirs[i] = filepath.Join(dir, d)
		}
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.FontScale < 0 {
		return fmt.Errorf("%w: fontScale must not be negative, got %g", ErrInvalid, c.FontScale)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
