// Package config loads optional CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/lucrnz/humandur/duration"
)

// RelPath is the config file location relative to the XDG config dirs.
const RelPath = "humandur/config.yaml"

// Config holds defaults for CLI flags. Zero values mean "use the flag default".
type Config struct {
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
	Lenient   bool   `yaml:"lenient,omitempty"`
	Comma     bool   `yaml:"comma,omitempty"`
	Unit      string `yaml:"unit,omitempty"`
}

// Load reads the config file at path. A missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		return nil, err
	}
	return decode(path, data)
}

// LoadDefault reads the config file from the XDG config dirs.
// If no file exists, it returns a zero-value Config, an empty path and nil error.
func LoadDefault() (*Config, string, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return &Config{}, "", nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // XDG config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", err
	}
	cfg, err := decode(path, data)
	return cfg, path, err
}

func decode(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks values that can be checked without building a logger.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log_format %q", c.LogFormat)
	}
	if c.Unit != "" {
		if _, ok := duration.LookupUnit(strings.ToLower(c.Unit)); !ok {
			return fmt.Errorf("unknown unit %q", c.Unit)
		}
	}
	return nil
}
