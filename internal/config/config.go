// Package config loads optional user preferences for the calculator
// utilities from a YAML file in the user config directory. A missing file
// yields the defaults; the programs never write the file themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPrecision formats results in the shortest round-trip form.
	DefaultPrecision = -1

	// ColorAuto defers to the terminal's color profile.
	ColorAuto = "auto"
	// ColorAlways forces styled output.
	ColorAlways = "always"
	// ColorNever disables styled output.
	ColorNever = "never"
)

// Config defines user preferences stored in config.yaml.
type Config struct {
	// Color controls styled output: auto, always, or never (default auto).
	Color *string `yaml:"color,omitempty"`

	// Precision is the number of decimals printed for results
	// (default -1 = shortest form that round-trips).
	Precision *int `yaml:"precision,omitempty"`
}

// GetColor returns the color mode (default auto).
func (c *Config) GetColor() string {
	if c == nil || c.Color == nil {
		return ColorAuto
	}
	return *c.Color
}

// GetPrecision returns the display precision (default -1).
func (c *Config) GetPrecision() int {
	if c == nil || c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

// Default returns a config with all defaults.
func Default() Config {
	return Config{}
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "calcsuite", "config.yaml"), nil
}

// Load reads the config at path. A missing file is not an error and returns
// the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.GetColor() {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("invalid color mode %q, must be auto, always, or never", cfg.GetColor())
	}

	return cfg, nil
}

// LoadDefault reads the config from the standard location, falling back to
// defaults when the user config directory cannot be resolved.
func LoadDefault() Config {
	path, err := Path()
	if err != nil {
		return Default()
	}
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}
