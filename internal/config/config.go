package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config errors.
var (
	ErrBadLogLevel = errors.New("invalid log level")
)

// Config holds all termkey settings.
type Config struct {
	Input   InputConfig   `toml:"input"`
	Logging LoggingConfig `toml:"logging"`
	Keymaps KeymapConfig  `toml:"keymaps"`
}

// InputConfig controls how raw terminal input is decoded.
type InputConfig struct {
	// KittyKeyboard enables decoding of Kitty keyboard protocol
	// sequences before the legacy rules run.
	KittyKeyboard bool `toml:"kitty_keyboard"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is where log output goes. Empty means stderr.
	File string `toml:"file"`
}

// KeymapConfig controls keymap loading.
type KeymapConfig struct {
	// Paths are directories searched for keymap files.
	Paths []string `toml:"paths"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			KittyKeyboard: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Keymaps: KeymapConfig{
			Paths: []string{filepath.Join(DefaultDir(), "keymaps")},
		},
	}
}

// Load reads configuration from a TOML file, layered over the defaults
// and under any environment overrides. A missing file is not an error;
// defaults plus environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to env overrides.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.Logging.Level)
	}
	return nil
}

// DefaultDir returns the user configuration directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "termkey")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "termkey")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}
