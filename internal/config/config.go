// Package config holds user preferences for the sweeper CLI: theme, default
// difficulty, the playable board range, and debug logging. Preferences live
// in a YAML file under the user's home directory and can be overridden with
// SWEEPER_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all sweeper configuration.
type Config struct {
	// Theme selects the color scheme: "light" or "dark".
	Theme string `yaml:"theme"`

	// DefaultPreset is the difficulty used when start is given no arguments.
	DefaultPreset string `yaml:"default_preset"`

	// Board bounds for custom games.
	Board BoardConfig `yaml:"board"`

	// Logging controls the debug log file.
	Logging LoggingConfig `yaml:"logging"`
}

// BoardConfig bounds custom game dimensions. Columns are labeled A..Z, so
// the playable maximum is 26 regardless of what the engine would allow.
type BoardConfig struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// LoggingConfig configures the debug log. The log is written to a file so
// it never fights the TUI for the terminal.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:         "light",
		DefaultPreset: "easy",
		Board: BoardConfig{
			MinSize: 4,
			MaxSize: 26,
		},
		Logging: LoggingConfig{
			Debug: false,
			File:  filepath.Join(Dir(), "sweeper.log"),
		},
	}
}

// Dir returns the directory where config and logs are stored.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sweeper"
	}
	return filepath.Join(home, ".sweeper")
}

// DefaultPath returns the full path to the config file.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the configuration from path. A missing file is not an error:
// defaults apply, then environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark, got %q", c.Theme)
	}
	switch c.DefaultPreset {
	case "easy", "normal", "hard":
	default:
		return fmt.Errorf("default_preset must be easy, normal, or hard, got %q", c.DefaultPreset)
	}
	if c.Board.MinSize < 1 || c.Board.MaxSize > 26 || c.Board.MinSize > c.Board.MaxSize {
		return fmt.Errorf("board size range %d..%d is invalid", c.Board.MinSize, c.Board.MaxSize)
	}
	return nil
}

// applyEnvOverrides applies SWEEPER_* environment variables on top of the
// loaded file. Env wins over file; flags win over env (handled by the CLI).
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("SWEEPER_THEME"); theme != "" {
		c.Theme = theme
	}
	if preset := os.Getenv("SWEEPER_PRESET"); preset != "" {
		c.DefaultPreset = preset
	}
	if debug := os.Getenv("SWEEPER_DEBUG"); debug == "1" || debug == "true" {
		c.Logging.Debug = true
	}
}
