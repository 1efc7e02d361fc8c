package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the defaults file name looked up under the user config dir.
const FileName = "config.toml"

// Config holds the user's default output and logging settings. Command-line
// flags take precedence over every field here.
type Config struct {
	Format    string `toml:"format,omitempty"`
	Syntax    string `toml:"syntax,omitempty"`
	LogLevel  string `toml:"log_level,omitempty"`
	LogFormat string `toml:"log_format,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Format:    "seconds",
		Syntax:    "human",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks that enum fields hold known values. Empty fields are
// allowed; they fall back to defaults at load time.
func (c *Config) Validate() error {
	var errs []error
	switch c.Format {
	case "", "seconds", "pretty", "go":
	default:
		errs = append(errs, fmt.Errorf("unknown format %q", c.Format))
	}
	switch c.Syntax {
	case "", "human", "go":
	default:
		errs = append(errs, fmt.Errorf("unknown syntax %q", c.Syntax))
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log_format %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DefaultPath returns the per-user defaults file location
// ($XDG_CONFIG_HOME/humandur/config.toml on Linux).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "humandur", FileName), nil
}

// Load reads a TOML defaults file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as TOML, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
