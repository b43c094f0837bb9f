package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the dfserve runtime configuration. Values are layered
// in increasing precedence: defaults, TOML file, DFSERVE_* environment
// variables, command-line flags.
type Config struct {
	Addr          string `toml:"addr" env:"DFSERVE_ADDR"`
	DBPath        string `toml:"db_path" env:"DFSERVE_DB_PATH"`
	LogLevel      string `toml:"log_level" env:"DFSERVE_LOG_LEVEL"`
	DefaultLocale string `toml:"default_locale" env:"DFSERVE_DEFAULT_LOCALE"`
	WatchConfig   bool   `toml:"watch_config" env:"DFSERVE_WATCH_CONFIG"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		DBPath:        "dfserve.db",
		LogLevel:      "info",
		DefaultLocale: "en",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	if c.DefaultLocale == "" {
		return fmt.Errorf("default locale is required")
	}
	return nil
}

// fileConfig mirrors Config with pointer fields so absent keys leave
// the existing value untouched.
type fileConfig struct {
	Addr          *string `toml:"addr"`
	DBPath        *string `toml:"db_path"`
	LogLevel      *string `toml:"log_level"`
	DefaultLocale *string `toml:"default_locale"`
	WatchConfig   *bool   `toml:"watch_config"`
}

// ApplyFile overlays values from a TOML file onto cfg. A missing file
// is not an error; a malformed one is.
func ApplyFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if fc.Addr != nil {
		cfg.Addr = *fc.Addr
	}
	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.DefaultLocale != nil {
		cfg.DefaultLocale = *fc.DefaultLocale
	}
	if fc.WatchConfig != nil {
		cfg.WatchConfig = *fc.WatchConfig
	}
	return nil
}

// ApplyEnv overlays DFSERVE_* environment variables onto cfg. Unset
// variables leave the existing values untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DefaultConfigPath returns ~/.dfserve/config.toml when the home
// directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".dfserve", "config.toml")
	}
	return ""
}
