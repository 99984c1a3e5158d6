package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"gopkg.in/yaml.v3"
)

// parseBoolEnv reads an environment variable and parses it as a boolean.
// Returns the parsed value and whether the variable held a recognised value.
// Supports true/false, 1/0, yes/no, on/off, t/f, y/n (case-insensitive).
func parseBoolEnv(key string) (bool, bool) {
	value := os.Getenv(key)
	if value == "" {
		return false, false
	}

	if parsed, err := strconv.ParseBool(value); err == nil {
		return parsed, true
	}

	switch strings.ToLower(value) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// Config holds window and runtime settings for the desktop shell
type Config struct {
	// Window settings
	Title         string `json:"title" yaml:"title"`
	Width         int    `json:"width" yaml:"width"`
	Height        int    `json:"height" yaml:"height"`
	MinWidth      int    `json:"minWidth" yaml:"minWidth"`
	MinHeight     int    `json:"minHeight" yaml:"minHeight"`
	Frameless     bool   `json:"frameless" yaml:"frameless"`
	AlwaysOnTop   bool   `json:"alwaysOnTop" yaml:"alwaysOnTop"`
	StartHidden   bool   `json:"startHidden" yaml:"startHidden"`
	DisableResize bool   `json:"disableResize" yaml:"disableResize"`

	// Environment and runtime settings
	Environment string `json:"environment" yaml:"environment"` // development, production, test
	LogLevel    string `json:"logLevel" yaml:"logLevel"`       // debug, info, warn, error
	Version     string `json:"version" yaml:"version"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Title:     "DevToolsX",
		Width:     1200,
		Height:    800,
		MinWidth:  800,
		MinHeight: 560,

		Environment: "production",
		LogLevel:    "info",
		Version:     "0.1.0",
	}
}

// DevelopmentConfig returns a configuration for local development
func DevelopmentConfig() *Config {
	config := DefaultConfig()
	config.Title = "DevToolsX (dev)"
	config.Environment = "development"
	config.LogLevel = "debug"
	return config
}

// TestConfig returns a quiet configuration for tests
func TestConfig() *Config {
	config := DefaultConfig()
	config.Environment = "test"
	config.LogLevel = "error"
	config.StartHidden = true
	return config
}

// LoadFromEnvironment overrides fields from DEVTOOLSX_* variables. A bad
// value leaves its field untouched; the remaining keys are still applied and
// every rejected key is reported in the returned error.
func (c *Config) LoadFromEnvironment() error {
	var errs []error

	if title := os.Getenv("DEVTOOLSX_TITLE"); title != "" {
		c.Title = title
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"DEVTOOLSX_WIDTH", &c.Width},
		{"DEVTOOLSX_HEIGHT", &c.Height},
		{"DEVTOOLSX_MIN_WIDTH", &c.MinWidth},
		{"DEVTOOLSX_MIN_HEIGHT", &c.MinHeight},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", v.key, err))
			continue
		}
		*v.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"DEVTOOLSX_FRAMELESS", &c.Frameless},
		{"DEVTOOLSX_ALWAYS_ON_TOP", &c.AlwaysOnTop},
		{"DEVTOOLSX_START_HIDDEN", &c.StartHidden},
		{"DEVTOOLSX_DISABLE_RESIZE", &c.DisableResize},
	}
	for _, v := range bools {
		if parsed, ok := parseBoolEnv(v.key); ok {
			*v.dst = parsed
		} else if raw := os.Getenv(v.key); raw != "" {
			errs = append(errs, fmt.Errorf("invalid %s: %q is not a boolean", v.key, raw))
		}
	}

	if raw := os.Getenv("DEVTOOLSX_ENVIRONMENT"); raw != "" {
		if env, ok := NormalizeEnvironment(raw); ok {
			c.Environment = env
		} else {
			errs = append(errs, fmt.Errorf("invalid DEVTOOLSX_ENVIRONMENT: %s", raw))
		}
	}
	if raw := os.Getenv("DEVTOOLSX_LOG_LEVEL"); raw != "" {
		if _, ok := wailsLevels[strings.ToLower(raw)]; ok {
			c.LogLevel = raw
		} else {
			errs = append(errs, fmt.Errorf("invalid DEVTOOLSX_LOG_LEVEL: %s", raw))
		}
	}

	return errors.Join(errs...)
}

// NormalizeEnvironment maps env and its short aliases onto the canonical
// environment names. The second result is false for unknown names.
func NormalizeEnvironment(env string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev":
		return "development", true
	case "test", "testing":
		return "test", true
	case "production", "prod":
		return "production", true
	default:
		return "", false
	}
}

// LoadFile overlays settings from a YAML file. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if env, ok := NormalizeEnvironment(c.Environment); ok {
		c.Environment = env
	}
	return nil
}

// Validate checks the configuration for inconsistent values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}

	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("minimum window size cannot be negative, got %dx%d", c.MinWidth, c.MinHeight)
	}

	if c.MinWidth > c.Width || c.MinHeight > c.Height {
		return fmt.Errorf("minimum window size (%dx%d) cannot exceed window size (%dx%d)", c.MinWidth, c.MinHeight, c.Width, c.Height)
	}

	validEnvironments := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvironments[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	if _, ok := wailsLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("invalid logLevel: %s", c.LogLevel)
	}

	return nil
}

var wailsLevels = map[string]logger.LogLevel{
	"trace":   logger.TRACE,
	"debug":   logger.DEBUG,
	"info":    logger.INFO,
	"warn":    logger.WARNING,
	"warning": logger.WARNING,
	"error":   logger.ERROR,
}

// WailsLogLevel maps LogLevel onto the runtime's log level, defaulting to INFO
func (c *Config) WailsLogLevel() logger.LogLevel {
	if lvl, ok := wailsLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return logger.INFO
}

// Clone returns a copy of the configuration. Config holds no reference
// fields, so the copy shares no state with c.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ConfigForEnvironment returns the base configuration for env with
// DEVTOOLSX_* overrides applied. Unknown environments get the defaults. The
// returned config is always usable; the error lists overrides that were
// rejected and can be logged as a warning.
func ConfigForEnvironment(env string) (*Config, error) {
	var config *Config

	name, _ := NormalizeEnvironment(env)
	switch name {
	case "development":
		config = DevelopmentConfig()
	case "test":
		config = TestConfig()
	default:
		config = DefaultConfig()
	}

	if err := config.LoadFromEnvironment(); err != nil {
		return config, fmt.Errorf("ignoring environment overrides: %w", err)
	}
	return config, nil
}

// DefaultFilePath returns the per-user config file location, or "" when the
// platform has no user config directory.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "devtoolsx", "config.yaml")
}
