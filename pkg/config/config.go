// Package config loads focustrap settings from YAML files and the
// environment.
package config

import (
	"net"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/odvcencio/focustrap/pkg/errors"
	"github.com/odvcencio/focustrap/pkg/logging"
)

// Config is the complete focustrap configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Trap    TrapConfig    `yaml:"trap"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// UIConfig controls rendering.
type UIConfig struct {
	Theme        string `yaml:"theme"`
	HighContrast bool   `yaml:"high_contrast"`
}

// LoggingConfig controls the JSONL event log.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// TrapConfig controls focus trap behavior.
type TrapConfig struct {
	// FocusInitialOnActivate makes Activate focus the initial focus
	// element instead of the first focusable element.
	FocusInitialOnActivate bool `yaml:"focus_initial_on_activate"`
	// InitialFocus is the element ID used as the trap's initial focus.
	InitialFocus string `yaml:"initial_focus"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address; empty disables the endpoint.
	Addr string `yaml:"addr"`
}

var validThemes = map[string]bool{
	"default":       true,
	"high-contrast": true,
	"mono":          true,
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{Theme: "default"},
		Logging: LoggingConfig{
			Dir:   filepath.Join("~", ".focustrap", "logs"),
			Level: string(logging.LevelInfo),
		},
	}
}

// ThemeName returns the theme to render with. HighContrast wins over Theme.
func (c *Config) ThemeName() string {
	if c.UI.HighContrast {
		return "high-contrast"
	}
	return c.UI.Theme
}

// LogDir returns the log directory with ~ expanded.
func (c *Config) LogDir() string {
	return expandHomeDir(c.Logging.Dir)
}

// Load loads configuration from default locations with proper precedence:
// defaults, ~/.focustrap/config.yaml, ./.focustrap/config.yaml, then
// FOCUSTRAP_* environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		userConfigPath := filepath.Join(home, ".focustrap", "config.yaml")
		if err := loadAndMerge(cfg, userConfigPath); err != nil && !os.IsNotExist(err) {
			return nil, wrapLoadError(err, userConfigPath)
		}
	}

	projectConfigPath := filepath.Join(".", ".focustrap", "config.yaml")
	if err := loadAndMerge(cfg, projectConfigPath); err != nil && !os.IsNotExist(err) {
		return nil, wrapLoadError(err, projectConfigPath)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadAndMerge(cfg, path); err != nil {
		return nil, wrapLoadError(err, path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func wrapLoadError(err error, path string) error {
	if apperrors.IsCode(err, apperrors.ErrCodeConfigParse) {
		return err
	}
	return apperrors.Wrap(err, apperrors.ErrCodeConfigLoad, "loading config").
		WithContext("path", path)
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOCUSTRAP_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if val, ok := envBool("FOCUSTRAP_HIGH_CONTRAST"); ok {
		cfg.UI.HighContrast = val
	}
	if v := os.Getenv("FOCUSTRAP_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv("FOCUSTRAP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if val, ok := envBool("FOCUSTRAP_FOCUS_INITIAL"); ok {
		cfg.Trap.FocusInitialOnActivate = val
	}
	if v := os.Getenv("FOCUSTRAP_INITIAL_FOCUS"); v != "" {
		cfg.Trap.InitialFocus = v
	}
	if v, ok := os.LookupEnv("FOCUSTRAP_METRICS_ADDR"); ok {
		cfg.Metrics.Addr = strings.TrimSpace(v)
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	theme := strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if !validThemes[theme] {
		return apperrors.New(apperrors.ErrCodeConfigInvalid, "invalid theme").
			WithContext("theme", c.UI.Theme).
			WithRemediation("use one of: default, high-contrast, mono")
	}
	c.UI.Theme = theme

	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "invalid log level").
			WithRemediation("use one of: debug, info, warn, error")
	}
	c.Logging.Level = string(level)

	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "invalid metrics address").
				WithContext("addr", c.Metrics.Addr)
		}
	}
	return nil
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
