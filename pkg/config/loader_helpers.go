package config

import (
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/odvcencio/focustrap/pkg/errors"
)

// loadAndMerge loads a YAML file and merges it into the config.
// A missing file is returned as is so callers can use os.IsNotExist.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeConfigParse, "parsing YAML").WithContext("path", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeConfigParse, "parsing YAML").WithContext("path", path)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. Strings override when non-empty;
// booleans override only when the YAML actually sets them.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if override.UI.Theme != "" {
		base.UI.Theme = override.UI.Theme
	}
	if boolFieldSet(raw, "ui", "high_contrast") {
		base.UI.HighContrast = override.UI.HighContrast
	}

	if override.Logging.Dir != "" {
		base.Logging.Dir = override.Logging.Dir
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if boolFieldSet(raw, "trap", "focus_initial_on_activate") {
		base.Trap.FocusInitialOnActivate = override.Trap.FocusInitialOnActivate
	}
	if override.Trap.InitialFocus != "" {
		base.Trap.InitialFocus = override.Trap.InitialFocus
	}

	if boolFieldSet(raw, "metrics", "addr") {
		base.Metrics.Addr = override.Metrics.Addr
	}
}

func boolFieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}
