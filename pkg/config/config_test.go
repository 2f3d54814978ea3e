package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/odvcencio/focustrap/pkg/config"
	apperrors "github.com/odvcencio/focustrap/pkg/errors"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(project)
	for _, key := range []string{
		"FOCUSTRAP_THEME",
		"FOCUSTRAP_HIGH_CONTRAST",
		"FOCUSTRAP_LOG_DIR",
		"FOCUSTRAP_LOG_LEVEL",
		"FOCUSTRAP_FOCUS_INITIAL",
		"FOCUSTRAP_INITIAL_FOCUS",
	} {
		t.Setenv(key, "")
	}
	return home, project
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.UI.Theme != "default" {
		t.Errorf("theme = %q, want default", cfg.UI.Theme)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Trap.FocusInitialOnActivate {
		t.Error("FocusInitialOnActivate should default to false")
	}
	if cfg.Metrics.Addr != "" {
		t.Errorf("metrics addr = %q, want empty", cfg.Metrics.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("theme = %q, want default", cfg.UI.Theme)
	}
}

func TestLoadHierarchy(t *testing.T) {
	home, project := isolate(t)

	writeConfig(t, filepath.Join(home, ".focustrap", "config.yaml"), `
ui:
  theme: mono
  high_contrast: true
logging:
  level: debug
trap:
  focus_initial_on_activate: true
`)
	writeConfig(t, filepath.Join(project, ".focustrap", "config.yaml"), `
ui:
  high_contrast: false
trap:
  initial_focus: confirm
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "mono" {
		t.Errorf("theme = %q, want mono from user config", cfg.UI.Theme)
	}
	if cfg.UI.HighContrast {
		t.Error("project config should turn high contrast back off")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Trap.FocusInitialOnActivate {
		t.Error("unset bool in project config should keep the user value")
	}
	if cfg.Trap.InitialFocus != "confirm" {
		t.Errorf("initial focus = %q, want confirm", cfg.Trap.InitialFocus)
	}
}

func TestEnvOverrides(t *testing.T) {
	home, _ := isolate(t)
	writeConfig(t, filepath.Join(home, ".focustrap", "config.yaml"), `
ui:
  theme: mono
`)
	t.Setenv("FOCUSTRAP_THEME", "high-contrast")
	t.Setenv("FOCUSTRAP_FOCUS_INITIAL", "yes")
	t.Setenv("FOCUSTRAP_LOG_LEVEL", "WARN")
	t.Setenv("FOCUSTRAP_METRICS_ADDR", "127.0.0.1:9464")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "high-contrast" {
		t.Errorf("theme = %q, want high-contrast", cfg.UI.Theme)
	}
	if !cfg.Trap.FocusInitialOnActivate {
		t.Error("FOCUSTRAP_FOCUS_INITIAL=yes should enable initial focus activation")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9464" {
		t.Errorf("metrics addr = %q", cfg.Metrics.Addr)
	}
}

func TestEnvBoolIgnoresGarbage(t *testing.T) {
	isolate(t)
	t.Setenv("FOCUSTRAP_HIGH_CONTRAST", "maybe")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.HighContrast {
		t.Error("unparseable bool should leave the default in place")
	}
}

func TestLoadFromPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, `
metrics:
  addr: ":9090"
logging:
  dir: /tmp/focustrap-logs
`)

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Metrics.Addr != ":9090" {
		t.Errorf("metrics addr = %q, want :9090", cfg.Metrics.Addr)
	}
	if cfg.LogDir() != "/tmp/focustrap-logs" {
		t.Errorf("log dir = %q", cfg.LogDir())
	}
}

func TestLoadFromPathMissing(t *testing.T) {
	isolate(t)
	_, err := config.LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeConfigLoad) {
		t.Errorf("code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeConfigLoad)
	}
}

func TestLoadFromPathMalformed(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeConfig(t, path, "ui: [unterminated\n")

	_, err := config.LoadFromPath(path)
	if !apperrors.IsCode(err, apperrors.ErrCodeConfigParse) {
		t.Fatalf("err = %v, want CONFIG_PARSE", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}, ok: true},
		{name: "theme case folded", mutate: func(c *config.Config) { c.UI.Theme = " Mono " }, ok: true},
		{name: "unknown theme", mutate: func(c *config.Config) { c.UI.Theme = "neon" }},
		{name: "unknown level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }},
		{name: "bad metrics addr", mutate: func(c *config.Config) { c.Metrics.Addr = "9464" }},
		{name: "metrics port only", mutate: func(c *config.Config) { c.Metrics.Addr = ":9464" }, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !apperrors.IsCode(err, apperrors.ErrCodeConfigInvalid) {
					t.Errorf("code = %s, want CONFIG_INVALID", apperrors.GetCode(err))
				}
			}
		})
	}
}

func TestThemeName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Theme = "mono"
	if got := cfg.ThemeName(); got != "mono" {
		t.Errorf("ThemeName = %q, want mono", got)
	}
	cfg.UI.HighContrast = true
	if got := cfg.ThemeName(); got != "high-contrast" {
		t.Errorf("ThemeName = %q, want high-contrast", got)
	}
}

func TestLogDirExpandsHome(t *testing.T) {
	home, _ := isolate(t)
	cfg := config.DefaultConfig()
	want := filepath.Join(home, ".focustrap", "logs")
	if got := cfg.LogDir(); got != want {
		t.Errorf("LogDir = %q, want %q", got, want)
	}
}
