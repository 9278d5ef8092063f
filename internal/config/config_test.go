package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Interval != nil || cfg.Shell != nil || cfg.NoTitle != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
	if got := cfg.IntervalDuration(); got != DefaultInterval {
		t.Fatalf("IntervalDuration() = %v, want %v", got, DefaultInterval)
	}
}

func TestLoadValues(t *testing.T) {
	path := writeConfig(t, "interval: 2.5\nshell: true\nlogging:\n  level: debug\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := cfg.IntervalDuration(), 2500*time.Millisecond; got != want {
		t.Fatalf("IntervalDuration() = %v, want %v", got, want)
	}
	if cfg.Shell == nil || !*cfg.Shell {
		t.Fatalf("shell not loaded: %+v", cfg.Shell)
	}
	if cfg.Logging.Level == nil || *cfg.Logging.Level != "debug" {
		t.Fatalf("logging level not loaded: %+v", cfg.Logging.Level)
	}
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	path := writeConfig(t, "interval: 0\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := writeConfig(t, "interval: [nope\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
