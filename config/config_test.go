package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `engine:
  mode: "team"
  session_minutes: 45
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"mode", cfg.Engine.Mode, "team"},
		{"session_minutes", cfg.Engine.SessionMinutes, 45},
		{"slot_minutes default", cfg.Engine.SlotMinutes, 30},
		{"buffer_minutes default", cfg.Engine.BufferMinutes, 15},
		{"max_per_day default", cfg.Engine.MaxPerDay, 5},
		{"target default", cfg.Engine.TargetConversations, 1},
		{"per_employee_day default", cfg.Engine.MaxPerEmployeePerDay, 1},
		{"log level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s: expected %v got %v", c.name, c.want, c.got)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"engine":{"mode":"1on1"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WP_ENGINE__SLOT_MINUTES", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Engine.SlotMinutes != 20 {
		t.Fatalf("env override ignored: %d", cfg.Engine.SlotMinutes)
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  mode: \"standup\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Engine.Validate(); err != nil {
		t.Fatalf("default engine config invalid: %v", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		t.Fatalf("default logging config invalid: %v", err)
	}
	s := cfg.Engine.Settings()
	if s.SlotMinutes != 30 || s.TargetConversations != 1 {
		t.Fatalf("unexpected default settings: %+v", s)
	}
}
