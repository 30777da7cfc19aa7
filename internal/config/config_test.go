package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.DayStart != "09:00" {
		t.Errorf("expected day_start 09:00, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.DayCap != "22:00" {
		t.Errorf("expected day_cap 22:00, got %s", cfg.Schedule.DayCap)
	}
	if cfg.Schedule.BufferMinutes != 30 {
		t.Errorf("expected buffer_minutes 30, got %d", cfg.Schedule.BufferMinutes)
	}
	if cfg.Budget.DefaultTotal != 150 {
		t.Errorf("expected default_total 150, got %v", cfg.Budget.DefaultTotal)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected built-in catalog, got %s", cfg.Catalog.Path)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.LogLevel() != log.WarnLevel {
		t.Errorf("expected warn level, got %v", cfg.LogLevel())
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Schedule.DayStart != "09:00" {
		t.Errorf("expected default day_start, got %s", cfg.Schedule.DayStart)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[schedule]
day_start = "08:00"
day_cap = "21:00"
buffer_minutes = 15

[budget]
default_total = 220.5

[catalog]
path = "/tmp/catalog.toml"

[storage]
db_path = "/tmp/test.db"

[log]
level = "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Schedule.DayStart != "08:00" {
		t.Errorf("expected day_start 08:00, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.DayCap != "21:00" {
		t.Errorf("expected day_cap 21:00, got %s", cfg.Schedule.DayCap)
	}
	if cfg.Schedule.BufferMinutes != 15 {
		t.Errorf("expected buffer_minutes 15, got %d", cfg.Schedule.BufferMinutes)
	}
	if cfg.Budget.DefaultTotal != 220.5 {
		t.Errorf("expected default_total 220.5, got %v", cfg.Budget.DefaultTotal)
	}
	if cfg.DefaultBudget() != 22050 {
		t.Errorf("expected default budget of 22050 cents, got %d", cfg.DefaultBudget())
	}
	if cfg.Catalog.Path != "/tmp/catalog.toml" {
		t.Errorf("expected catalog path /tmp/catalog.toml, got %s", cfg.Catalog.Path)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.LogLevel())
	}

	s := cfg.Scheduler()
	if s.DayStart() != "08:00" || s.DayCap() != "21:00" || s.Buffer() != 15 {
		t.Errorf("scheduler = %s/%s/%d", s.DayStart(), s.DayCap(), s.Buffer())
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[schedule]
day_start = "08:00"
day_cap = "21:00"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("WEEKENDLY_DAY_START", "10:00")
	t.Setenv("WEEKENDLY_BUFFER_MINUTES", "45")
	t.Setenv("WEEKENDLY_DEFAULT_BUDGET", "80")
	t.Setenv("WEEKENDLY_UI_THEME", "latte")
	t.Setenv("WEEKENDLY_LOG_LEVEL", "info")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Schedule.DayStart != "10:00" {
		t.Errorf("expected day_start 10:00 from env, got %s", cfg.Schedule.DayStart)
	}
	// File value should be kept when no env override
	if cfg.Schedule.DayCap != "21:00" {
		t.Errorf("expected day_cap 21:00 from file, got %s", cfg.Schedule.DayCap)
	}
	if cfg.Schedule.BufferMinutes != 45 {
		t.Errorf("expected buffer_minutes 45 from env, got %d", cfg.Schedule.BufferMinutes)
	}
	if cfg.Budget.DefaultTotal != 80 {
		t.Errorf("expected default_total 80 from env, got %v", cfg.Budget.DefaultTotal)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte from env, got %s", cfg.UI.Theme)
	}
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("expected info level from env, got %v", cfg.LogLevel())
	}
}

func TestLoadFrom_BadEnvNumber(t *testing.T) {
	t.Setenv("WEEKENDLY_BUFFER_MINUTES", "half an hour")
	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric buffer")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"day start missing leading zero", func(c *Config) { c.Schedule.DayStart = "9:00" }, true},
		{"day start out of range", func(c *Config) { c.Schedule.DayStart = "25:00" }, true},
		{"day cap invalid", func(c *Config) { c.Schedule.DayCap = "late" }, true},
		{"day start after cap", func(c *Config) { c.Schedule.DayStart = "23:00" }, true},
		{"negative buffer", func(c *Config) { c.Schedule.BufferMinutes = -5 }, true},
		{"zero budget", func(c *Config) { c.Budget.DefaultTotal = 0 }, true},
		{"budget under a cent", func(c *Config) { c.Budget.DefaultTotal = 0.004 }, true},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, true},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Schedule.DayStart = "07:30"
	cfg.Schedule.BufferMinutes = 20
	cfg.Budget.DefaultTotal = 99

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Schedule.DayStart != "07:30" {
		t.Errorf("expected day_start 07:30, got %s", loaded.Schedule.DayStart)
	}
	if loaded.Schedule.BufferMinutes != 20 {
		t.Errorf("expected buffer_minutes 20, got %d", loaded.Schedule.BufferMinutes)
	}
	if loaded.Budget.DefaultTotal != 99 {
		t.Errorf("expected default_total 99, got %v", loaded.Budget.DefaultTotal)
	}
}
