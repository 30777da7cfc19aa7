// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/scheduler"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Budget   BudgetConfig   `toml:"budget"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig holds slot finding settings.
type ScheduleConfig struct {
	DayStart      string `toml:"day_start"`      // e.g., "09:00"
	DayCap        string `toml:"day_cap"`        // latest next-available start, e.g., "22:00"
	BufferMinutes int    `toml:"buffer_minutes"` // gap between activities, 0 uses the default
}

// BudgetConfig holds defaults for new plans.
type BudgetConfig struct {
	DefaultTotal float64 `toml:"default_total"`
}

// CatalogConfig points at an optional user catalog file.
type CatalogConfig struct {
	Path string `toml:"path"` // empty means the built-in catalog
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // logrus level name
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			DayStart:      scheduler.DefaultDayStart,
			DayCap:        scheduler.DefaultDayCap,
			BufferMinutes: scheduler.DefaultBufferMinutes,
		},
		Budget: BudgetConfig{
			DefaultTotal: 150,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "weekendly.db"
	}
	return filepath.Join(home, ".local", "share", "weekendly", "weekendly.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekendly", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("WEEKENDLY_DAY_START"); v != "" {
		cfg.Schedule.DayStart = v
	}
	if v := os.Getenv("WEEKENDLY_DAY_CAP"); v != "" {
		cfg.Schedule.DayCap = v
	}
	if v := os.Getenv("WEEKENDLY_BUFFER_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEEKENDLY_BUFFER_MINUTES: %w", err)
		}
		cfg.Schedule.BufferMinutes = n
	}

	if v := os.Getenv("WEEKENDLY_DEFAULT_BUDGET"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("WEEKENDLY_DEFAULT_BUDGET: %w", err)
		}
		cfg.Budget.DefaultTotal = f
	}

	if v := os.Getenv("WEEKENDLY_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("WEEKENDLY_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("WEEKENDLY_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("WEEKENDLY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Schedule.DayStart, "day_start"); err != nil {
		return err
	}
	if err := validateTime(c.Schedule.DayCap, "day_cap"); err != nil {
		return err
	}
	if c.Schedule.DayStart >= c.Schedule.DayCap {
		return errors.New("day_start must be before day_cap")
	}
	if c.Schedule.BufferMinutes < 0 {
		return errors.New("buffer_minutes cannot be negative")
	}
	if c.DefaultBudget() <= 0 {
		return errors.New("default_total must be greater than zero")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// validateTime checks if a time string is a valid HH:MM clock time.
func validateTime(t, field string) error {
	if err := activity.ValidateTime(t); err != nil {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

// DefaultBudget returns the default total rounded to the cent.
func (c *Config) DefaultBudget() activity.Money {
	return activity.Dollars(c.Budget.DefaultTotal)
}

// Scheduler builds a slot finder from the schedule settings.
func (c *Config) Scheduler() *scheduler.Scheduler {
	return scheduler.New(c.Schedule.DayStart, c.Schedule.DayCap, c.Schedule.BufferMinutes)
}

// LogLevel returns the configured logrus level, defaulting to warn.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
