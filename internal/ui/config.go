package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  weekendly config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfigInteractive(cmd.InOrStdin())
		},
	}
}

func (a *App) runConfigInteractive(in io.Reader) error {
	configPath := config.DefaultConfigPath()
	fmt.Fprintf(a.out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(a.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(a.out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(a.out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(a.out, reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Schedule.DayStart = promptValue(a.out, reader, "Day start", cfg.Schedule.DayStart)
	cfg.Schedule.DayCap = promptValue(a.out, reader, "Latest start (day cap)", cfg.Schedule.DayCap)
	cfg.Schedule.BufferMinutes = promptInt(a.out, reader, "Buffer between activities (minutes)", cfg.Schedule.BufferMinutes)
	cfg.Budget.DefaultTotal = promptFloat(a.out, reader, "Default budget", cfg.Budget.DefaultTotal)
	cfg.Catalog.Path = promptValue(a.out, reader, "Catalog file (empty for built-in)", cfg.Catalog.Path)
	cfg.Storage.DBPath = promptValue(a.out, reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(a.out, reader, cfg.UI.Theme)
	cfg.Log.Level = promptValue(a.out, reader, "Log level", cfg.Log.Level)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(a.out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[schedule]")
	fmt.Fprintf(w, "  day_start        = %s\n", cfg.Schedule.DayStart)
	fmt.Fprintf(w, "  day_cap          = %s\n", cfg.Schedule.DayCap)
	fmt.Fprintf(w, "  buffer_minutes   = %d\n", cfg.Schedule.BufferMinutes)
	fmt.Fprintln(w, "\n[budget]")
	fmt.Fprintf(w, "  default_total    = %s\n", strconv.FormatFloat(cfg.Budget.DefaultTotal, 'f', -1, 64))
	fmt.Fprintln(w, "\n[catalog]")
	if cfg.Catalog.Path == "" {
		fmt.Fprintln(w, "  path             = (built-in)")
	} else {
		fmt.Fprintf(w, "  path             = %s\n", cfg.Catalog.Path)
	}
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level            = %s\n", cfg.Log.Level)
}

func promptYesNo(w io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(w io.Writer, reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(w io.Writer, reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(w, reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(w, "  Invalid number %q\n", value)
	}
}

func promptFloat(w io.Writer, reader *bufio.Reader, label string, current float64) float64 {
	for {
		value := promptValue(w, reader, label, strconv.FormatFloat(current, 'f', -1, 64))
		v, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return v
		}
		fmt.Fprintf(w, "  Invalid amount %q\n", value)
	}
}

func promptTheme(w io.Writer, reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(w, reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(w, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
