package ui

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "weekendly-debug.log"

// setupLogging configures logrus from the config level, or writes JSON
// debug logs to DebugLogPath when --debug is set.
func (a *App) setupLogging() error {
	if !a.debug {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		log.SetLevel(a.config.LogLevel())
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	a.logFile = f

	log.SetOutput(f)
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.DebugLevel)
	log.WithField("log_file", DebugLogPath).Debug("debug logging enabled")
	return nil
}
