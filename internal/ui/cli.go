package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/db"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/session"
	"github.com/javiermolinar/weekendly/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	store   *db.SQLite
	session *session.Session
	root    *cobra.Command
	out     io.Writer
	debug   bool // Enable debug logging
	logFile *os.File
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, out: os.Stdout}

	a.root = &cobra.Command{
		Use:   "weekendly",
		Short: "Plan your weekend from the terminal",
		Long: `Weekendly helps you plan a Saturday and Sunday from a catalog of
activities while keeping an eye on the budget.

Run without arguments to open the weekend board.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			return tui.Run(a.session, a.config)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.catalogCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.reorderCmd())
	a.root.AddCommand(a.costCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "weekendly %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureSession opens the database and restores the session on first use.
func (a *App) ensureSession(ctx context.Context) error {
	if a.session != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if a.store == nil {
		store, err := db.New(a.config.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		a.store = store
	}

	fallback, err := catalog.Load(a.config.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	engine := plan.NewEngine(plan.WithScheduler(a.config.Scheduler()))
	s, err := session.Open(ctx, engine, a.store, fallback)
	if err != nil {
		return err
	}
	a.session = s
	log.WithField("db", a.config.Storage.DBPath).Debug("session opened")
	return nil
}

// requirePlan returns the current plan or an error telling the user how to
// create one.
func (a *App) requirePlan() (*plan.Plan, error) {
	p := a.session.Current()
	if p == nil {
		return nil, errNoPlan
	}
	return p, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database and debug log.
func (a *App) Close() error {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
	if a.store != nil {
		err := a.store.Close()
		a.store = nil
		return err
	}
	return nil
}
