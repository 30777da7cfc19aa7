package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/session"
)

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the current plan as JSON",
		Long: `Write the current plan as JSON to a file, or to stdout when no file
is given.

Example:
  weekendly export weekend.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			p, err := a.requirePlan()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return plan.Encode(a.out, p)
			}

			if err := writePlanFile(args[0], p); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Exported plan %s to %s\n", session.ShortID(p.ID), args[0])
			return nil
		},
	}
}

func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a plan from a JSON file",
		Long: `Read a plan exported with 'weekendly export', save it and make it
the current plan. A plan with the same id is replaced.

Example:
  weekendly import weekend.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPlanFile(args[0])
			if err != nil {
				return err
			}

			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.session.ImportPlan(cmd.Context(), p); err != nil {
				return fmt.Errorf("importing plan: %w", err)
			}

			fmt.Fprintf(a.out, "Imported plan %s: %s (%d activities)\n",
				session.ShortID(p.ID), p.Name, p.Len())
			return nil
		},
	}
}

func writePlanFile(path string, p *plan.Plan) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return plan.Encode(f, p)
}

func readPlanFile(path string) (*plan.Plan, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("plan file does not exist: %s", path)
			}
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	return plan.Decode(r)
}
