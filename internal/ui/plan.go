package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/session"
)

func (a *App) planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create and manage weekend plans",
		Long: `Create a new weekend plan or manage saved ones.

The current plan is the one every other command works on. Saved plans
are snapshots you can load back later.`,
	}

	cmd.AddCommand(a.planNewCmd())
	cmd.AddCommand(a.planListCmd())
	cmd.AddCommand(a.planSaveCmd())
	cmd.AddCommand(a.planLoadCmd())
	cmd.AddCommand(a.planDeleteCmd())
	cmd.AddCommand(a.planBudgetCmd())
	cmd.AddCommand(a.planAlertsCmd())

	return cmd
}

func (a *App) planNewCmd() *cobra.Command {
	var (
		theme  string
		budget string
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Start a new weekend plan",
		Example: `  weekendly plan new "Lazy weekend"
  weekendly plan new "Road trip" --theme=adventurous --budget=300`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			name := "My Weekend"
			if len(args) == 1 {
				name = args[0]
			}
			total := a.config.DefaultBudget()
			if cmd.Flags().Changed("budget") {
				v, err := parseAmount(budget)
				if err != nil {
					return err
				}
				total = v
			}

			p, err := a.session.NewPlan(cmd.Context(), name, theme, total)
			if err != nil {
				return fmt.Errorf("creating plan: %w", err)
			}

			fmt.Fprintf(a.out, "Created plan %s: %s (budget %s)\n",
				session.ShortID(p.ID), p.Name, p.TotalBudget.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme of the weekend (e.g. relaxing, adventurous)")
	cmd.Flags().StringVar(&budget, "budget", "", "Total budget in dollars (default from config)")

	return cmd
}

func (a *App) planListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			plans, err := a.session.ListPlans(cmd.Context())
			if err != nil {
				return err
			}

			current := a.session.Current()
			if len(plans) == 0 {
				fmt.Fprintln(a.out, "No saved plans.")
				if current != nil {
					fmt.Fprintf(a.out, "Current plan %q is not saved yet, run 'weekendly plan save'.\n", current.Name)
				}
				return nil
			}

			for _, p := range plans {
				marker := " "
				if current != nil && current.ID == p.ID {
					marker = "*"
				}
				fmt.Fprintf(a.out, "%s %s  %-24s %2d activities  %s / %s  %s\n",
					marker,
					formatMuted(session.ShortID(p.ID)),
					p.Name,
					p.Len(),
					p.EstimatedCost.String(),
					p.TotalBudget.String(),
					formatMuted(p.UpdatedAt.Local().Format("2006-01-02 15:04")),
				)
			}
			return nil
		},
	}
}

func (a *App) planSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the current plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			result, err := a.session.SavePlan(cmd.Context())
			if err != nil {
				return err
			}
			if !result.Changed() {
				return errNoPlan
			}

			p := a.session.Current()
			fmt.Fprintf(a.out, "Saved plan %s: %s\n", session.ShortID(p.ID), p.Name)
			return nil
		},
	}
}

func (a *App) planLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [plan-id]",
		Short: "Make a saved plan current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			id, err := a.resolvePlanID(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := a.session.LoadPlan(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !result.Changed() {
				fmt.Fprintln(a.out, describeResult(result, "plan "+args[0]))
				return nil
			}

			p := a.session.Current()
			fmt.Fprintf(a.out, "Loaded plan %s: %s\n", session.ShortID(p.ID), p.Name)
			return nil
		},
	}
}

func (a *App) planDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [plan-id]",
		Short: "Delete a saved plan",
		Long: `Delete a saved plan. If it is also the current plan, the current
plan is cleared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			id, err := a.resolvePlanID(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := a.session.DeletePlan(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !result.Changed() {
				fmt.Fprintln(a.out, describeResult(result, "plan "+args[0]))
				return nil
			}

			fmt.Fprintf(a.out, "Deleted plan %s\n", session.ShortID(id))
			return nil
		},
	}
}

func (a *App) planBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "budget [amount]",
		Short:   "Set the total budget of the current plan",
		Example: `  weekendly plan budget 200`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			out, err := a.session.SetBudget(cmd.Context(), amount)
			if err != nil {
				return err
			}
			if !out.Result.Changed() {
				if out.Result == plan.ResultRejected {
					return plan.ErrInvalidBudget
				}
				fmt.Fprintln(a.out, describeResult(out.Result, "budget"))
				return nil
			}

			p := a.session.Current()
			fmt.Fprintf(a.out, "Budget set to %s\n", p.TotalBudget.String())
			printAlert(a.out, p)
			return nil
		},
	}
}

func (a *App) planAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "alerts [on|off]",
		Short:     "Turn budget alerts on or off",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			var enabled bool
			switch strings.ToLower(args[0]) {
			case "on", "true", "yes":
				enabled = true
			case "off", "false", "no":
				enabled = false
			default:
				return fmt.Errorf("invalid value %q: must be on or off", args[0])
			}

			out, err := a.session.SetAlerts(cmd.Context(), enabled)
			if err != nil {
				return err
			}
			if out.Result == plan.ResultNoPlan {
				return errNoPlan
			}

			state := "off"
			if enabled {
				state = "on"
			}
			fmt.Fprintf(a.out, "Budget alerts %s\n", state)
			return nil
		},
	}
}

// resolvePlanID expands a short or prefix id to a saved plan id. Unknown
// ids are returned as given so the session reports them as not found.
func (a *App) resolvePlanID(cmd *cobra.Command, id string) (string, error) {
	plans, err := a.session.ListPlans(cmd.Context())
	if err != nil {
		return "", err
	}

	var matches []string
	for _, p := range plans {
		short := session.ShortID(p.ID)
		if p.ID == id || short == id {
			return p.ID, nil
		}
		if strings.HasPrefix(p.ID, id) || strings.HasPrefix(short, id) {
			matches = append(matches, p.ID)
		}
	}
	if current := a.session.Current(); current != nil {
		if current.ID == id || session.ShortID(current.ID) == id {
			return current.ID, nil
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return id, nil
	default:
		return "", fmt.Errorf("plan id %q is ambiguous (%d matches)", id, len(matches))
	}
}

func parseAmount(s string) (activity.Money, error) {
	v, err := activity.ParseMoney(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	return v, nil
}
