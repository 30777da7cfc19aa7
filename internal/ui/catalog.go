package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/summary"
)

func (a *App) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and replace the activity catalog",
	}

	cmd.AddCommand(a.catalogListCmd())
	cmd.AddCommand(a.catalogImportCmd())
	cmd.AddCommand(a.catalogExportCmd())

	return cmd
}

func (a *App) catalogListCmd() *cobra.Command {
	var (
		category string
		mood     string
		cost     string
		search   string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog activities",
		Long: `List the activities you can add to a plan.

Filters combine: only activities matching every given flag are shown.
--search matches the name or description, ignoring case.`,
		Example: `  weekendly catalog list
  weekendly catalog list --category=outdoor --cost=free
  weekendly catalog list --search=yoga -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := activity.Filter{
				Category: activity.Category(category),
				Mood:     activity.Mood(mood),
				CostType: activity.CostType(cost),
				Query:    search,
			}
			if f.Category != "" && !f.Category.Valid() {
				return fmt.Errorf("%w: %q", activity.ErrInvalidCategory, category)
			}
			if f.Mood != "" && !f.Mood.Valid() {
				return fmt.Errorf("%w: %q", activity.ErrInvalidMood, mood)
			}
			if f.CostType != "" && !f.CostType.Valid() {
				return fmt.Errorf("%w: %q", activity.ErrInvalidCostType, cost)
			}

			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			activities := a.session.Catalog(f)
			if len(activities) == 0 {
				fmt.Fprintln(a.out, "No activities match.")
				return nil
			}
			printActivities(a.out, activities, nameWidth(24), verbose)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category: food, outdoor, indoor, social, wellness")
	cmd.Flags().StringVar(&mood, "mood", "", "Filter by mood: happy, relaxed, energetic, peaceful")
	cmd.Flags().StringVar(&cost, "cost", "", "Filter by cost type: free, low, medium, high")
	cmd.Flags().StringVar(&search, "search", "", "Search name and description")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show descriptions")

	return cmd
}

func (a *App) catalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the catalog with activities from a TOML file",
		Long: `Replace the whole catalog with the [[activity]] entries of a TOML file.

Plans already scheduled keep the values their activities were added with.

Example:
  weekendly catalog import ~/my-activities.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := catalog.Load(args[0])
			if err != nil {
				return err
			}

			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.session.SetActivities(cmd.Context(), activities); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Imported %d activities from %s\n", len(activities), args[0])
			return nil
		},
	}
}

func (a *App) catalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			data, err := catalog.Marshal(a.session.Catalog(activity.Filter{}))
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
}

func printActivities(w io.Writer, activities []activity.Activity, maxNameWidth int, verbose bool) {
	for _, act := range activities {
		fmt.Fprintf(w, "  %-16s %s  %-*s  %6s  %-5s %s\n",
			act.ID,
			categoryTag(act.Category),
			maxNameWidth, ansi.Truncate(act.Name, maxNameWidth, "..."),
			summary.FormatDuration(act.Duration),
			summary.CostLabel(act.Cost),
			formatMuted(string(act.Mood)),
		)
		if verbose && act.Description != "" {
			fmt.Fprintf(w, "  %16s %s\n", "", formatMuted(act.Description))
		}
	}
}
