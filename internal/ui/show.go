package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/summary"
)

func (a *App) showCmd() *cobra.Command {
	var (
		copyText bool
		noColor  bool
		timeline string
		budget   bool
		message  string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current weekend plan",
		Long: `Display both days of the current plan with the budget status.

--timeline renders the plan as a shareable timeline instead, in the
story, detailed or compact format. --copy puts the plain itinerary on
the clipboard.`,
		Example: `  weekendly show
  weekendly show --copy
  weekendly show --timeline=detailed --budget --message="See you there!"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			p, err := a.requirePlan()
			if err != nil {
				return err
			}

			s := summary.Summarize(p)

			if cmd.Flags().Changed("timeline") {
				format, err := summary.ParseFormat(timeline)
				if err != nil {
					return err
				}
				items := summary.Timeline(p, summary.TimelineOptions{
					Format:     format,
					ShowBudget: budget,
					Message:    message,
				})
				if len(items) == 0 {
					fmt.Fprintln(a.out, "Nothing planned yet.")
					return nil
				}
				fmt.Fprint(a.out, summary.RenderTimeline(items))
			} else {
				PrintWeekend(a.out, s, nameWidth(24))
				printAlert(a.out, p)
			}

			if copyText {
				if err := clipboard.WriteAll(s.Itinerary()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(a.out, formatMuted("Itinerary copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the itinerary to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().StringVar(&timeline, "timeline", "story", "Render as a timeline: story, detailed or compact")
	cmd.Flags().BoolVar(&budget, "budget", false, "Include costs in the timeline")
	cmd.Flags().StringVar(&message, "message", "", "Intro message for the timeline")
	return cmd
}
