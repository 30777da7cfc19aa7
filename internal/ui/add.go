package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/scheduler"
	"github.com/javiermolinar/weekendly/internal/session"
	"github.com/javiermolinar/weekendly/internal/summary"
)

func (a *App) addCmd() *cobra.Command {
	var (
		day    string
		at     string
		prefer string
	)

	cmd := &cobra.Command{
		Use:   "add [activity-id]",
		Short: "Add a catalog activity to the current plan",
		Long: `Add a catalog activity to Saturday or Sunday of the current plan.

Without --at the activity starts after the last one of the day, with a
30 minute buffer. --prefer picks the first free spot in the morning
(` + windowLabel(scheduler.PreferenceMorning) + `), afternoon (` + windowLabel(scheduler.PreferenceAfternoon) + `) or evening (` + windowLabel(scheduler.PreferenceEvening) + `).`,
		Example: `  weekendly add brunch
  weekendly add hiking --day=sunday --at=10:00
  weekendly add museum --day=saturday --prefer=afternoon`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := activity.ParseDay(day)
			if err != nil {
				return err
			}
			if at != "" && prefer != "" {
				return fmt.Errorf("--at and --prefer cannot be combined")
			}
			if at != "" {
				if err := activity.ValidateTime(at); err != nil {
					return err
				}
			}

			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.requirePlan(); err != nil {
				return err
			}
			if _, ok := a.session.Activity(args[0]); !ok {
				return fmt.Errorf("activity %q is not in the catalog, see 'weekendly catalog list'", args[0])
			}

			var out plan.Outcome
			if prefer != "" {
				pref, perr := scheduler.ParsePreference(prefer)
				if perr != nil {
					return perr
				}
				out, err = a.session.ScheduleWithPreference(cmd.Context(), args[0], d, pref)
			} else {
				out, err = a.session.Schedule(cmd.Context(), args[0], d, at)
			}
			if err != nil {
				return err
			}
			if !out.Result.Changed() {
				fmt.Fprintln(a.out, describeResult(out.Result, "activity "+args[0]))
				return nil
			}

			e := out.Entry
			fmt.Fprintf(a.out, "Added %s to %s %s-%s (%s) as %s\n",
				e.Name, e.Day.Title(), e.StartTime, e.EndTime,
				summary.CostLabel(e.Cost), session.ShortID(e.InstanceID))
			if out.Slot != nil && out.Slot.Clamped {
				fmt.Fprintln(a.out, formatMuted("The day is full, start clamped to "+e.StartTime))
			}
			a.printPlacementNotes(e)
			printAlert(a.out, a.session.Current())
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "saturday", "Day: saturday or sunday")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, default: next available)")
	cmd.Flags().StringVar(&prefer, "prefer", "", "Time preference: morning, afternoon, evening or auto")

	return cmd
}

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [entry-id]",
		Aliases: []string{"rm"},
		Short:   "Remove a scheduled activity",
		Long: `Remove a scheduled activity from the current plan.

Entry ids are shown by 'weekendly show'. Any unique prefix works.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.findEntry(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := a.session.Unschedule(cmd.Context(), e.InstanceID, e.Day)
			if err != nil {
				return err
			}
			if !out.Result.Changed() {
				fmt.Fprintln(a.out, describeResult(out.Result, "entry "+args[0]))
				return nil
			}

			fmt.Fprintf(a.out, "Removed %s from %s\n", e.Name, e.Day.Title())
			return nil
		},
	}
}

func (a *App) moveCmd() *cobra.Command {
	var (
		to string
		at string
	)

	cmd := &cobra.Command{
		Use:   "move [entry-id]",
		Short: "Move a scheduled activity to the other day",
		Long: `Move a scheduled activity to the other weekend day.

Without --to the activity moves to the day it is not on. Without --at it
is placed at the next available time of the target day.`,
		Example: `  weekendly move 3f2a
  weekendly move 3f2a --to=sunday --at=16:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if at != "" {
				if err := activity.ValidateTime(at); err != nil {
					return err
				}
			}

			e, err := a.findEntry(cmd, args[0])
			if err != nil {
				return err
			}

			target := e.Day.Other()
			if to != "" {
				if target, err = activity.ParseDay(to); err != nil {
					return err
				}
			}

			out, err := a.session.Move(cmd.Context(), e.InstanceID, e.Day, target, at)
			if err != nil {
				return err
			}
			if !out.Result.Changed() {
				if out.Result == plan.ResultUnchanged {
					fmt.Fprintf(a.out, "%s is already on %s\n", e.Name, target.Title())
					return nil
				}
				fmt.Fprintln(a.out, describeResult(out.Result, "entry "+args[0]))
				return nil
			}

			fmt.Fprintf(a.out, "Moved %s to %s %s-%s\n",
				out.Entry.Name, out.Entry.Day.Title(), out.Entry.StartTime, out.Entry.EndTime)
			a.printPlacementNotes(out.Entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target day (default: the other day)")
	cmd.Flags().StringVar(&at, "at", "", "Start time on the target day (HH:MM)")

	return cmd
}

func (a *App) reorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder [day] [entry-id...]",
		Short: "Lay out a day in the given order",
		Long: `Lay out a day's activities in the given order, one after the other
from the start of the day with the configured buffer between them.

Every activity of the day must be listed exactly once.`,
		Example: `  weekendly reorder saturday 7c1e 3f2a 9b0d`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := activity.ParseDay(args[0])
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(args)-1)
			for _, id := range args[1:] {
				e, err := a.findEntry(cmd, id)
				if err != nil {
					return err
				}
				if e.Day != d {
					return fmt.Errorf("entry %s is on %s, not %s", id, e.Day.Title(), d.Title())
				}
				ids = append(ids, e.InstanceID)
			}

			out, err := a.session.Reorder(cmd.Context(), d, ids)
			if err != nil {
				return err
			}
			if !out.Result.Changed() {
				if out.Result == plan.ResultNoPlan {
					return errNoPlan
				}
				return fmt.Errorf("list every activity of %s exactly once", d.Title())
			}

			fmt.Fprintf(a.out, "Reordered %s:\n", d.Title())
			p := a.session.Current()
			w := nameWidth(24)
			for _, e := range p.Schedule(d) {
				PrintEntryRow(a.out, e, w)
			}
			return nil
		},
	}
}

func (a *App) costCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost [entry-id] [amount]",
		Short: "Record what a scheduled activity actually cost",
		Long: `Record the actual cost of a scheduled activity.

The plan's actual total is recalculated from every entry. Budget status
keeps following the estimated costs.

Example:
  weekendly cost 3f2a 32.50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			e, err := a.findEntry(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := a.session.UpdateCost(cmd.Context(), e.InstanceID, e.Day, amount)
			if err != nil {
				return err
			}
			if !out.Result.Changed() {
				fmt.Fprintln(a.out, describeResult(out.Result, "entry "+args[0]))
				return nil
			}

			p := a.session.Current()
			fmt.Fprintf(a.out, "Set actual cost of %s to %s (plan actual %s)\n",
				e.Name, amount.String(), p.ActualCost.String())
			printAlert(a.out, p)
			return nil
		},
	}
}

// findEntry resolves an entry id (full, short or unique prefix) in the
// current plan.
// printPlacementNotes warns when e runs past the end of the day or
// overlaps another entry.
func (a *App) printPlacementNotes(e activity.ScheduledActivity) {
	sched := a.session.Engine().Scheduler()
	if !sched.CanFit(e.StartTime, e.Duration) {
		fmt.Fprintln(a.out, formatMuted(fmt.Sprintf("%s runs past %s", e.Name, sched.DayCap())))
	}
	p := a.session.Current()
	if p == nil {
		return
	}
	for _, other := range p.Schedule(e.Day) {
		if other.InstanceID != e.InstanceID && e.OverlapsWith(other) {
			fmt.Fprintln(a.out, formatMuted(fmt.Sprintf("Overlaps %s (%s-%s)", other.Name, other.StartTime, other.EndTime)))
		}
	}
}

func (a *App) findEntry(cmd *cobra.Command, id string) (activity.ScheduledActivity, error) {
	if err := a.ensureSession(cmd.Context()); err != nil {
		return activity.ScheduledActivity{}, err
	}
	if _, err := a.requirePlan(); err != nil {
		return activity.ScheduledActivity{}, err
	}
	e, ok := a.session.FindEntry(id)
	if !ok {
		return activity.ScheduledActivity{}, fmt.Errorf("no unique scheduled activity matches %q", id)
	}
	return e, nil
}

func windowLabel(p scheduler.Preference) string {
	w, _ := scheduler.WindowFor(p)
	return w.Start + "-" + w.End
}
