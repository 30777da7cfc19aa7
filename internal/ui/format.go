package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/session"
	"github.com/javiermolinar/weekendly/internal/summary"
)

var errNoPlan = errors.New("no current plan, create one with 'weekendly plan new'")

// categoryTag returns a fixed-width colored category marker.
func categoryTag(c activity.Category) string {
	return formatCategory(c, fmt.Sprintf("[%-8s]", c))
}

// PrintEntryRow prints a single scheduled entry.
func PrintEntryRow(w io.Writer, e activity.ScheduledActivity, maxNameWidth int) {
	name := ansi.Truncate(e.Name, maxNameWidth, "...")
	cost := summary.CostLabel(e.Cost)
	if e.ActualCost != nil && *e.ActualCost != e.Cost {
		cost += " " + formatMuted("(actual "+e.ActualCost.String()+")")
	}
	fmt.Fprintf(w, "  %s-%s  %s  %-*s  %s  %s\n",
		e.StartTime, e.EndTime,
		categoryTag(e.Category),
		maxNameWidth, name,
		cost,
		formatMuted(session.ShortID(e.InstanceID)),
	)
}

// PrintWeekend prints both days and the budget lines.
func PrintWeekend(w io.Writer, s *summary.WeekendSummary, maxNameWidth int) {
	title := s.Name
	if s.Theme != "" {
		title += " " + formatMuted("("+s.Theme+")")
	}
	fmt.Fprintf(w, "=== %s ===\n", formatHeader(title))

	for _, d := range s.Days {
		fmt.Fprintf(w, "\n%s %s\n", formatHeader(d.Day.Title()),
			formatMuted(fmt.Sprintf("%d activities, %s", len(d.Entries), summary.FormatDuration(d.Minutes))))
		if len(d.Entries) == 0 {
			fmt.Fprintln(w, formatMuted("  nothing planned"))
			continue
		}
		for _, e := range d.Entries {
			PrintEntryRow(w, e, maxNameWidth)
		}
	}

	fmt.Fprintln(w)
	PrintBudget(w, s)
}

// PrintBudget prints the budget line and bar.
func PrintBudget(w io.Writer, s *summary.WeekendSummary) {
	fmt.Fprintf(w, "Budget: %s estimated, %s actual, %s total  %s\n",
		s.Estimated.String(),
		s.Actual.String(),
		s.Budget.String(),
		formatStatus(s.Status, s.Status.Label()),
	)
	fmt.Fprintf(w, "        %s\n", BudgetBar(s.Estimated, s.Budget, s.Status, 20))
}

// BudgetBar creates an ASCII bar showing how much of the budget is spent.
func BudgetBar(spent, total activity.Money, status plan.BudgetStatus, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", width) + "]"
	}

	pct := float64(spent) / float64(total) * 100
	filled := int(spent * activity.Money(width) / total)
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatStatus(status, bar), formatStatus(status, fmt.Sprintf("%.0f%%", pct)))
}

// nameWidth sizes the name column to the terminal.
func nameWidth(defaultWidth int) int {
	// "  HH:MM-HH:MM  [category]  " plus cost and id columns is ~50 chars
	available := termWidth() - 50
	return max(defaultWidth, min(available, 48))
}

// printAlert prints the budget warning when the plan wants one.
func printAlert(w io.Writer, p *plan.Plan) {
	if p == nil {
		return
	}
	s := summary.Summarize(p)
	if !s.NeedsAlert() {
		return
	}
	fmt.Fprintf(w, "%s %s\n", formatStatus(s.Status, "!"), formatStatus(s.Status, s.AlertMessage()))
}

// describeResult turns a no-op result into a user-facing message.
func describeResult(r plan.Result, what string) string {
	switch r {
	case plan.ResultNotFound:
		return fmt.Sprintf("%s not found, nothing changed", what)
	case plan.ResultNoPlan:
		return errNoPlan.Error()
	case plan.ResultUnchanged:
		return "Nothing to change"
	case plan.ResultRejected:
		return fmt.Sprintf("Invalid input for %s, nothing changed", what)
	default:
		return ""
	}
}
