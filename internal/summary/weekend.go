// Package summary provides shared weekend summary utilities.
package summary

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
)

// DaySummary holds one day's sorted schedule and totals.
type DaySummary struct {
	Day       activity.Day
	Entries   []activity.ScheduledActivity
	Minutes   int
	Estimated activity.Money
}

// WeekendSummary holds aggregated plan data.
type WeekendSummary struct {
	Name      string
	Theme     string
	Days      []DaySummary
	Count     int
	Minutes   int
	Estimated activity.Money
	Actual    activity.Money
	Budget    activity.Money
	Remaining activity.Money
	Percent   float64
	Status    plan.BudgetStatus
	Alerts    bool
}

// Summarize builds summary data from a plan.
func Summarize(p *plan.Plan) *WeekendSummary {
	s := &WeekendSummary{
		Name:      p.Name,
		Theme:     p.Theme,
		Estimated: p.EstimatedCost,
		Actual:    p.ActualCost,
		Budget:    p.TotalBudget,
		Remaining: p.RemainingBudget(),
		Percent:   p.PercentUsed(),
		Status:    p.BudgetStatus(),
		Alerts:    p.BudgetAlerts,
	}

	for _, day := range activity.Days() {
		d := DaySummary{Day: day, Entries: p.Schedule(day)}
		for _, e := range d.Entries {
			d.Minutes += e.Duration
			d.Estimated += e.Cost
		}
		s.Days = append(s.Days, d)
		s.Count += len(d.Entries)
		s.Minutes += d.Minutes
	}

	return s
}

// NeedsAlert reports whether the plan wants a budget warning.
func (s *WeekendSummary) NeedsAlert() bool {
	return s.Alerts && s.Status != plan.BudgetUnder
}

// AlertMessage describes the budget warning for the current status.
func (s *WeekendSummary) AlertMessage() string {
	switch s.Status {
	case plan.BudgetOver:
		return fmt.Sprintf("Over budget by %s (%s of %s)", -s.Remaining, s.Estimated, s.Budget)
	case plan.BudgetNear:
		return fmt.Sprintf("Near budget: %.0f%% used, %s left", s.Percent, s.Remaining)
	default:
		return ""
	}
}

// TimeOfDay names the part of the day a start time falls in.
func TimeOfDay(start string) string {
	m := activity.ToMinutes(start)
	switch {
	case m < 12*60:
		return "Morning"
	case m < 17*60:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// CostLabel returns "Free" for zero cost, otherwise the amount.
func CostLabel(cost activity.Money) string {
	if cost == 0 {
		return "Free"
	}
	return cost.String()
}

// FormatDuration formats minutes as "1h30m", "2h" or "45m".
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

// Itinerary renders the summary as plain text suitable for sharing.
func (s *WeekendSummary) Itinerary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Name)
	if s.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", s.Theme)
	}
	for _, d := range s.Days {
		fmt.Fprintf(&b, "\n%s\n", d.Day.Title())
		if len(d.Entries) == 0 {
			b.WriteString("  (nothing planned)\n")
			continue
		}
		for _, e := range d.Entries {
			fmt.Fprintf(&b, "  %s-%s  %s (%s)\n", e.StartTime, e.EndTime, e.Name, CostLabel(e.Cost))
		}
	}
	fmt.Fprintf(&b, "\nEstimated %s of %s budget (%s)\n", s.Estimated, s.Budget, s.Status.Label())
	if s.Actual != s.Estimated {
		fmt.Fprintf(&b, "Actual %s\n", s.Actual)
	}
	return b.String()
}
