package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/summary"
)

const (
	minColumnWidth = 24
	barWidth       = 20
)

// View renders the board, with the catalog picker on top when open.
func (m Model) View() string {
	base := m.renderBoard()
	if m.mode != ModePicker {
		return base
	}

	box := m.styles.Picker.Render(m.picker.render(m.styles, m.day, m.pickerWidth()))
	return placePicker(base, box, m.width, m.height)
}

func (m Model) renderBoard() string {
	p := m.session.Current()

	sections := []string{m.renderHeader(p)}
	if p == nil {
		sections = append(sections, "", m.styles.Empty.Render("No plan yet. Press n to start one, q to quit."))
	} else {
		sections = append(sections, m.renderColumns(), m.renderFooter(summary.Summarize(p)))
	}
	sections = append(sections, m.renderStatus(), m.renderHelp())

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader(p *plan.Plan) string {
	title := m.styles.Title.Render("weekendly")
	if p == nil {
		return title
	}
	name := p.Name
	if p.Theme != "" {
		name += " " + m.styles.Muted.Render("("+p.Theme+")")
	}
	return title + "  " + name
}

func (m Model) columnWidth() int {
	// App padding plus two bordered, padded columns
	return max(minColumnWidth, (m.width-2)/2-4)
}

func (m Model) pickerWidth() int {
	return min(56, max(32, m.width/2))
}

func (m Model) renderColumns() string {
	w := m.columnWidth()
	cols := make([]string, 0, 2)
	for _, d := range activity.Days() {
		style := m.styles.Column
		if d == m.day {
			style = m.styles.ColumnFocused
		}
		cols = append(cols, style.Width(w).Render(m.renderDay(d, w)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderDay(d activity.Day, w int) string {
	entries := m.entries(d)
	focused := d == m.day

	headerStyle := m.styles.DayHeader
	if focused {
		headerStyle = m.styles.DayHeaderOn
	}

	var minutes int
	for _, e := range entries {
		minutes += e.Duration
	}
	lines := []string{
		headerStyle.Render(d.Title()) + " " +
			m.styles.Muted.Render(fmt.Sprintf("%d · %s", len(entries), summary.FormatDuration(minutes))),
		"",
	}

	if len(entries) == 0 {
		lines = append(lines, m.styles.Empty.Render("nothing planned, press a"))
		return strings.Join(lines, "\n")
	}

	for i, e := range entries {
		selected := focused && i == m.cursor[d]
		lines = append(lines, m.renderCard(e, selected, w))
	}
	return strings.Join(lines, "\n")
}

// renderCard draws one scheduled activity as a two-line card that fits the
// padded column content width.
func (m Model) renderCard(e activity.ScheduledActivity, selected bool, w int) string {
	inner := max(8, w-3)

	cost := summary.CostLabel(e.Cost)
	if e.ActualCost != nil && *e.ActualCost != e.Cost {
		cost += " → " + e.ActualCost.String()
	}

	title := ansi.Truncate(e.Name, inner-1, "…")
	detail := ansi.Truncate(fmt.Sprintf("%s-%s · %s · %s", e.StartTime, e.EndTime, e.Category, cost), inner-1, "…")

	style := m.styles.Card(e.Category, selected).Width(inner)
	return style.Render(" " + title + "\n " + detail)
}

func (m Model) renderFooter(s *summary.WeekendSummary) string {
	budget := m.styles.Budget(s.Status)
	line := fmt.Sprintf("Estimated %s · Actual %s · Budget %s · ",
		s.Estimated.String(), s.Actual.String(), s.Budget.String())
	return m.styles.Footer.Render(line) +
		budget.Render(s.Status.Label()) + "  " +
		budget.Render(budgetBar(s.Estimated, s.Budget, barWidth))
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.Error.Render(m.statusMsg)
	}
	return m.styles.Status.Render(m.statusMsg)
}

func (m Model) renderHelp() string {
	if m.mode == ModePicker {
		return m.help.View(m.pickerKeys)
	}
	return m.help.View(m.keys)
}

// budgetBar draws how much of total is spent, capped at width cells.
func budgetBar(spent, total activity.Money, width int) string {
	if total <= 0 || width <= 0 {
		return strings.Repeat("░", max(0, width))
	}
	filled := int(spent * activity.Money(width) / total)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) +
		fmt.Sprintf(" %.0f%%", float64(spent)/float64(total)*100)
}
