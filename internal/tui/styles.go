package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/tui/theme"
)

// Styles holds the lipgloss styles for the board, derived from a theme.
type Styles struct {
	palette *theme.Palette

	App   lipgloss.Style
	Title lipgloss.Style
	Muted lipgloss.Style

	// Day columns
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	DayHeader     lipgloss.Style
	DayHeaderOn   lipgloss.Style
	Empty         lipgloss.Style

	// Activity cards
	CardTime lipgloss.Style

	// Footer
	Footer lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style

	// Catalog picker
	Picker         lipgloss.Style
	PickerTitle    lipgloss.Style
	PickerItem     lipgloss.Style
	PickerSelected lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	return &Styles{
		palette: p,

		App:   lipgloss.NewStyle().Foreground(p.Fg).Padding(0, 1),
		Title: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(p.FgMuted),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.BgSelection).
			Padding(0, 1),
		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		DayHeader:   lipgloss.NewStyle().Foreground(p.FgMuted).Bold(true),
		DayHeaderOn: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Empty:       lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true),

		CardTime: lipgloss.NewStyle().Foreground(p.FgMuted),

		Footer: lipgloss.NewStyle().Foreground(p.Fg),
		Status: lipgloss.NewStyle().Foreground(p.Accent),
		Error:  lipgloss.NewStyle().Foreground(p.Danger).Bold(true),

		Picker: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			BorderBackground(p.Bg).
			Background(p.Bg).
			Padding(0, 1),
		PickerTitle:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		PickerItem:     lipgloss.NewStyle().Foreground(p.Fg),
		PickerSelected: lipgloss.NewStyle().Foreground(p.TextOnAccent).Background(p.Accent).Bold(true),
	}
}

// Card returns the style for an activity card of category c.
func (s *Styles) Card(c activity.Category, selected bool) lipgloss.Style {
	cc := s.palette.Category(c)
	bg := cc.Bg
	if selected {
		bg = cc.BgAlt
	}
	style := lipgloss.NewStyle().
		Foreground(cc.TextOn).
		Background(bg).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(cc.Fg)
	if selected {
		style = style.Bold(true)
	}
	return style
}

// CategoryMarker returns the style used for a category tag in the picker.
func (s *Styles) CategoryMarker(c activity.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.Category(c).Fg)
}

// Budget returns the style for a budget status.
func (s *Styles) Budget(status plan.BudgetStatus) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(s.palette.Status(status))
	if status != plan.BudgetUnder {
		style = style.Bold(true)
	}
	return style
}
