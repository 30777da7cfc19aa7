// Package tui provides the terminal weekend board for weekendly.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/session"
	"github.com/javiermolinar/weekendly/internal/tui/commands"
	"github.com/javiermolinar/weekendly/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeBoard Mode = iota
	ModePicker
)

const statusDuration = 3 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctx     context.Context
	session *session.Session
	config  *config.Config

	// Theme and styles
	styles *Styles

	keys       keyMap
	pickerKeys pickerKeyMap
	help       help.Model

	// State
	mode   Mode
	day    activity.Day
	cursor map[activity.Day]int
	picker picker

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // statusMsg is an error
	statusTime time.Time // When to clear message
}

// New creates a new TUI model over an open session.
func New(s *session.Session, cfg *config.Config) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	h := help.New()
	h.Styles.ShortKey = styles.Status
	h.Styles.ShortDesc = styles.Muted
	h.Styles.FullKey = styles.Status
	h.Styles.FullDesc = styles.Muted

	return Model{
		ctx:        context.Background(),
		session:    s,
		config:     cfg,
		styles:     styles,
		keys:       defaultKeyMap(),
		pickerKeys: defaultPickerKeyMap(),
		help:       h,
		mode:       ModeBoard,
		day:        activity.Saturday,
		cursor:     map[activity.Day]int{activity.Saturday: 0, activity.Sunday: 0},
		picker:     newPicker(styles),
		width:      80,
		height:     24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if p := m.session.Current(); p != nil {
		return commands.Status("Loaded " + p.Name)
	}
	return nil
}

// Run starts the TUI.
func Run(s *session.Session, cfg *config.Config) error {
	p := tea.NewProgram(New(s, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// entries returns the focused day's schedule, sorted by start time.
func (m Model) entries(day activity.Day) []activity.ScheduledActivity {
	p := m.session.Current()
	if p == nil {
		return nil
	}
	return p.Schedule(day)
}

// selected returns the entry under the cursor on the focused day.
func (m Model) selected() (activity.ScheduledActivity, bool) {
	entries := m.entries(m.day)
	i := m.cursor[m.day]
	if i < 0 || i >= len(entries) {
		return activity.ScheduledActivity{}, false
	}
	return entries[i], true
}

// clampCursors keeps both cursors inside their day's schedule.
func (m *Model) clampCursors() {
	for _, d := range activity.Days() {
		n := len(m.entries(d))
		i := m.cursor[d]
		if i >= n {
			i = n - 1
		}
		m.cursor[d] = max(0, i)
	}
}

// focusEntry moves the focus to the entry with the given instance id.
func (m *Model) focusEntry(day activity.Day, instanceID string) {
	m.day = day
	for i, e := range m.entries(day) {
		if e.InstanceID == instanceID {
			m.cursor[day] = i
			return
		}
	}
	m.clampCursors()
}

// status shows a temporary message and schedules its removal.
func (m Model) status(msg string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now().Add(statusDuration)
	return m, clearStatusCmd()
}
