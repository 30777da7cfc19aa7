package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/scheduler"
	"github.com/javiermolinar/weekendly/internal/summary"
	"github.com/javiermolinar/weekendly/internal/tui/commands"
)

func clearStatusCmd() tea.Cmd {
	return commands.ClearStatusAfter(statusDuration)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		log.WithFields(log.Fields{"key": msg.String(), "mode": m.mode}).Debug("key press")
		if m.mode == ModePicker {
			return m.handlePickerKeys(msg)
		}
		return m.handleBoardKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case commands.ErrMsg:
		return m.status(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		return m.status(msg.Msg, false)

	case commands.CopiedMsg:
		return m.status(fmt.Sprintf("Copied itinerary (%d lines)", msg.Lines), false)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Forward cursor blinks and other input messages to the search box
	if m.mode == ModePicker && m.picker.typing {
		var cmd tea.Cmd
		m.picker.search, cmd = m.picker.search.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleBoardKeys handles keys on the weekend board.
func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewPlan):
		return m.newPlan()
	}

	if !m.session.HasPlan() {
		return m.status("No plan yet, press n to start one", true)
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.day = activity.Saturday
	case key.Matches(msg, m.keys.Right):
		m.day = activity.Sunday
	case key.Matches(msg, m.keys.SwitchDay):
		m.day = m.day.Other()

	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.day] > 0 {
			m.cursor[m.day]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.day] < len(m.entries(m.day))-1 {
			m.cursor[m.day]++
		}

	case key.Matches(msg, m.keys.Add):
		m.picker.open(m.session.Catalog(activity.Filter{}))
		m.mode = ModePicker
		return m, nil

	case key.Matches(msg, m.keys.Move):
		return m.moveSelected()

	case key.Matches(msg, m.keys.Remove):
		return m.removeSelected()

	case key.Matches(msg, m.keys.Save):
		return m.savePlan()

	case key.Matches(msg, m.keys.Copy):
		p := m.session.Current()
		return m, commands.CopyToClipboard(summary.Summarize(p).Itinerary())
	}

	return m, nil
}

// handlePickerKeys handles keys while the catalog picker is open.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.typing {
		switch msg.String() {
		case "esc", "enter":
			m.picker.typing = false
			m.picker.search.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.picker.search, cmd = m.picker.search.Update(msg)
		m.picker.refilter()
		return m, cmd
	}

	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.pickerKeys.Close):
		m.mode = ModeBoard
		return m, nil
	case key.Matches(msg, m.pickerKeys.Up):
		m.picker.up()
	case key.Matches(msg, m.pickerKeys.Down):
		m.picker.down()
	case key.Matches(msg, m.pickerKeys.Category):
		m.picker.cycleCategory()
	case key.Matches(msg, m.pickerKeys.Search):
		m.picker.typing = true
		return m, m.picker.search.Focus()
	case key.Matches(msg, m.pickerKeys.Auto):
		return m.addSelected(scheduler.PreferenceAuto)
	case key.Matches(msg, m.pickerKeys.Morning):
		return m.addSelected(scheduler.PreferenceMorning)
	case key.Matches(msg, m.pickerKeys.Afternoon):
		return m.addSelected(scheduler.PreferenceAfternoon)
	case key.Matches(msg, m.pickerKeys.Evening):
		return m.addSelected(scheduler.PreferenceEvening)
	}
	return m, nil
}

func (m Model) newPlan() (tea.Model, tea.Cmd) {
	p, err := m.session.NewPlan(m.ctx, "My Weekend", "", m.config.DefaultBudget())
	if err != nil {
		return m.status(fmt.Sprintf("Error: %v", err), true)
	}
	m.day = activity.Saturday
	m.clampCursors()
	return m.status(fmt.Sprintf("Started %s with a %s budget", p.Name, p.TotalBudget.String()), false)
}

func (m Model) addSelected(pref scheduler.Preference) (tea.Model, tea.Cmd) {
	a, ok := m.picker.selected()
	if !ok {
		return m, nil
	}
	m.mode = ModeBoard

	out, err := m.session.ScheduleWithPreference(m.ctx, a.ID, m.day, pref)
	if err != nil {
		return m.status(fmt.Sprintf("Error: %v", err), true)
	}
	if !out.Result.Changed() {
		return m.status(fmt.Sprintf("Could not add %s (%s)", a.Name, out.Result), true)
	}

	m.focusEntry(out.Entry.Day, out.Entry.InstanceID)
	status := fmt.Sprintf("Added %s at %s", out.Entry.Name, out.Entry.StartTime)
	if out.Slot != nil && out.Slot.Fallback {
		status += fmt.Sprintf(" (no room in the %s)", pref)
	}
	return m.status(m.withAlert(status), false)
}

func (m Model) moveSelected() (tea.Model, tea.Cmd) {
	e, ok := m.selected()
	if !ok {
		return m, nil
	}

	out, err := m.session.Move(m.ctx, e.InstanceID, e.Day, e.Day.Other(), "")
	if err != nil {
		return m.status(fmt.Sprintf("Error: %v", err), true)
	}
	if !out.Result.Changed() {
		return m.status(fmt.Sprintf("Could not move %s (%s)", e.Name, out.Result), true)
	}

	m.clampCursors()
	return m.status(fmt.Sprintf("Moved %s to %s %s", out.Entry.Name, out.Entry.Day.Title(), out.Entry.StartTime), false)
}

func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	e, ok := m.selected()
	if !ok {
		return m, nil
	}

	out, err := m.session.Unschedule(m.ctx, e.InstanceID, e.Day)
	if err != nil {
		return m.status(fmt.Sprintf("Error: %v", err), true)
	}
	if out.Result != plan.ResultApplied {
		return m.status(fmt.Sprintf("Could not remove %s (%s)", e.Name, out.Result), true)
	}

	m.clampCursors()
	return m.status("Removed "+e.Name, false)
}

func (m Model) savePlan() (tea.Model, tea.Cmd) {
	result, err := m.session.SavePlan(m.ctx)
	if err != nil {
		return m.status(fmt.Sprintf("Error: %v", err), true)
	}
	if !result.Changed() {
		return m.status("Nothing to save", true)
	}
	return m.status("Saved "+m.session.Current().Name, false)
}

// withAlert appends the budget warning when the plan wants one.
func (m Model) withAlert(status string) string {
	p := m.session.Current()
	if p == nil {
		return status
	}
	s := summary.Summarize(p)
	if !s.NeedsAlert() {
		return status
	}
	return status + " · " + s.AlertMessage()
}
