package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/db"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/session"
	"github.com/javiermolinar/weekendly/internal/tui/commands"
)

func newTestSession(t *testing.T, cfg *config.Config) *session.Session {
	t.Helper()

	store, err := db.New(":memory:")
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	activities, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}

	engine := plan.NewEngine(
		plan.WithScheduler(cfg.Scheduler()),
		plan.WithIDGenerator(&plan.SequenceGenerator{}),
	)
	s, err := session.Open(context.Background(), engine, store, activities)
	if err != nil {
		t.Fatalf("opening session: %v", err)
	}
	return s
}

// newTestModel returns a board over a fresh plan with the given budget.
func newTestModel(t *testing.T, budget float64) Model {
	t.Helper()
	cfg := config.Default()
	s := newTestSession(t, cfg)
	if budget > 0 {
		if _, err := s.NewPlan(context.Background(), "Test weekend", "relaxing", activity.Dollars(budget)); err != nil {
			t.Fatalf("creating plan: %v", err)
		}
	}
	m := New(s, cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = press(m, string(r))
	}
	return m
}

func schedule(t *testing.T, m Model, id string, day activity.Day) plan.Outcome {
	t.Helper()
	out, err := m.session.Schedule(context.Background(), id, day, "")
	if err != nil || out.Result != plan.ResultApplied {
		t.Fatalf("scheduling %s: %v %v", id, out.Result, err)
	}
	return out
}

func TestBoard_NoPlan(t *testing.T) {
	m := newTestModel(t, 0)

	if !strings.Contains(ansi.Strip(m.View()), "No plan yet") {
		t.Fatalf("expected empty board hint, got:\n%s", m.View())
	}

	m = press(m, "a")
	if m.mode != ModeBoard {
		t.Errorf("picker opened without a plan")
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "press n") {
		t.Errorf("unexpected status %q", m.statusMsg)
	}

	m = press(m, "n")
	if !m.session.HasPlan() {
		t.Fatal("expected n to start a plan")
	}
	if !strings.Contains(m.statusMsg, "Started My Weekend with a $150 budget") {
		t.Errorf("unexpected status %q", m.statusMsg)
	}
}

func TestPicker_AddAuto(t *testing.T) {
	m := newTestModel(t, 100)

	m = press(m, "a")
	if m.mode != ModePicker {
		t.Fatalf("expected picker mode, got %v", m.mode)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Add to Saturday") || !strings.Contains(view, "Brunch at a Cafe") {
		t.Fatalf("picker not rendered:\n%s", view)
	}
	if !strings.Contains(view, "weekendly") {
		t.Errorf("board header hidden behind the picker:\n%s", view)
	}
	if rows := strings.Count(view, "\n") + 1; rows != m.height {
		t.Errorf("picker view has %d rows, want %d", rows, m.height)
	}

	m = press(m, "enter")
	if m.mode != ModeBoard {
		t.Errorf("expected picker to close after adding")
	}

	entries := m.session.Current().Schedule(activity.Saturday)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry on Saturday, got %d", len(entries))
	}
	if entries[0].ID != "brunch" || entries[0].StartTime != "09:00" {
		t.Errorf("unexpected entry %s at %s", entries[0].ID, entries[0].StartTime)
	}
	if !strings.Contains(m.statusMsg, "Added Brunch at a Cafe at 09:00") {
		t.Errorf("unexpected status %q", m.statusMsg)
	}
}

func TestPicker_Preferences(t *testing.T) {
	tests := []struct {
		key   string
		start string
	}{
		{"1", "09:00"},
		{"2", "12:00"},
		{"3", "17:00"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t, 100)
			m = press(m, "tab", "a", tt.key)

			entries := m.session.Current().Schedule(activity.Sunday)
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry on Sunday, got %d", len(entries))
			}
			if entries[0].StartTime != tt.start {
				t.Errorf("start = %s, want %s", entries[0].StartTime, tt.start)
			}
		})
	}
}

func TestPicker_SearchAndCategory(t *testing.T) {
	m := newTestModel(t, 100)

	m = press(m, "a", "/")
	if !m.picker.typing {
		t.Fatal("expected / to focus the search box")
	}
	m = typeText(m, "yoga")
	if len(m.picker.items) != 1 || m.picker.items[0].ID != "yoga" {
		t.Fatalf("unexpected search results %+v", m.picker.items)
	}

	// enter leaves the search box, the next enter adds
	m = press(m, "enter", "enter")
	entries := m.session.Current().Schedule(activity.Saturday)
	if len(entries) != 1 || entries[0].ID != "yoga" {
		t.Fatalf("expected yoga on Saturday, got %+v", entries)
	}

	m = press(m, "a", "c", "c")
	if m.picker.category != activity.CategoryOutdoor {
		t.Fatalf("expected outdoor filter, got %q", m.picker.category)
	}
	for _, a := range m.picker.items {
		if a.Category != activity.CategoryOutdoor {
			t.Errorf("non-outdoor activity %s in filtered picker", a.ID)
		}
	}

	m = press(m, "esc")
	if m.mode != ModeBoard {
		t.Errorf("expected esc to close the picker")
	}
	if m.session.Current().Len() != 1 {
		t.Errorf("closing the picker should not add anything")
	}
}

func TestBoard_CursorNavigation(t *testing.T) {
	m := newTestModel(t, 200)
	schedule(t, m, "brunch", activity.Saturday)
	schedule(t, m, "museum", activity.Saturday)
	schedule(t, m, "movie", activity.Saturday)

	m = press(m, "j", "j", "j")
	if got := m.cursor[activity.Saturday]; got != 2 {
		t.Fatalf("cursor = %d, want 2", got)
	}
	m = press(m, "k")
	e, ok := m.selected()
	if !ok || e.ID != "museum" {
		t.Errorf("selected = %+v, want museum", e)
	}

	m = press(m, "l")
	if m.day != activity.Sunday {
		t.Errorf("expected l to focus Sunday")
	}
	if _, ok := m.selected(); ok {
		t.Errorf("expected nothing selected on empty Sunday")
	}
	m = press(m, "h")
	if m.day != activity.Saturday {
		t.Errorf("expected h to focus Saturday")
	}
}

func TestBoard_MoveAndRemove(t *testing.T) {
	m := newTestModel(t, 100)
	schedule(t, m, "hiking", activity.Sunday)
	schedule(t, m, "brunch", activity.Saturday)

	m = press(m, "m")
	p := m.session.Current()
	if len(p.Schedule(activity.Saturday)) != 0 {
		t.Fatal("expected brunch to leave Saturday")
	}
	sunday := p.Schedule(activity.Sunday)
	if len(sunday) != 2 || sunday[1].ID != "brunch" || sunday[1].StartTime != "12:30" {
		t.Fatalf("unexpected Sunday %+v", sunday)
	}
	if !strings.Contains(m.statusMsg, "Moved Brunch at a Cafe to Sunday 12:30") {
		t.Errorf("unexpected status %q", m.statusMsg)
	}

	m = press(m, "tab", "d")
	if got := m.session.Current().Schedule(activity.Sunday); len(got) != 1 || got[0].ID != "brunch" {
		t.Fatalf("expected hiking removed, got %+v", got)
	}
	if m.cursor[activity.Sunday] != 0 {
		t.Errorf("cursor not clamped after remove")
	}

	// Nothing selected on the empty day: no-op
	m = press(m, "tab", "d", "m")
	if m.session.Current().Len() != 1 {
		t.Errorf("expected no change pressing d/m on an empty day")
	}
}

func TestBoard_BudgetAlert(t *testing.T) {
	m := newTestModel(t, 30)

	m = press(m, "a", "enter")
	if !strings.Contains(m.statusMsg, "Near budget") {
		t.Errorf("expected budget alert in status, got %q", m.statusMsg)
	}

	view := ansi.Strip(m.View())
	for _, want := range []string{"Estimated $25", "Budget $30", "Near budget", "83%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBoard_SaveAndCopy(t *testing.T) {
	m := newTestModel(t, 100)
	schedule(t, m, "brunch", activity.Saturday)

	m = press(m, "s")
	plans, err := m.session.ListPlans(context.Background())
	if err != nil || len(plans) != 1 {
		t.Fatalf("expected one saved plan, got %d (%v)", len(plans), err)
	}

	_, cmd := m.Update(keyMsg("y"))
	if cmd == nil {
		t.Error("expected y to return a clipboard command")
	}
}

func TestBoard_HelpAndQuit(t *testing.T) {
	m := newTestModel(t, 100)

	m = press(m, "?")
	if !m.help.ShowAll {
		t.Error("expected ? to expand help")
	}
	if !strings.Contains(ansi.Strip(m.View()), "copy itinerary") {
		t.Errorf("full help not rendered:\n%s", m.View())
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected q to quit")
	}
}

func TestUpdate_StatusMessages(t *testing.T) {
	m := newTestModel(t, 100)

	updated, _ := m.Update(commands.CopiedMsg{Lines: 4})
	m = updated.(Model)
	if m.statusMsg != "Copied itinerary (4 lines)" {
		t.Errorf("unexpected status %q", m.statusMsg)
	}

	// Not yet expired
	updated, _ = m.Update(commands.ClearStatusMsg{})
	m = updated.(Model)
	if m.statusMsg == "" {
		t.Error("status cleared too early")
	}

	m.statusTime = time.Now().Add(-time.Second)
	updated, _ = m.Update(commands.ClearStatusMsg{})
	m = updated.(Model)
	if m.statusMsg != "" {
		t.Errorf("expected status cleared, got %q", m.statusMsg)
	}

	updated, _ = m.Update(commands.ErrMsg{Err: context.Canceled})
	m = updated.(Model)
	if !m.statusErr || !strings.Contains(m.statusMsg, "context canceled") {
		t.Errorf("unexpected error status %q", m.statusMsg)
	}
}

func TestView_Columns(t *testing.T) {
	m := newTestModel(t, 100)
	schedule(t, m, "brunch", activity.Saturday)
	schedule(t, m, "hiking", activity.Sunday)

	view := ansi.Strip(m.View())
	for _, want := range []string{"Test weekend", "(relaxing)", "Saturday", "Sunday", "Brunch at a Cafe", "09:00-10:30", "Hiking", "Free"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBudgetBar(t *testing.T) {
	tests := []struct {
		spent, total activity.Money
		want         string
	}{
		{0, 100, "░░░░░░░░░░ 0%"},
		{50, 100, "█████░░░░░ 50%"},
		{200, 100, "██████████ 200%"},
		{10, 0, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := budgetBar(tt.spent, tt.total, 10); got != tt.want {
			t.Errorf("budgetBar(%v, %v) = %q, want %q", tt.spent, tt.total, got, tt.want)
		}
	}
}

func TestInit(t *testing.T) {
	if cmd := newTestModel(t, 0).Init(); cmd != nil {
		t.Error("expected no startup command without a plan")
	}

	cmd := newTestModel(t, 100).Init()
	if cmd == nil {
		t.Fatal("expected a startup status command")
	}
	msg, ok := cmd().(commands.StatusMsgCmd)
	if !ok {
		t.Fatalf("Init: got %T, want StatusMsgCmd", cmd())
	}
	if msg.Msg != "Loaded Test weekend" {
		t.Errorf("status: got %q, want %q", msg.Msg, "Loaded Test weekend")
	}
}
