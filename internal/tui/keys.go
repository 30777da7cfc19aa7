package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the board shortcuts.
type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	SwitchDay key.Binding
	Up        key.Binding
	Down      key.Binding
	Move      key.Binding
	Remove    key.Binding
	Add       key.Binding
	NewPlan   key.Binding
	Save      key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// pickerKeyMap defines the catalog picker shortcuts.
type pickerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Auto      key.Binding
	Morning   key.Binding
	Afternoon key.Binding
	Evening   key.Binding
	Category  key.Binding
	Search    key.Binding
	Close     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "saturday"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "sunday"),
		),
		SwitchDay: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch day"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "down"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to other day"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add activity"),
		),
		NewPlan: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new plan"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save plan"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy itinerary"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "down"),
		),
		Auto: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "add"),
		),
		Morning: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "morning"),
		),
		Afternoon: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "afternoon"),
		),
		Evening: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "evening"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchDay, k.Add, k.Move, k.Remove, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SwitchDay, k.Up, k.Down},
		{k.Add, k.Move, k.Remove},
		{k.NewPlan, k.Save, k.Copy},
		{k.Help, k.Quit},
	}
}

// ShortHelp implements help.KeyMap.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Auto, k.Morning, k.Afternoon, k.Evening, k.Category, k.Search, k.Close}
}

// FullHelp implements help.KeyMap.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Auto, k.Morning, k.Afternoon, k.Evening},
		{k.Category, k.Search, k.Close},
	}
}
