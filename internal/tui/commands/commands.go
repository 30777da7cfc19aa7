// Package commands provides TUI command constructors and message types.
package commands

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent when the itinerary was placed on the clipboard.
type CopiedMsg struct {
	Lines int
}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: err}
		}
		return CopiedMsg{Lines: countLines(text)}
	}
}

// Status shows a temporary message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status message once d has passed.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(text)-1; i++ {
		if text[i] == '\n' {
			n++
		}
	}
	return n
}
