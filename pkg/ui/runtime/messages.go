package runtime

import (
	"time"

	"github.com/odvcencio/focustrap/pkg/ui/terminal"
)

// Message represents an event flowing into the UI.
// Messages come from terminal input, timers, or App.Post.
type Message interface {
	isMessage()
}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// IsTab reports whether the message is Tab, with or without Shift.
func (m KeyMsg) IsTab() bool {
	return m.Key == terminal.KeyTab
}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// PasteMsg represents pasted text from bracketed paste mode.
type PasteMsg struct {
	Text string
}

func (PasteMsg) isMessage() {}

// TickMsg is sent on each frame tick.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// CommandMsg carries a command posted from outside the widget tree
// through App.Post so it runs on the event loop goroutine.
type CommandMsg struct {
	Command Command
}

func (CommandMsg) isMessage() {}
