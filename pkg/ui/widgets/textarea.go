package widgets

import (
	"strings"

	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
)

// TextArea is a multi-line text input. Enter inserts a newline.
type TextArea struct {
	FocusableBase

	lines   [][]rune
	cursorX int
	cursorY int
	scrollY int
	width   int
	height  int
}

// NewTextArea creates a text area of the given size.
func NewTextArea(id string, width, height int) *TextArea {
	t := &TextArea{
		lines:  [][]rune{{}},
		width:  max(width, 1),
		height: max(height, 1),
	}
	t.attrs.ID = id
	t.attrs.Role = runtime.RoleTextArea
	return t
}

// Text returns the full content.
func (t *TextArea) Text() string {
	parts := make([]string, len(t.lines))
	for i, line := range t.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// SetText replaces the content and moves the cursor to the end.
func (t *TextArea) SetText(text string) {
	t.lines = t.lines[:0]
	for _, line := range strings.Split(text, "\n") {
		t.lines = append(t.lines, []rune(line))
	}
	t.cursorY = len(t.lines) - 1
	t.cursorX = len(t.lines[t.cursorY])
}

// Cursor returns the cursor column and line.
func (t *TextArea) Cursor() (x, y int) {
	return t.cursorX, t.cursorY
}

// Measure returns the configured size.
func (t *TextArea) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: t.width, Height: t.height})
}

// Render draws the visible lines.
func (t *TextArea) Render(ctx runtime.RenderContext) {
	bounds := t.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	style := controlStyle(ctx, t.focused, t.disabled)
	ctx.Buffer.Fill(bounds, ' ', style)

	if t.cursorY < t.scrollY {
		t.scrollY = t.cursorY
	} else if t.cursorY >= t.scrollY+bounds.Height {
		t.scrollY = t.cursorY - bounds.Height + 1
	}

	for row := 0; row < bounds.Height; row++ {
		idx := t.scrollY + row
		if idx >= len(t.lines) {
			break
		}
		ctx.Buffer.SetString(bounds.X, bounds.Y+row, truncate(string(t.lines[idx]), bounds.Width), style)
	}

	if t.focused && t.cursorX < bounds.Width {
		ch := ' '
		if line := t.lines[t.cursorY]; t.cursorX < len(line) {
			ch = line[t.cursorX]
		}
		ctx.Buffer.Set(bounds.X+t.cursorX, bounds.Y+t.cursorY-t.scrollY, ch, style.Reverse(true))
	}
}

// HandleMessage edits the text.
func (t *TextArea) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if t.disabled {
		return runtime.Unhandled()
	}
	if paste, ok := msg.(runtime.PasteMsg); ok {
		for _, r := range paste.Text {
			t.insertRune(r)
		}
		return runtime.Handled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	line := t.lines[t.cursorY]
	switch key.Key {
	case terminal.KeyEnter:
		t.insertRune('\n')
	case terminal.KeyRune:
		t.insertRune(key.Rune)
	case terminal.KeyBackspace:
		switch {
		case t.cursorX > 0:
			t.lines[t.cursorY] = append(line[:t.cursorX-1:t.cursorX-1], line[t.cursorX:]...)
			t.cursorX--
		case t.cursorY > 0:
			prev := t.lines[t.cursorY-1]
			t.cursorX = len(prev)
			t.lines[t.cursorY-1] = append(prev[:len(prev):len(prev)], line...)
			t.lines = append(t.lines[:t.cursorY], t.lines[t.cursorY+1:]...)
			t.cursorY--
		}
	case terminal.KeyLeft:
		t.cursorX = max(0, t.cursorX-1)
	case terminal.KeyRight:
		t.cursorX = min(len(line), t.cursorX+1)
	case terminal.KeyUp:
		if t.cursorY > 0 {
			t.cursorY--
			t.cursorX = min(t.cursorX, len(t.lines[t.cursorY]))
		}
	case terminal.KeyDown:
		if t.cursorY < len(t.lines)-1 {
			t.cursorY++
			t.cursorX = min(t.cursorX, len(t.lines[t.cursorY]))
		}
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (t *TextArea) insertRune(r rune) {
	line := t.lines[t.cursorY]
	if r == '\n' {
		head := append([]rune(nil), line[:t.cursorX]...)
		tail := append([]rune(nil), line[t.cursorX:]...)
		t.lines[t.cursorY] = head
		t.lines = append(t.lines[:t.cursorY+1], append([][]rune{tail}, t.lines[t.cursorY+1:]...)...)
		t.cursorY++
		t.cursorX = 0
		return
	}
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:t.cursorX]...)
	next = append(next, r)
	next = append(next, line[t.cursorX:]...)
	t.lines[t.cursorY] = next
	t.cursorX++
}
