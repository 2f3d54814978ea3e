package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
)

// Input is a single-line text input with cursor support.
// Tab and Escape are left unhandled so navigation and dismissal keep working.
type Input struct {
	FocusableBase

	text        []rune
	cursorPos   int
	width       int
	placeholder string

	onChange func(text string)
}

// NewInput creates a new input widget width columns wide.
func NewInput(id string, width int) *Input {
	i := &Input{width: max(width, 1)}
	i.attrs.ID = id
	i.attrs.Role = runtime.RoleInput
	return i
}

// SetPlaceholder sets the placeholder text shown when empty and unfocused.
func (i *Input) SetPlaceholder(text string) {
	i.placeholder = text
}

// OnChange sets the callback for when text changes.
func (i *Input) OnChange(fn func(text string)) {
	i.onChange = fn
}

// Text returns the current input text.
func (i *Input) Text() string {
	return string(i.text)
}

// SetText sets the input text and moves the cursor to the end.
func (i *Input) SetText(text string) {
	i.text = []rune(text)
	i.cursorPos = len(i.text)
}

// CursorPos returns the cursor position in runes.
func (i *Input) CursorPos() int {
	return i.cursorPos
}

// Measure returns a one-line box of the configured width.
func (i *Input) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: i.width, Height: 1})
}

// Render draws the input field, scrolled so the cursor stays visible.
func (i *Input) Render(ctx runtime.RenderContext) {
	bounds := i.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	style := controlStyle(ctx, i.focused, i.disabled)
	ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', style)

	if len(i.text) == 0 && !i.focused && i.placeholder != "" {
		ctx.Buffer.SetString(bounds.X, bounds.Y, truncate(i.placeholder, bounds.Width), style.Dim(true))
		return
	}

	start := 0
	for runewidth.StringWidth(string(i.text[start:i.cursorPos])) >= bounds.Width {
		start++
	}
	col := ctx.Buffer.SetString(bounds.X, bounds.Y, truncate(string(i.text[start:]), bounds.Width), style)

	if i.focused {
		cursorX := bounds.X + runewidth.StringWidth(string(i.text[start:i.cursorPos]))
		ch := ' '
		if i.cursorPos < len(i.text) {
			ch = i.text[i.cursorPos]
		}
		if cursorX < bounds.X+bounds.Width && cursorX <= bounds.X+col {
			ctx.Buffer.Set(cursorX, bounds.Y, ch, style.Reverse(true))
		}
	}
}

// HandleMessage edits the text.
func (i *Input) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if i.disabled {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.PasteMsg:
		i.insert([]rune(m.Text)...)
		return runtime.Handled()
	case runtime.KeyMsg:
		return i.handleKey(m)
	}
	return runtime.Unhandled()
}

func (i *Input) handleKey(key runtime.KeyMsg) runtime.HandleResult {
	switch key.Key {
	case terminal.KeyEnter:
		return runtime.WithCommand(runtime.Submit{ID: i.attrs.ID, Text: i.Text()})
	case terminal.KeyBackspace:
		if i.cursorPos > 0 {
			i.text = append(i.text[:i.cursorPos-1], i.text[i.cursorPos:]...)
			i.cursorPos--
			i.notifyChange()
		}
	case terminal.KeyDelete:
		if i.cursorPos < len(i.text) {
			i.text = append(i.text[:i.cursorPos], i.text[i.cursorPos+1:]...)
			i.notifyChange()
		}
	case terminal.KeyLeft:
		i.cursorPos = max(0, i.cursorPos-1)
	case terminal.KeyRight:
		i.cursorPos = min(len(i.text), i.cursorPos+1)
	case terminal.KeyHome:
		i.cursorPos = 0
	case terminal.KeyEnd:
		i.cursorPos = len(i.text)
	case terminal.KeyRune:
		i.insert(key.Rune)
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (i *Input) insert(rs ...rune) {
	if len(rs) == 0 {
		return
	}
	text := make([]rune, 0, len(i.text)+len(rs))
	text = append(text, i.text[:i.cursorPos]...)
	text = append(text, rs...)
	text = append(text, i.text[i.cursorPos:]...)
	i.text = text
	i.cursorPos += len(rs)
	i.notifyChange()
}

func (i *Input) notifyChange() {
	if i.onChange != nil {
		i.onChange(i.Text())
	}
}
