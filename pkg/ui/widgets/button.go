package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
)

// Button is a pressable control. Enter or Space presses it.
type Button struct {
	FocusableBase
	label   string
	onPress func()
}

// NewButton creates a button with the given ID and label.
func NewButton(id, label string) *Button {
	b := &Button{label: label}
	b.attrs.ID = id
	b.attrs.Role = runtime.RoleButton
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// OnPress sets a callback run when the button is pressed, before the
// Press command is emitted.
func (b *Button) OnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// Measure returns the label width plus brackets.
func (b *Button) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: runewidth.StringWidth(b.label) + 4, Height: 1})
}

// Render draws "[ label ]".
func (b *Button) Render(ctx runtime.RenderContext) {
	if b.bounds.Width == 0 || b.bounds.Height == 0 {
		return
	}
	style := controlStyle(ctx, b.focused, b.disabled)
	ctx.Buffer.Fill(runtime.Rect{X: b.bounds.X, Y: b.bounds.Y, Width: b.bounds.Width, Height: 1}, ' ', style)
	ctx.Buffer.SetString(b.bounds.X, b.bounds.Y, truncate("[ "+b.label+" ]", b.bounds.Width), style)
}

// HandleMessage presses the button on Enter or Space.
func (b *Button) HandleMessage(msg runtime.Message) runtime.HandleResult {
	key, ok := msg.(runtime.KeyMsg)
	if !ok || b.disabled {
		return runtime.Unhandled()
	}
	if key.Key == terminal.KeyEnter || (key.Key == terminal.KeyRune && key.Rune == ' ') {
		if b.onPress != nil {
			b.onPress()
		}
		return runtime.WithCommand(runtime.Press{ID: b.attrs.ID})
	}
	return runtime.Unhandled()
}
