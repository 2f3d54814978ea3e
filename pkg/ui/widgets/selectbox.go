package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
	"github.com/odvcencio/focustrap/pkg/ui/theme"
)

// Select picks one of a fixed list of options. Left/Up and Right/Down
// cycle through them.
type Select struct {
	FocusableBase
	options  []string
	selected int
	onChange func(index int, option string)
}

// NewSelect creates a select with the first option chosen.
func NewSelect(id string, options ...string) *Select {
	s := &Select{options: options}
	s.attrs.ID = id
	s.attrs.Role = runtime.RoleSelect
	return s
}

// Selected returns the chosen index and option, or -1 and "" when empty.
func (s *Select) Selected() (int, string) {
	if len(s.options) == 0 {
		return -1, ""
	}
	return s.selected, s.options[s.selected]
}

// OnChange sets the callback for selection changes.
func (s *Select) OnChange(fn func(index int, option string)) {
	s.onChange = fn
}

// Measure sizes the select to its widest option.
func (s *Select) Measure(constraints runtime.Constraints) runtime.Size {
	width := 0
	for _, opt := range s.options {
		width = max(width, runewidth.StringWidth(opt))
	}
	return constraints.Constrain(runtime.Size{Width: width + 4, Height: 1})
}

// Render draws "‹ option ›".
func (s *Select) Render(ctx runtime.RenderContext) {
	if s.bounds.Width == 0 || s.bounds.Height == 0 {
		return
	}
	style := controlStyle(ctx, s.focused, s.disabled)
	_, current := s.Selected()
	ctx.Buffer.Fill(runtime.Rect{X: s.bounds.X, Y: s.bounds.Y, Width: s.bounds.Width, Height: 1}, ' ', style)
	ctx.Buffer.SetString(s.bounds.X, s.bounds.Y, truncate(theme.Symbols.ArrowLeft+" "+current+" "+theme.Symbols.Arrow, s.bounds.Width), style)
}

// HandleMessage cycles the selection.
func (s *Select) HandleMessage(msg runtime.Message) runtime.HandleResult {
	key, ok := msg.(runtime.KeyMsg)
	if !ok || s.disabled || len(s.options) == 0 {
		return runtime.Unhandled()
	}
	switch key.Key {
	case terminal.KeyUp, terminal.KeyLeft:
		s.move(-1)
	case terminal.KeyDown, terminal.KeyRight:
		s.move(1)
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (s *Select) move(delta int) {
	n := len(s.options)
	s.selected = (s.selected + delta + n) % n
	if s.onChange != nil {
		s.onChange(s.selected, s.options[s.selected])
	}
}
