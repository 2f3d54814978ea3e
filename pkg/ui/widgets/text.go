package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/focustrap/pkg/ui/backend"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
)

// Text is a static text display. It is not a control, but giving it a
// non-negative tab index makes it focusable like any other element.
type Text struct {
	Base
	lines    []string
	style    backend.Style
	hasStyle bool
}

// NewText creates a new text widget.
func NewText(text string) *Text {
	return &Text{lines: strings.Split(text, "\n")}
}

// SetText updates the displayed text.
func (t *Text) SetText(text string) {
	t.lines = strings.Split(text, "\n")
}

// Text returns the current text.
func (t *Text) Text() string {
	return strings.Join(t.lines, "\n")
}

// WithStyle overrides the theme style and returns the widget for chaining.
func (t *Text) WithStyle(style backend.Style) *Text {
	t.style = style
	t.hasStyle = true
	return t
}

// Measure returns the size needed to display the text.
func (t *Text) Measure(constraints runtime.Constraints) runtime.Size {
	width := 0
	for _, line := range t.lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: len(t.lines)})
}

// Render draws the text, one line per row, clipped to the bounds.
func (t *Text) Render(ctx runtime.RenderContext) {
	style := t.style
	if !t.hasStyle {
		style = backend.DefaultStyle()
		if ctx.Theme != nil {
			style = ctx.Theme.TextPrimary
		}
	}
	if t.focused {
		style = style.Reverse(true)
	}
	for i, line := range t.lines {
		if i >= t.bounds.Height {
			break
		}
		ctx.Buffer.SetString(t.bounds.X, t.bounds.Y+i, truncate(line, t.bounds.Width), style)
	}
}
