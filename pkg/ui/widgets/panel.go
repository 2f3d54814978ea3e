package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/focustrap/pkg/ui/backend"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
)

// Panel is a container with an optional border, title and background
// around a single child. Dialog panels are what focus traps usually
// enclose.
type Panel struct {
	Base
	child      runtime.Widget
	style      *backend.Style
	hasBorder  bool
	title      string
	onKey      func(runtime.KeyMsg) runtime.HandleResult
	cancelable bool
}

// NewPanel creates a borderless group panel around child.
func NewPanel(child runtime.Widget) *Panel {
	p := &Panel{child: child}
	p.attrs.Role = runtime.RoleGroup
	return p
}

// NewDialog creates a bordered dialog panel. Escape inside it emits Cancel.
func NewDialog(id, title string, child runtime.Widget) *Panel {
	p := NewPanel(child).WithBorder().WithTitle(title)
	p.attrs.ID = id
	p.attrs.Role = runtime.RoleDialog
	p.cancelable = true
	return p
}

// WithStyle overrides the theme's surface style.
func (p *Panel) WithStyle(style backend.Style) *Panel {
	p.style = &style
	return p
}

// WithBorder enables the border.
func (p *Panel) WithBorder() *Panel {
	p.hasBorder = true
	return p
}

// WithTitle sets the title shown in the top border.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// OnKey installs a handler for key presses that bubble up to the panel
// unhandled. It runs before the Escape-to-Cancel behavior of dialogs.
func (p *Panel) OnKey(fn func(runtime.KeyMsg) runtime.HandleResult) *Panel {
	p.onKey = fn
	return p
}

// Child returns the panel's child.
func (p *Panel) Child() runtime.Widget {
	return p.child
}

// SetChild replaces the panel's child.
func (p *Panel) SetChild(child runtime.Widget) {
	p.child = child
	if p.bounds.Width > 0 {
		p.Layout(p.bounds)
	}
}

// Children makes Panel a runtime.Container.
func (p *Panel) Children() []runtime.Widget {
	if p.child == nil {
		return nil
	}
	return []runtime.Widget{p.child}
}

func (p *Panel) inset() int {
	if p.hasBorder {
		return 1
	}
	return 0
}

// Measure returns the child's size plus the border.
func (p *Panel) Measure(constraints runtime.Constraints) runtime.Size {
	border := 2 * p.inset()
	if p.child == nil {
		return constraints.Constrain(runtime.Size{Width: border, Height: border})
	}

	childConstraints := runtime.Constraints{
		MinWidth:  max(0, constraints.MinWidth-border),
		MaxWidth:  max(0, constraints.MaxWidth-border),
		MinHeight: max(0, constraints.MinHeight-border),
		MaxHeight: max(0, constraints.MaxHeight-border),
	}
	size := p.child.Measure(childConstraints)
	if p.title != "" {
		size.Width = max(size.Width, runewidth.StringWidth(p.title)+4-border)
	}
	return constraints.Constrain(runtime.Size{
		Width:  size.Width + border,
		Height: size.Height + border,
	})
}

// Layout positions the panel and its child.
func (p *Panel) Layout(bounds runtime.Rect) {
	p.Base.Layout(bounds)
	if p.child == nil {
		return
	}
	n := p.inset()
	p.child.Layout(bounds.Inset(n, n, n, n))
}

// Render draws the panel.
func (p *Panel) Render(ctx runtime.RenderContext) {
	bounds := p.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}

	style, borderStyle := backend.DefaultStyle(), backend.DefaultStyle()
	if ctx.Theme != nil {
		style, borderStyle = ctx.Theme.Surface, ctx.Theme.Border
		if ctx.Focused && p.attrs.Role == runtime.RoleDialog {
			borderStyle = ctx.Theme.BorderFocus
		}
	}
	if p.style != nil {
		style = *p.style
	}

	ctx.Buffer.Fill(bounds, ' ', style)
	if p.hasBorder {
		ctx.Buffer.DrawBox(bounds, borderStyle)
		if p.title != "" && bounds.Width > 4 {
			ctx.Buffer.SetString(bounds.X+2, bounds.Y, truncate(" "+p.title+" ", bounds.Width-4), borderStyle)
		}
	}

	if p.child != nil {
		p.child.Render(ctx)
	}
}

// HandleMessage sees key presses its descendants left unhandled.
func (p *Panel) HandleMessage(msg runtime.Message) runtime.HandleResult {
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}
	if p.onKey != nil {
		if result := p.onKey(key); result.Handled {
			return result
		}
	}
	if p.cancelable && key.Key == terminal.KeyEscape {
		return runtime.WithCommand(runtime.Cancel{})
	}
	return runtime.Unhandled()
}
