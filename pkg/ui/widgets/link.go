package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
)

// Link is a navigable text element. Only a link carrying an href is
// interactive; without one it renders as plain text and is skipped by
// native tab navigation.
type Link struct {
	Base
	text string
}

// NewLink creates a link.
func NewLink(id, text, href string) *Link {
	l := &Link{text: text}
	l.attrs.ID = id
	l.attrs.Role = runtime.RoleLink
	l.attrs.Href = href
	l.attrs.HasHref = href != ""
	return l
}

// Href returns the link target.
func (l *Link) Href() string {
	return l.attrs.Href
}

// SetHref sets the link target. The href stays present even when empty.
func (l *Link) SetHref(href string) {
	l.attrs.Href = href
	l.attrs.HasHref = true
}

// RemoveHref drops the href, making the link inert.
func (l *Link) RemoveHref() {
	l.attrs.Href = ""
	l.attrs.HasHref = false
}

// CanFocus reports whether the link has an href.
func (l *Link) CanFocus() bool {
	return l.attrs.HasHref
}

// Measure returns the text width.
func (l *Link) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: runewidth.StringWidth(l.text), Height: 1})
}

// Render draws the link text.
func (l *Link) Render(ctx runtime.RenderContext) {
	style := controlStyle(ctx, l.focused, false)
	if !l.focused && ctx.Theme != nil {
		style = ctx.Theme.Link
	}
	ctx.Buffer.SetString(l.bounds.X, l.bounds.Y, truncate(l.text, l.bounds.Width), style)
}

// HandleMessage follows the link on Enter.
func (l *Link) HandleMessage(msg runtime.Message) runtime.HandleResult {
	key, ok := msg.(runtime.KeyMsg)
	if !ok || key.Key != terminal.KeyEnter || !l.attrs.HasHref {
		return runtime.Unhandled()
	}
	return runtime.WithCommand(runtime.Press{ID: l.attrs.ID, Href: l.attrs.Href})
}
