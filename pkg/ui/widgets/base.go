// Package widgets provides the controls and containers focus traps work
// over. Every widget is a runtime.Element, so its role, href and tab index
// are visible to element queries.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/focustrap/pkg/ui/backend"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
)

// Base provides common functionality for widgets.
// Embed it in widget structs to get default implementations.
type Base struct {
	bounds  runtime.Rect
	focused bool
	attrs   runtime.Attrs
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	b.bounds = bounds
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// Attrs returns the element attributes.
func (b *Base) Attrs() runtime.Attrs {
	return b.attrs
}

// ID returns the element ID.
func (b *Base) ID() string {
	return b.attrs.ID
}

// SetID sets the element ID.
func (b *Base) SetID(id string) {
	b.attrs.ID = id
}

// SetTabIndex sets an explicit tab index. Negative values take the element
// out of native tab navigation.
func (b *Base) SetTabIndex(n int) {
	b.attrs.TabIndex = n
	b.attrs.HasTabIndex = true
}

// ClearTabIndex removes an explicit tab index.
func (b *Base) ClearTabIndex() {
	b.attrs.TabIndex = 0
	b.attrs.HasTabIndex = false
}

// CanFocus returns false by default.
func (b *Base) CanFocus() bool {
	return false
}

// Focus marks the widget as focused.
func (b *Base) Focus() {
	b.focused = true
}

// Blur marks the widget as unfocused.
func (b *Base) Blur() {
	b.focused = false
}

// IsFocused returns whether the widget is focused.
func (b *Base) IsFocused() bool {
	return b.focused
}

// FocusableBase extends Base for controls.
type FocusableBase struct {
	Base
	disabled bool
}

// CanFocus reports whether native tab navigation may land here.
func (f *FocusableBase) CanFocus() bool {
	return !f.disabled
}

// SetDisabled enables or disables the control.
func (f *FocusableBase) SetDisabled(disabled bool) {
	f.disabled = disabled
}

// Disabled reports whether the control is disabled.
func (f *FocusableBase) Disabled() bool {
	return f.disabled
}

// truncate shortens s to fit within width columns, ending in an ellipsis
// when something was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// controlStyle picks the theme style for a control in the given state.
func controlStyle(ctx runtime.RenderContext, focused, disabled bool) backend.Style {
	th := ctx.Theme
	if th == nil {
		s := backend.DefaultStyle()
		if focused {
			return s.Reverse(true)
		}
		return s
	}
	switch {
	case disabled:
		return th.TextMuted
	case focused:
		return th.ControlFocus
	default:
		return th.Control
	}
}
