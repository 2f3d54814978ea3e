package runtime

import "sort"

// Tree supplies the root widgets a Document spans, in document order.
type Tree interface {
	Roots() []Widget
}

// TreeFunc adapts a function to the Tree interface.
type TreeFunc func() []Widget

// Roots calls f.
func (f TreeFunc) Roots() []Widget { return f() }

// Document owns the single focused element of a widget tree and the key
// listeners registered on its elements. It is the platform service focus
// traps are written against.
//
// A Document is not safe for concurrent use; the App touches it only from
// its event loop goroutine.
type Document struct {
	tree      Tree
	active    Widget
	listeners map[Widget][]KeyListener
}

// NewDocument creates a Document over tree.
func NewDocument(tree Tree) *Document {
	return &Document{
		tree:      tree,
		listeners: make(map[Widget][]KeyListener),
	}
}

func (d *Document) roots() []Widget {
	if d.tree == nil {
		return nil
	}
	return d.tree.Roots()
}

// Contains reports whether w is attached to the document.
func (d *Document) Contains(w Widget) bool {
	return d.path(w) != nil
}

// path returns the chain from w's root down to w.
func (d *Document) path(w Widget) []Widget {
	if isNil(w) {
		return nil
	}
	for _, root := range d.roots() {
		if p := Path(root, w); p != nil {
			return p
		}
	}
	return nil
}

// ActiveElement returns the focused element, or nil when nothing is focused.
// An element that was focused and has since been detached is blurred and
// no longer counts.
func (d *Document) ActiveElement() Widget {
	if d.active != nil && !d.Contains(d.active) {
		d.Blur()
	}
	return d.active
}

// SetFocus moves focus to w. Any attached widget may be focused
// programmatically, even one native tab navigation skips. Focusing a nil
// or detached widget is a no-op and returns false.
func (d *Document) SetFocus(w Widget) bool {
	if !d.Contains(w) {
		return false
	}
	if d.active == w {
		return true
	}
	d.Blur()
	d.active = w
	if f, ok := w.(Focusable); ok {
		f.Focus()
	}
	return true
}

// Blur clears focus.
func (d *Document) Blur() {
	if f, ok := d.active.(Focusable); ok && !isNil(d.active) {
		f.Blur()
	}
	d.active = nil
}

// AddKeyListener registers l for key events targeted at target or any of
// its descendants. Adding the same listener to the same target twice is
// a no-op.
func (d *Document) AddKeyListener(target Widget, l KeyListener) {
	if isNil(target) || l == nil {
		return
	}
	for _, existing := range d.listeners[target] {
		if existing == l {
			return
		}
	}
	d.listeners[target] = append(d.listeners[target], l)
}

// RemoveKeyListener unregisters l from target. Unknown pairs are ignored.
func (d *Document) RemoveKeyListener(target Widget, l KeyListener) {
	ls := d.listeners[target]
	for i, existing := range ls {
		if existing == l {
			ls = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(ls) == 0 {
		delete(d.listeners, target)
		return
	}
	d.listeners[target] = ls
}

// ListenerCount returns how many key listeners are registered on target.
func (d *Document) ListenerCount(target Widget) int {
	return len(d.listeners[target])
}

// DispatchKey delivers a key press. Listeners on the focused element and
// then on each ancestor run first. Unless one of them prevents the default
// action, the message is offered to the focused widget and its ancestors,
// and an unhandled Tab or Shift+Tab moves focus along the native tab order.
func (d *Document) DispatchKey(msg KeyMsg) HandleResult {
	target := d.ActiveElement()
	ev := &KeyEvent{KeyMsg: msg, Target: target}
	path := d.path(target)

	for i := len(path) - 1; i >= 0 && !ev.stopped; i-- {
		// Copy so listeners may add or remove themselves while running.
		ls := append([]KeyListener(nil), d.listeners[path[i]]...)
		for _, l := range ls {
			l.HandleKeyDown(ev)
		}
	}

	if ev.DefaultPrevented() {
		return Handled()
	}

	for i := len(path) - 1; i >= 0; i-- {
		if result := path[i].HandleMessage(msg); result.Handled {
			return result
		}
	}

	if msg.IsTab() {
		d.navigate(msg.Shift)
		return Handled()
	}
	return Unhandled()
}

// TabOrder returns the elements native tab navigation visits: focusable
// widgets that can take focus plus elements with a non-negative tab index,
// excluding anything with a negative tab index. Positive tab indexes come
// first in ascending order, then the rest in document order.
func (d *Document) TabOrder() []Widget {
	var order []Widget
	for _, root := range d.roots() {
		Walk(root, func(w Widget) bool {
			if tabbable(w) {
				order = append(order, w)
			}
			return true
		})
	}
	sort.SliceStable(order, func(i, j int) bool {
		return tabRank(order[i]) < tabRank(order[j])
	})
	return order
}

func tabbable(w Widget) bool {
	attrs := AttrsOf(w)
	if attrs.HasTabIndex {
		return attrs.TabIndex >= 0
	}
	f, ok := w.(Focusable)
	return ok && f.CanFocus()
}

func tabRank(w Widget) int {
	attrs := AttrsOf(w)
	if attrs.HasTabIndex && attrs.TabIndex > 0 {
		return attrs.TabIndex
	}
	return maxInt
}

// navigate moves focus one step along the tab order, wrapping at the ends.
func (d *Document) navigate(backward bool) {
	order := d.TabOrder()
	if len(order) == 0 {
		return
	}

	active := d.ActiveElement()
	for i, w := range order {
		if w != active {
			continue
		}
		next := i + 1
		if backward {
			next = i - 1
		}
		d.SetFocus(order[(next+len(order))%len(order)])
		return
	}

	// Focus sits outside the tab order (or nowhere): step to the nearest
	// tabbable element in document order from the current position.
	d.SetFocus(d.nearest(order, active, backward))
}

func (d *Document) nearest(order []Widget, from Widget, backward bool) Widget {
	position := make(map[Widget]int)
	n := 0
	for _, root := range d.roots() {
		Walk(root, func(w Widget) bool {
			position[w] = n
			n++
			return true
		})
	}

	start, ok := position[from]
	if !ok {
		start = -1
	}
	if backward {
		if start < 0 {
			return order[len(order)-1]
		}
		for i := len(order) - 1; i >= 0; i-- {
			if position[order[i]] < start {
				return order[i]
			}
		}
		return order[len(order)-1]
	}
	for _, w := range order {
		if position[w] > start {
			return w
		}
	}
	return order[0]
}
