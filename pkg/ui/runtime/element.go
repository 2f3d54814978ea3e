package runtime

import "reflect"

// Role classifies what kind of control an element is.
// It plays the part a tag name plays in a markup tree.
type Role int

const (
	RoleGeneric Role = iota
	RoleButton
	RoleLink
	RoleInput
	RoleSelect
	RoleTextArea
	RoleGroup
	RoleDialog
)

var roleNames = [...]string{
	RoleGeneric:  "generic",
	RoleButton:   "button",
	RoleLink:     "link",
	RoleInput:    "input",
	RoleSelect:   "select",
	RoleTextArea: "textarea",
	RoleGroup:    "group",
	RoleDialog:   "dialog",
}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Attrs are the queryable attributes of an element.
type Attrs struct {
	ID   string
	Role Role

	// HasHref marks the href attribute as present, even when Href is empty.
	Href    string
	HasHref bool

	// TabIndex is only meaningful when HasTabIndex is set.
	TabIndex    int
	HasTabIndex bool
}

// Element is a widget that participates in element queries and focus.
type Element interface {
	Widget
	Attrs() Attrs
}

// Container is implemented by widgets that own child widgets.
// Children must be returned in document order.
type Container interface {
	Children() []Widget
}

// IsElement reports whether w is a usable element: non-nil, not a nil
// pointer wrapped in an interface, and exposing attributes.
func IsElement(w Widget) bool {
	if isNil(w) {
		return false
	}
	_, ok := w.(Element)
	return ok
}

// AttrsOf returns the attributes of w, or zero Attrs when w is not an Element.
func AttrsOf(w Widget) Attrs {
	if el, ok := w.(Element); ok && !isNil(w) {
		return el.Attrs()
	}
	return Attrs{}
}

func isNil(w Widget) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func childrenOf(w Widget) []Widget {
	if c, ok := w.(Container); ok && !isNil(w) {
		return c.Children()
	}
	return nil
}

// Walk visits root and its descendants in document (pre-order) order.
// Returning false from fn stops the walk.
func Walk(root Widget, fn func(w Widget) bool) {
	walk(root, fn)
}

func walk(w Widget, fn func(Widget) bool) bool {
	if isNil(w) {
		return true
	}
	if !fn(w) {
		return false
	}
	for _, child := range childrenOf(w) {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// Query returns the descendants of root (root excluded) that are elements
// matching match, in document order.
func Query(root Widget, match func(Element) bool) []Widget {
	var found []Widget
	for _, child := range childrenOf(root) {
		walk(child, func(w Widget) bool {
			if el, ok := w.(Element); ok && match(el) {
				found = append(found, w)
			}
			return true
		})
	}
	return found
}

// QueryID returns the first element in root's subtree (root included)
// whose ID equals id.
func QueryID(root Widget, id string) Widget {
	var found Widget
	Walk(root, func(w Widget) bool {
		if AttrsOf(w).ID == id && id != "" {
			found = w
			return false
		}
		return true
	})
	return found
}

// Path returns the chain from root down to target, inclusive at both ends,
// or nil when target is not in root's subtree.
func Path(root, target Widget) []Widget {
	if isNil(root) || isNil(target) {
		return nil
	}
	if root == target {
		return []Widget{root}
	}
	for _, child := range childrenOf(root) {
		if sub := Path(child, target); sub != nil {
			return append([]Widget{root}, sub...)
		}
	}
	return nil
}
