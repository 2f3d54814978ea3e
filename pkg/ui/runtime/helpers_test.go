package runtime

import "github.com/odvcencio/focustrap/pkg/ui/backend"

// node is a configurable element used across runtime tests.
type node struct {
	attrs     Attrs
	children  []Widget
	focusable bool
	disabled  bool
	focused   bool
	size      Size
	bounds    Rect
	messages  []Message
	onMessage func(Message) HandleResult
}

// el returns a non-focusable element with children.
func el(id string, children ...Widget) *node {
	return &node{attrs: Attrs{ID: id}, children: children}
}

// ctl returns a focusable control.
func ctl(id string) *node {
	return &node{attrs: Attrs{ID: id, Role: RoleButton}, focusable: true, size: Size{Width: len(id), Height: 1}}
}

func (n *node) tabIndex(i int) *node {
	n.attrs.TabIndex = i
	n.attrs.HasTabIndex = true
	return n
}

func (n *node) Measure(c Constraints) Size { return c.Constrain(n.size) }

// Layout gives each child its own row below the node.
func (n *node) Layout(bounds Rect) {
	n.bounds = bounds
	for i, child := range n.children {
		child.Layout(Rect{X: bounds.X, Y: bounds.Y + 1 + i, Width: bounds.Width, Height: 1})
	}
}

func (n *node) Render(ctx RenderContext) {
	if n.attrs.ID != "" {
		ctx.Buffer.SetString(n.bounds.X, n.bounds.Y, n.attrs.ID, backend.DefaultStyle())
	}
	for _, child := range n.children {
		child.Render(ctx)
	}
}

func (n *node) HandleMessage(msg Message) HandleResult {
	n.messages = append(n.messages, msg)
	if n.onMessage != nil {
		return n.onMessage(msg)
	}
	return Unhandled()
}

func (n *node) Attrs() Attrs           { return n.attrs }
func (n *node) Children() []Widget     { return n.children }
func (n *node) CanFocus() bool         { return n.focusable && !n.disabled }
func (n *node) Focus()                 { n.focused = true }
func (n *node) Blur()                  { n.focused = false }
func (n *node) IsFocused() bool        { return n.focused }
func (n *node) add(children ...Widget) { n.children = append(n.children, children...) }

// bare is a widget that is not an Element.
type bare struct{}

func (*bare) Measure(c Constraints) Size         { return c.MinSize() }
func (*bare) Layout(Rect)                        {}
func (*bare) Render(RenderContext)               {}
func (*bare) HandleMessage(Message) HandleResult { return Unhandled() }

func docOver(roots ...Widget) *Document {
	return NewDocument(TreeFunc(func() []Widget { return roots }))
}

func ids(ws []Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = AttrsOf(w).ID
	}
	return out
}

type recorder struct {
	name string
	log  *[]string
	fn   func(*KeyEvent)
}

func (r *recorder) HandleKeyDown(ev *KeyEvent) {
	*r.log = append(*r.log, r.name)
	if r.fn != nil {
		r.fn(ev)
	}
}
