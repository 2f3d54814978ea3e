package widgets

import "github.com/odvcencio/focustrap/pkg/ui/runtime"

// Direction is the main axis of a Stack.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// StackItem wraps a child with its grow factor. Children with Grow 0 keep
// their measured size; the rest share the leftover space proportionally.
type StackItem struct {
	Widget runtime.Widget
	Grow   float64
}

// Stack lays out children along one axis. Its children are in document
// order, so they are also in native tab order.
type Stack struct {
	Base
	direction   Direction
	items       []StackItem
	gap         int
	childBounds []runtime.Rect
}

// VStack creates a vertical stack.
func VStack(children ...runtime.Widget) *Stack {
	return newStack(Vertical, children)
}

// HStack creates a horizontal stack.
func HStack(children ...runtime.Widget) *Stack {
	return newStack(Horizontal, children)
}

func newStack(dir Direction, children []runtime.Widget) *Stack {
	s := &Stack{direction: dir}
	for _, child := range children {
		s.Add(child)
	}
	return s
}

// WithGap sets the space between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(0, gap)
	return s
}

// Add appends a fixed-size child.
func (s *Stack) Add(child runtime.Widget) *Stack {
	return s.AddGrow(child, 0)
}

// AddGrow appends a child that takes a share of the leftover space.
func (s *Stack) AddGrow(child runtime.Widget, grow float64) *Stack {
	if child != nil {
		s.items = append(s.items, StackItem{Widget: child, Grow: max(0, grow)})
	}
	return s
}

// Remove detaches child from the stack. It reports whether child was found.
func (s *Stack) Remove(child runtime.Widget) bool {
	for i, item := range s.items {
		if item.Widget == child {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.bounds.Width > 0 || s.bounds.Height > 0 {
				s.Layout(s.bounds)
			}
			return true
		}
	}
	return false
}

// Children makes Stack a runtime.Container.
func (s *Stack) Children() []runtime.Widget {
	if len(s.items) == 0 {
		return nil
	}
	children := make([]runtime.Widget, len(s.items))
	for i, item := range s.items {
		children[i] = item.Widget
	}
	return children
}

func (s *Stack) gaps() int {
	if len(s.items) < 2 {
		return 0
	}
	return s.gap * (len(s.items) - 1)
}

func (s *Stack) main(size runtime.Size) int {
	if s.direction == Vertical {
		return size.Height
	}
	return size.Width
}

func (s *Stack) cross(size runtime.Size) int {
	if s.direction == Vertical {
		return size.Width
	}
	return size.Height
}

// childConstraints leaves the main axis unbounded.
func (s *Stack) childConstraints(width, height int) runtime.Constraints {
	if s.direction == Vertical {
		return runtime.Loose(width, int(^uint(0)>>1))
	}
	return runtime.Loose(int(^uint(0)>>1), height)
}

// Measure sums children along the main axis.
func (s *Stack) Measure(constraints runtime.Constraints) runtime.Size {
	if len(s.items) == 0 {
		return constraints.MinSize()
	}
	total, cross := s.gaps(), 0
	cc := s.childConstraints(constraints.MaxWidth, constraints.MaxHeight)
	for _, item := range s.items {
		size := item.Widget.Measure(cc)
		total += s.main(size)
		cross = max(cross, s.cross(size))
	}
	if s.direction == Vertical {
		return constraints.Constrain(runtime.Size{Width: cross, Height: total})
	}
	return constraints.Constrain(runtime.Size{Width: total, Height: cross})
}

// Layout positions all children within bounds.
func (s *Stack) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	s.childBounds = make([]runtime.Rect, len(s.items))
	if len(s.items) == 0 {
		return
	}

	sizes := make([]int, len(s.items))
	fixed, grow := s.gaps(), 0.0
	cc := s.childConstraints(bounds.Width, bounds.Height)
	for i, item := range s.items {
		sizes[i] = s.main(item.Widget.Measure(cc))
		if item.Grow == 0 {
			fixed += sizes[i]
		}
		grow += item.Grow
	}

	available := max(0, s.main(runtime.Size{Width: bounds.Width, Height: bounds.Height})-fixed)
	offset := 0
	for i, item := range s.items {
		size := sizes[i]
		if item.Grow > 0 && grow > 0 {
			size = int(float64(available) * item.Grow / grow)
		}

		var r runtime.Rect
		if s.direction == Vertical {
			r = runtime.Rect{X: bounds.X, Y: bounds.Y + offset, Width: bounds.Width, Height: size}
		} else {
			r = runtime.Rect{X: bounds.X + offset, Y: bounds.Y, Width: size, Height: bounds.Height}
		}
		s.childBounds[i] = r.Intersection(bounds)
		item.Widget.Layout(s.childBounds[i])
		offset += size + s.gap
	}
}

// Render draws all children.
func (s *Stack) Render(ctx runtime.RenderContext) {
	for _, item := range s.items {
		item.Widget.Render(ctx)
	}
}
