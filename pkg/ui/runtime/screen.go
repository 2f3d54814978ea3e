package runtime

import "github.com/odvcencio/focustrap/pkg/ui/theme"

// Layer represents a layer in the modal stack.
type Layer struct {
	Root  Widget
	Modal bool // If true, the layer is drawn with a dimmed backdrop
}

// Screen manages the layer stack, the Document spanning it, and rendering.
// Layers are in document order bottom to top, so native tab navigation
// runs through every layer; keeping focus inside a modal is what a focus
// trap is for.
type Screen struct {
	width, height int
	layers        []*Layer
	buffer        *Buffer
	theme         *theme.Theme
	doc           *Document
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.DefaultTheme()
	}
	s := &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
		theme:  th,
	}
	s.doc = NewDocument(s)
	return s
}

// Roots returns the layer roots bottom to top. It makes Screen a Tree.
func (s *Screen) Roots() []Widget {
	roots := make([]Widget, 0, len(s.layers))
	for _, layer := range s.layers {
		if layer.Root != nil {
			roots = append(roots, layer.Root)
		}
	}
	return roots
}

// Document returns the document spanning all layers.
func (s *Screen) Document() *Document {
	return s.doc
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays out every layer.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	for _, layer := range s.layers {
		s.layout(layer.Root)
	}
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Theme returns the current theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// SetTheme changes the theme.
func (s *Screen) SetTheme(th *theme.Theme) {
	if th != nil {
		s.theme = th
	}
}

// SetRoot sets the root widget of the base layer.
func (s *Screen) SetRoot(root Widget) {
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{Root: root})
	} else {
		s.layers[0].Root = root
	}
	s.layout(root)
}

// Root returns the base layer's root widget.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer adds a new layer on top of the stack.
func (s *Screen) PushLayer(root Widget, modal bool) {
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{})
	}
	s.layers = append(s.layers, &Layer{Root: root, Modal: modal})
	s.layout(root)
}

// PopLayer removes the top layer. The base layer cannot be popped.
// Focus inside the removed layer is dropped.
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}
	s.layers = s.layers[:len(s.layers)-1]
	if active := s.doc.active; active != nil && !s.doc.Contains(active) {
		s.doc.Blur()
	}
	return true
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

func (s *Screen) layout(root Widget) {
	if root == nil {
		return
	}
	bounds := Rect{0, 0, s.width, s.height}
	size := root.Measure(Loose(s.width, s.height))
	if size.Width < s.width || size.Height < s.height {
		bounds = bounds.Center(size.Width, size.Height)
	}
	root.Layout(bounds)
}

// Render draws all layers to the buffer, bottom to top.
func (s *Screen) Render() {
	s.buffer.Fill(Rect{0, 0, s.width, s.height}, ' ', s.theme.Background)

	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}
		top := i == len(s.layers)-1
		if layer.Modal && top {
			s.dim()
		}
		layer.Root.Render(RenderContext{
			Buffer:  s.buffer,
			Theme:   s.theme,
			Focused: top,
			Bounds:  Rect{0, 0, s.width, s.height},
		})
	}
}

func (s *Screen) dim() {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.buffer.Get(x, y)
			s.buffer.Set(x, y, cell.Rune, cell.Style.Dim(true))
		}
	}
}

// HandleMessage routes a message into the document. Key presses go
// through Document.DispatchKey; other messages go to the focused widget.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	var result HandleResult
	switch m := msg.(type) {
	case KeyMsg:
		result = s.doc.DispatchKey(m)
	default:
		if active := s.doc.ActiveElement(); active != nil {
			result = active.HandleMessage(msg)
		}
	}

	remaining := result.Commands[:0:0]
	for _, cmd := range result.Commands {
		if !s.handleCommand(cmd) {
			remaining = append(remaining, cmd)
		}
	}
	result.Commands = remaining
	return result
}

// handleCommand processes layer commands. Others bubble up to the App.
func (s *Screen) handleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case PushOverlay:
		s.PushLayer(c.Widget, c.Modal)
		return true
	case PopOverlay:
		s.PopLayer()
		return true
	}
	return false
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *Buffer
	Theme   *theme.Theme
	Focused bool // Is the containing layer on top?
	Bounds  Rect // Screen bounds
}
