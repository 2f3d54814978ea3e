package runtime

// KeyEvent is a key press in flight through the Document.
// Listeners see it before the focused widget does and may suppress the
// default action, which covers both widget handling and tab navigation.
type KeyEvent struct {
	KeyMsg

	// Target is the element that had focus when the key was pressed.
	// It is nil when nothing was focused.
	Target Widget

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the event's default action.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching listeners on ancestors.
// Listeners already registered on the current node still run.
func (e *KeyEvent) StopPropagation() {
	e.stopped = true
}

// KeyListener receives key-down events for a target and its descendants.
// Listeners are registered and removed by identity, so implementations
// should be pointers.
type KeyListener interface {
	HandleKeyDown(ev *KeyEvent)
}
