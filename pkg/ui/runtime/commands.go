package runtime

// Command represents an action/intent emitted by widgets.
// Commands bubble up from widgets to the screen and then the app.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a full screen redraw.
type Refresh struct{}

func (Refresh) isCommand() {}

// Bell rings the terminal bell.
type Bell struct{}

func (Bell) isCommand() {}

// Submit indicates text was submitted from an input widget.
type Submit struct {
	ID   string
	Text string
}

func (Submit) isCommand() {}

// Cancel indicates the user dismissed something, usually with Escape.
type Cancel struct{}

func (Cancel) isCommand() {}

// Press indicates a button or link was activated.
type Press struct {
	ID   string
	Href string
}

func (Press) isCommand() {}

// PushOverlay requests a layer be pushed on top of the stack.
type PushOverlay struct {
	Widget Widget
	Modal  bool
}

func (PushOverlay) isCommand() {}

// PopOverlay requests the top overlay be dismissed.
type PopOverlay struct{}

func (PopOverlay) isCommand() {}
