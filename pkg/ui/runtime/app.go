package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/odvcencio/focustrap/pkg/ui/backend"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
	"github.com/odvcencio/focustrap/pkg/ui/theme"
)

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands emitted by widgets that neither the
// Screen nor the App consume. Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Theme          *theme.Theme
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
}

// App runs a widget tree against a terminal backend.
// The screen and its Document exist from construction so focus traps can
// be built before Run; all message handling happens on the Run goroutine.
type App struct {
	backend        backend.Backend
	screen         *Screen
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration

	running atomic.Bool
	dirty   bool
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	update := cfg.Update
	if update == nil {
		update = DefaultUpdate
	}
	a := &App{
		backend:        cfg.Backend,
		screen:         NewScreen(0, 0, cfg.Theme),
		update:         update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
	}
	if cfg.Root != nil {
		a.screen.SetRoot(cfg.Root)
	}
	return a
}

// Screen returns the app's screen.
func (a *App) Screen() *Screen {
	return a.screen
}

// Document returns the document focus traps should be attached to.
func (a *App) Document() *Document {
	return a.screen.Document()
}

// Post sends a message to the event loop. It drops the message when the
// queue is full.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
	}
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.Clear()
	a.backend.HideCursor()
	a.screen.Resize(a.backend.Size())

	a.running.Store(true)
	a.dirty = true

	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running.Load() {
		if a.dirty {
			a.render()
			a.dirty = false
		}

		select {
		case <-ctx.Done():
			a.running.Store(false)
			return ctx.Err()
		case msg := <-a.messages:
			if a.update(a, msg) {
				a.dirty = true
			}
		case now := <-ticks:
			if a.update(a, TickMsg{Time: now}) {
				a.dirty = true
			}
		}
	}

	return nil
}

// DefaultUpdate handles input messages and widget commands.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil {
		return false
	}

	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case CommandMsg:
		return app.HandleCommand(m.Command)
	case TickMsg:
		return false
	default:
		result := app.screen.HandleMessage(msg)
		dirty := result.Handled
		for _, cmd := range result.Commands {
			if app.HandleCommand(cmd) {
				dirty = true
			}
		}
		return dirty
	}
}

// HandleCommand applies cmd on the event loop goroutine and reports
// whether a render is needed.
func (a *App) HandleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		a.running.Store(false)
		return false
	case Refresh:
		a.screen.Buffer().MarkAllDirty()
		a.backend.Sync()
		return true
	case Bell:
		a.backend.Beep()
		return false
	case PushOverlay, PopOverlay:
		a.screen.handleCommand(c)
		return true
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case terminal.KeyEvent:
			a.Post(KeyMsg{
				Key:   e.Key,
				Rune:  e.Rune,
				Alt:   e.Alt,
				Ctrl:  e.Ctrl,
				Shift: e.Shift,
			})
		case terminal.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		case terminal.PasteEvent:
			a.Post(PasteMsg{Text: e.Text})
		}
	}
}

func (a *App) render() {
	a.screen.Render()
	buf := a.screen.Buffer()

	buf.ForEachDirtyCell(func(x, y int, cell Cell) {
		a.backend.SetContent(x, y, cell.Rune, nil, cell.Style)
	})
	buf.ClearDirty()
	a.backend.Show()
}
