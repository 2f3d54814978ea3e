package focustrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/focustrap/pkg/ui/backend/sim"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
	"github.com/odvcencio/focustrap/pkg/ui/widgets"
)

// TestTrapInApp drives a modal dialog through the simulation backend:
// opening it activates the trap, Tab cycles inside it, and Escape closes
// it and returns focus to the button that opened it.
func TestTrapInApp(t *testing.T) {
	be := sim.New(40, 12)

	open := widgets.NewButton("open", "Open")
	other := widgets.NewButton("other", "Other")
	cancel := widgets.NewButton("cancel", "Cancel")
	confirm := widgets.NewButton("confirm", "Confirm")
	dialog := widgets.NewDialog("confirm-dialog", "Sure?", widgets.HStack(cancel, confirm).WithGap(1))

	var app *runtime.App
	var trap *Trap

	open.OnPress(func() {
		app.Screen().PushLayer(dialog, true)
		trap.Activate()
	})

	app = runtime.NewApp(runtime.AppConfig{
		Backend: be,
		Root: widgets.NewPanel(widgets.VStack(open, other)).OnKey(func(k runtime.KeyMsg) runtime.HandleResult {
			if k.Key == terminal.KeyCtrlC {
				return runtime.WithCommand(runtime.Quit{})
			}
			return runtime.Unhandled()
		}),
		CommandHandler: func(cmd runtime.Command) bool {
			if _, ok := cmd.(runtime.Cancel); ok {
				trap.Deactivate()
				app.Screen().PopLayer()
				return true
			}
			return false
		},
	})

	var err error
	trap, err = New(app.Document(), dialog, WithTrigger(open))
	require.NoError(t, err)
	require.True(t, app.Document().SetFocus(open))

	ctx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	waitFor(t, be, "Open")
	be.InjectKey(terminal.KeyEnter, 0)
	waitFor(t, be, "Sure?")

	// cancel -> confirm -> (wrap) cancel -> (wrap back) confirm
	be.InjectTab(false)
	be.InjectTab(false)
	be.InjectTab(true)
	be.InjectTab(true)
	be.InjectKey(terminal.KeyEscape, 0)
	be.InjectKey(terminal.KeyCtrlC, 0)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("app did not exit")
	}

	assert.Same(t, open, app.Document().ActiveElement())
	assert.False(t, trap.Active())
	assert.Zero(t, app.Document().ListenerCount(dialog))
	assert.Equal(t, 1, app.Screen().LayerCount())
}

func waitFor(t *testing.T, be *sim.Backend, text string) {
	t.Helper()
	deadline := time.After(time.Second)
	for !be.ContainsText(text) {
		select {
		case <-deadline:
			t.Fatalf("%q never rendered:\n%s", text, be.Capture())
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}
