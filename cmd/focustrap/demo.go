package main

import (
	"fmt"
	"strings"

	apperrors "github.com/odvcencio/focustrap/pkg/errors"
	"github.com/odvcencio/focustrap/pkg/logging"
	output "github.com/odvcencio/focustrap/pkg/terminal"
	"github.com/odvcencio/focustrap/pkg/ui/focustrap"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/terminal"
	"github.com/odvcencio/focustrap/pkg/ui/widgets"
)

// demo is a base screen with a button that opens a trapped share dialog.
type demo struct {
	app *runtime.App

	base   *widgets.Panel
	open   *widgets.Button
	status *widgets.Text

	dialog  *widgets.Panel
	name    *widgets.Input
	access  *widgets.Select
	note    *widgets.TextArea
	cancel  *widgets.Button
	share   *widgets.Button
	trap    *focustrap.Trap
	logger  *logging.Logger
	visible bool
}

type trapSettings struct {
	initialID    string
	focusInitial bool
}

func newDemo(logger *logging.Logger) *demo {
	d := &demo{logger: logger}

	d.open = widgets.NewButton("open", "Share…")
	d.status = widgets.NewText("Press Enter to open the dialog. Tab moves focus, q quits.")
	help := widgets.NewLink("help", "About focus traps", "https://www.w3.org/WAI/ARIA/apg/patterns/dialog-modal/")
	d.base = widgets.NewPanel(
		widgets.VStack(
			widgets.NewText("focustrap demo"),
			d.status,
			widgets.HStack(d.open, help).WithGap(2),
		).WithGap(1),
	).WithBorder().OnKey(d.baseKey)

	d.name = widgets.NewInput("name", 24)
	d.name.SetPlaceholder("recipient")
	d.access = widgets.NewSelect("access", "viewer", "commenter", "editor")
	d.note = widgets.NewTextArea("note", 24, 3)
	d.cancel = widgets.NewButton("cancel", "Cancel").OnPress(d.close)
	d.share = widgets.NewButton("share", "Share").OnPress(d.submit)

	d.dialog = widgets.NewDialog("share-dialog", "Share document",
		widgets.VStack(
			widgets.NewText("Recipient"),
			d.name,
			widgets.NewText("Access"),
			d.access,
			widgets.NewText("Note"),
			d.note,
			widgets.HStack(d.cancel, d.share).WithGap(2),
		),
	).OnKey(d.dialogKey)

	d.open.OnPress(d.show)
	return d
}

// attach builds the trap against host. The dialog does not have to be
// attached to host yet; the trap only needs it when it activates.
func (d *demo) attach(host focustrap.Host, settings trapSettings) error {
	opts := []focustrap.Option{
		focustrap.WithTrigger(d.open),
		focustrap.WithLogger(d.logger),
	}
	if settings.initialID != "" {
		w := runtime.QueryID(d.dialog, settings.initialID)
		if w == nil {
			return apperrors.New(apperrors.ErrCodeInvalidInitialFocus, "no element in the dialog has that id").
				WithContext("id", settings.initialID).
				WithRemediation("run with -list to see the dialog's element ids")
		}
		opts = append(opts, focustrap.WithInitialFocus(w))
	}
	if settings.focusInitial {
		opts = append(opts, focustrap.WithActivationTarget(focustrap.ActivateInitial))
	}

	trap, err := focustrap.New(host, d.dialog, opts...)
	if err != nil {
		return err
	}
	d.trap = trap
	return nil
}

func (d *demo) show() {
	if d.visible || d.app == nil {
		return
	}
	d.app.Screen().PushLayer(d.dialog, true)
	d.visible = true
	d.trap.Activate()
}

func (d *demo) close() {
	if !d.visible {
		return
	}
	d.trap.Deactivate()
	d.app.Screen().PopLayer()
	d.visible = false
	if d.app.Document().ActiveElement() != d.open {
		d.app.Document().SetFocus(d.open)
	}
}

func (d *demo) submit() {
	name := strings.TrimSpace(d.name.Text())
	if name == "" {
		d.app.Post(runtime.CommandMsg{Command: runtime.Bell{}})
		d.app.Document().SetFocus(d.name)
		return
	}
	_, access := d.access.Selected()
	d.status.SetText(fmt.Sprintf("Shared with %s as %s.", name, access))
	d.logger.Info(logging.CategoryUI, "demo.share", "dialog submitted", map[string]any{
		"access": access,
	})
	d.close()
}

func (d *demo) baseKey(k runtime.KeyMsg) runtime.HandleResult {
	if k.Key == terminal.KeyCtrlC || (k.Key == terminal.KeyRune && k.Rune == 'q') {
		return runtime.WithCommand(runtime.Quit{})
	}
	if k.Key == terminal.KeyCtrlL {
		return runtime.WithCommand(runtime.Refresh{})
	}
	return runtime.Unhandled()
}

func (d *demo) dialogKey(k runtime.KeyMsg) runtime.HandleResult {
	if k.Key == terminal.KeyCtrlC {
		return runtime.WithCommand(runtime.Quit{})
	}
	return runtime.Unhandled()
}

// handleCommand consumes commands bubbling out of the widget tree.
func (d *demo) handleCommand(cmd runtime.Command) bool {
	switch c := cmd.(type) {
	case runtime.Cancel:
		d.close()
		return true
	case runtime.Submit:
		if c.ID == d.name.ID() {
			d.app.Document().SetFocus(d.access)
			return true
		}
	case runtime.Press:
		if c.Href != "" {
			d.status.SetText("Link: " + c.Href)
			return true
		}
	}
	return false
}

// focusOrder describes the trap's focusable elements for printing.
func (d *demo) focusOrder() []output.FocusEntry {
	elems := d.trap.FocusableElements()
	entries := make([]output.FocusEntry, 0, len(elems))
	for _, w := range elems {
		attrs := runtime.AttrsOf(w)
		entries = append(entries, output.FocusEntry{
			Label:   attrs.Role.String() + "#" + attrs.ID,
			First:   w == d.trap.FirstFocusableElement(),
			Last:    w == d.trap.LastFocusableElement(),
			Initial: w == d.trap.InitialFocus(),
		})
	}
	return entries
}
