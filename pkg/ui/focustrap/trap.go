// Package focustrap keeps keyboard focus inside a region of the widget tree.
//
// A Trap snapshots the interactive elements of its region when it is built.
// While it listens, Tab on the last element wraps to the first and
// Shift+Tab on the first wraps to the last; every other Tab is left to the
// document's native tab order. Deactivating returns focus to the trigger.
//
// A Trap is not safe for concurrent use. Like the Document it is attached
// to, it must only be touched from the UI event loop.
package focustrap

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	apperrors "github.com/odvcencio/focustrap/pkg/errors"
	"github.com/odvcencio/focustrap/pkg/logging"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
)

// Host is the focus and event service a Trap runs against.
// *runtime.Document implements it.
type Host interface {
	ActiveElement() runtime.Widget
	SetFocus(w runtime.Widget) bool
	AddKeyListener(target runtime.Widget, l runtime.KeyListener)
	RemoveKeyListener(target runtime.Widget, l runtime.KeyListener)
}

// Interactive reports whether el is one of the elements a trap cycles
// through: buttons, inputs, selects, text areas, links with an href, and
// anything with an explicit non-negative tab index.
func Interactive(el runtime.Element) bool {
	attrs := el.Attrs()
	switch attrs.Role {
	case runtime.RoleButton, runtime.RoleInput, runtime.RoleSelect, runtime.RoleTextArea:
		return true
	}
	if attrs.HasHref || attrs.Href != "" {
		return true
	}
	return attrs.HasTabIndex && attrs.TabIndex >= 0
}

// Trap constrains Tab navigation to a region.
type Trap struct {
	id        string
	host      Host
	region    runtime.Widget
	trigger   runtime.Widget
	focusable []runtime.Widget
	initial   runtime.Widget
	target    ActivationTarget
	logger    *logging.Logger

	listening bool
	active    bool
}

// New builds a trap over region. It queries the region's focusable
// elements once; later changes to the subtree are not seen. New does not
// move focus or attach any listener.
func New(host Host, region runtime.Widget, opts ...Option) (*Trap, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if host == nil {
		return nil, apperrors.Wrap(ErrNilHost, apperrors.ErrCodeInvalidInput, "focus host is required")
	}
	if !runtime.IsElement(region) {
		return nil, apperrors.Wrap(ErrInvalidRegion, apperrors.ErrCodeInvalidRegion, "region must be a UI element").
			WithContext("region", fmt.Sprintf("%T", region))
	}
	if o.trigger != nil && !runtime.IsElement(o.trigger) {
		return nil, apperrors.Wrap(ErrInvalidTrigger, apperrors.ErrCodeInvalidTrigger, "trigger must be a UI element").
			WithContext("trigger", fmt.Sprintf("%T", o.trigger))
	}

	focusable := runtime.Query(region, Interactive)
	if len(focusable) == 0 {
		focusable = []runtime.Widget{region}
	}

	initial := focusable[0]
	if runtime.IsElement(o.initialFocus) {
		initial = o.initialFocus
	}
	if !contains(focusable, initial) {
		return nil, apperrors.Wrap(ErrInvalidInitialFocus, apperrors.ErrCodeInvalidInitialFocus, "initial focus must be a focusable element of the region").
			WithContext("initial_focus", describe(initial)).
			WithContext("focusable", len(focusable))
	}

	return &Trap{
		id:        ulid.Make().String(),
		host:      host,
		region:    region,
		trigger:   o.trigger,
		focusable: focusable,
		initial:   initial,
		target:    o.target,
		logger:    o.logger,
	}, nil
}

func contains(ws []runtime.Widget, w runtime.Widget) bool {
	for _, candidate := range ws {
		if candidate == w {
			return true
		}
	}
	return false
}

func describe(w runtime.Widget) string {
	attrs := runtime.AttrsOf(w)
	if attrs.ID != "" {
		return attrs.Role.String() + "#" + attrs.ID
	}
	return fmt.Sprintf("%s(%T)", attrs.Role, w)
}

// ID returns the trap's unique ID.
func (t *Trap) ID() string { return t.id }

// Region returns the element focus is trapped in.
func (t *Trap) Region() runtime.Widget { return t.region }

// Trigger returns the element focused on Deactivate, or nil.
func (t *Trap) Trigger() runtime.Widget { return t.trigger }

// FocusableElements returns a copy of the snapshot taken at construction.
func (t *Trap) FocusableElements() []runtime.Widget {
	return append([]runtime.Widget(nil), t.focusable...)
}

// FirstFocusableElement returns the first focusable element.
func (t *Trap) FirstFocusableElement() runtime.Widget { return t.focusable[0] }

// LastFocusableElement returns the last focusable element.
func (t *Trap) LastFocusableElement() runtime.Widget { return t.focusable[len(t.focusable)-1] }

// InitialFocus returns the resolved initial focus element.
func (t *Trap) InitialFocus() runtime.Widget { return t.initial }

// Active reports whether the trap is between Activate and Deactivate.
func (t *Trap) Active() bool { return t.active }

// Listening reports whether the key handler is attached.
func (t *Trap) Listening() bool { return t.listening }

// HandleKeyDown wraps Tab at the region's boundaries. Tab on the last
// element focuses the first and Shift+Tab on the first focuses the last,
// suppressing the default action. Anything else passes through.
func (t *Trap) HandleKeyDown(ev *runtime.KeyEvent) {
	if ev == nil || !ev.IsTab() {
		return
	}

	active := t.host.ActiveElement()
	first, last := t.FirstFocusableElement(), t.LastFocusableElement()

	switch {
	case ev.Shift && active == first:
		t.host.SetFocus(last)
		ev.PreventDefault()
		t.wrapped("backward", last)
	case !ev.Shift && active == last:
		t.host.SetFocus(first)
		ev.PreventDefault()
		t.wrapped("forward", first)
	}
}

func (t *Trap) wrapped(direction string, to runtime.Widget) {
	metricWraps.WithLabelValues(direction).Inc()
	t.log(logging.LevelDebug, "trap.wrap", map[string]any{
		"direction": direction,
		"to":        describe(to),
	})
}

// Resume attaches the key handler to the region.
func (t *Trap) Resume() {
	t.host.AddKeyListener(t.region, t)
	t.listening = true
}

// Pause detaches the key handler from the region.
func (t *Trap) Pause() {
	t.host.RemoveKeyListener(t.region, t)
	t.listening = false
}

// Activate resumes the trap and focuses the activation target:
// FirstFocusableElement unless ActivateInitial was chosen.
func (t *Trap) Activate() {
	t.Resume()

	target := t.FirstFocusableElement()
	if t.target == ActivateInitial {
		target = t.initial
	}
	focused := t.host.SetFocus(target)

	if !t.active {
		t.active = true
		metricActiveTraps.Inc()
	}
	metricActivations.Inc()
	t.log(logging.LevelInfo, "trap.activate", map[string]any{
		"focus":     describe(target),
		"focused":   focused,
		"focusable": len(t.focusable),
		"target":    t.target.String(),
	})
}

// Deactivate pauses the trap and returns focus to the trigger, if any.
func (t *Trap) Deactivate() {
	t.Pause()

	details := map[string]any{}
	if t.trigger != nil {
		details["trigger"] = describe(t.trigger)
		details["focused"] = t.host.SetFocus(t.trigger)
	}

	if t.active {
		t.active = false
		metricActiveTraps.Dec()
	}
	metricDeactivations.Inc()
	t.log(logging.LevelInfo, "trap.deactivate", details)
}

func (t *Trap) log(level logging.Level, eventType string, details map[string]any) {
	t.logger.Log(logging.Event{
		Level:     level,
		Category:  logging.CategoryFocus,
		EventType: eventType,
		TrapID:    t.id,
		Details:   details,
	})
}
