package focustrap

import (
	"github.com/odvcencio/focustrap/pkg/logging"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
)

// ActivationTarget selects which element Activate focuses.
type ActivationTarget int

const (
	// ActivateFirst focuses FirstFocusableElement, whatever InitialFocus is.
	ActivateFirst ActivationTarget = iota
	// ActivateInitial focuses InitialFocus.
	ActivateInitial
)

func (a ActivationTarget) String() string {
	if a == ActivateInitial {
		return "initial"
	}
	return "first"
}

// Option configures a Trap.
type Option func(*options)

type options struct {
	trigger      runtime.Widget
	initialFocus runtime.Widget
	logger       *logging.Logger
	target       ActivationTarget
}

// WithTrigger sets the element focus returns to on Deactivate.
// A nil interface means no trigger.
func WithTrigger(w runtime.Widget) Option {
	return func(o *options) { o.trigger = w }
}

// WithInitialFocus sets InitialFocus. It must be one of the region's
// focusable elements.
func WithInitialFocus(w runtime.Widget) Option {
	return func(o *options) { o.initialFocus = w }
}

// WithLogger sets the logger lifecycle and wrap events go to.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithActivationTarget chooses what Activate focuses. The default is
// ActivateFirst.
func WithActivationTarget(t ActivationTarget) Option {
	return func(o *options) { o.target = t }
}
