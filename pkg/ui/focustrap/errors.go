package focustrap

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every construction error.
var ErrInvalidArgument = errors.New("focustrap: invalid argument")

var (
	// ErrInvalidRegion: the region is not a usable element.
	ErrInvalidRegion = fmt.Errorf("%w: invalid region", ErrInvalidArgument)
	// ErrInvalidTrigger: a trigger was supplied but is not a usable element.
	ErrInvalidTrigger = fmt.Errorf("%w: invalid trigger", ErrInvalidArgument)
	// ErrInvalidInitialFocus: the initial focus is not one of the region's
	// focusable elements.
	ErrInvalidInitialFocus = fmt.Errorf("%w: invalid initial focus", ErrInvalidArgument)
	// ErrNilHost: no focus host was supplied.
	ErrNilHost = fmt.Errorf("%w: nil host", ErrInvalidArgument)
)
