// Package theme provides the palette widgets draw with.
// Warm amber accents on deep blacks, with a high-contrast variant for
// terminals without true color.
package theme

import "github.com/odvcencio/focustrap/pkg/ui/backend"

// Theme defines the styles used across widgets.
type Theme struct {
	Background backend.Style
	Surface    backend.Style

	TextPrimary backend.Style
	TextMuted   backend.Style

	Accent backend.Style
	Error  backend.Style

	Border      backend.Style
	BorderFocus backend.Style

	// Control is an unfocused interactive element; ControlFocus is the
	// element holding focus.
	Control      backend.Style
	ControlFocus backend.Style
	Link         backend.Style
}

// DefaultTheme returns the true-color theme.
func DefaultTheme() *Theme {
	bg := backend.ColorRGB(12, 12, 16)
	surface := backend.ColorRGB(22, 22, 28)
	amber := backend.ColorRGB(255, 183, 77)
	text := backend.ColorRGB(240, 238, 232)
	base := backend.DefaultStyle().Background(surface)

	return &Theme{
		Background:   backend.DefaultStyle().Background(bg),
		Surface:      base,
		TextPrimary:  base.Foreground(text),
		TextMuted:    base.Foreground(backend.ColorRGB(100, 98, 92)),
		Accent:       base.Foreground(amber),
		Error:        base.Foreground(backend.ColorRGB(255, 110, 90)),
		Border:       base.Foreground(backend.ColorRGB(50, 50, 60)),
		BorderFocus:  base.Foreground(amber),
		Control:      backend.DefaultStyle().Foreground(text).Background(backend.ColorRGB(32, 32, 40)),
		ControlFocus: backend.DefaultStyle().Foreground(bg).Background(amber).Bold(true),
		Link:         base.Foreground(backend.ColorRGB(79, 195, 247)).Underline(true),
	}
}

// HighContrastTheme returns a palette-only theme that relies on reverse
// video for focus, readable on 16-color and monochrome terminals.
func HighContrastTheme() *Theme {
	plain := backend.DefaultStyle()
	return &Theme{
		Background:   plain,
		Surface:      plain,
		TextPrimary:  plain.Foreground(backend.ColorWhite),
		TextMuted:    plain.Dim(true),
		Accent:       plain.Foreground(backend.ColorYellow).Bold(true),
		Error:        plain.Foreground(backend.ColorRed).Bold(true),
		Border:       plain,
		BorderFocus:  plain.Bold(true),
		Control:      plain,
		ControlFocus: plain.Reverse(true).Bold(true),
		Link:         plain.Underline(true),
	}
}

// Named returns the theme registered under name, falling back to the
// default theme for unknown names.
func Named(name string) *Theme {
	switch name {
	case "high-contrast", "mono":
		return HighContrastTheme()
	default:
		return DefaultTheme()
	}
}

// Symbols provides consistent iconography.
var Symbols = struct {
	ArrowLeft string
	Arrow     string
}{
	ArrowLeft: "‹",
	Arrow:     "›",
}
