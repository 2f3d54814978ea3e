package theme

import (
	"testing"

	"github.com/odvcencio/focustrap/pkg/ui/backend"
)

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()
	if th == nil {
		t.Fatal("DefaultTheme() returned nil")
	}
	if th.ControlFocus == th.Control {
		t.Error("focused controls must be distinguishable from unfocused ones")
	}
	if !th.ControlFocus.Has(backend.AttrBold) {
		t.Error("ControlFocus should be bold")
	}
}

func TestHighContrastTheme(t *testing.T) {
	th := HighContrastTheme()
	if !th.ControlFocus.Has(backend.AttrReverse) {
		t.Error("high-contrast focus should use reverse video")
	}
	fg, bg, _ := th.Surface.Decompose()
	if fg != backend.ColorDefault || bg != backend.ColorDefault {
		t.Errorf("high-contrast surface should use terminal defaults, got fg=%d bg=%d", fg, bg)
	}
}

func TestNamed(t *testing.T) {
	if got := Named("mono"); got.ControlFocus != HighContrastTheme().ControlFocus {
		t.Error("Named(mono) should return the high-contrast theme")
	}
	if got := Named("nope"); got.ControlFocus != DefaultTheme().ControlFocus {
		t.Error("unknown names should fall back to the default theme")
	}
}
