package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterPrint(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Print("Hello %s", "World")
	if got := buf.String(); got != "Hello World" {
		t.Errorf("Print = %q, want 'Hello World'", got)
	}
}

func TestWriterPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Println("Hello %s", "World")
	if got := buf.String(); got != "Hello World\n" {
		t.Errorf("Println = %q, want 'Hello World\\n'", got)
	}
}

func TestWriterErrorAndWarn(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Error("something went wrong")
	w.Warn("be careful")
	got := buf.String()
	for _, want := range []string{"error: something went wrong", "warning: be careful"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q: %q", want, got)
		}
	}
}

func TestWriterPlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Success("done")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-terminal output should not contain escape codes: %q", buf.String())
	}
	if got := buf.String(); got != "✓ done\n" {
		t.Errorf("Success = %q", got)
	}
}

func TestWriterNumberedList(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.NumberedList([]string{"first", "second"})
	want := "  1. first\n  2. second\n"
	if got := buf.String(); got != want {
		t.Errorf("NumberedList = %q, want %q", got, want)
	}
}

func TestWriterFocusOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.FocusOrder("Focus order", []FocusEntry{
		{Label: "button#b1", First: true},
		{Label: "button#b2", Initial: true},
		{Label: "button#b3", Last: true},
	})

	got := buf.String()
	for _, want := range []string{
		"Focus order",
		"1. button#b1 [first]",
		"2. button#b2 [initial]",
		"3. button#b3 [last]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FocusOrder output missing %q:\n%s", want, got)
		}
	}
}

func TestWriterFocusOrderEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.FocusOrder("Focus order", nil)
	if !strings.Contains(buf.String(), "no focusable elements") {
		t.Errorf("empty listing should say so: %q", buf.String())
	}
}

func TestWriterMarkdown(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	if err := w.Markdown("# Keys\n\n- **Tab** next"); err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Keys") || !strings.Contains(got, "Tab") {
		t.Errorf("Markdown output missing content: %q", got)
	}
}

func TestWriterBox(t *testing.T) {
	var buf bytes.Buffer
	w := NewWithOutput(&buf)

	w.Box("Trap", "3 elements")
	got := buf.String()
	if !strings.Contains(got, "Trap") || !strings.Contains(got, "3 elements") {
		t.Errorf("Box output missing content: %q", got)
	}
}

func TestGetTerminalWidth(t *testing.T) {
	if width := getTerminalWidth(); width <= 0 {
		t.Errorf("getTerminalWidth() = %d, want > 0", width)
	}
}
