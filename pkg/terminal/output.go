// Package terminal prints styled, non-interactive output for the focustrap
// command: diagnostics, focus order listings and the key reference.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Writer provides styled terminal output with markdown rendering.
type Writer struct {
	out      io.Writer
	renderer *glamour.TermRenderer
	mu       sync.Mutex

	errorStyle   lipgloss.Style
	warnStyle    lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	boldStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	markerStyle  lipgloss.Style
}

// FocusEntry is one row of a focus order listing.
type FocusEntry struct {
	Label   string
	First   bool
	Last    bool
	Initial bool
}

// New creates a new terminal Writer with the default output (stdout).
func New() *Writer {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput creates a terminal Writer with a custom output destination.
// Colors are dropped when out is not a terminal or NO_COLOR is set.
func NewWithOutput(out io.Writer) *Writer {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(getTerminalWidth(), 100)),
	)

	r := lipgloss.NewRenderer(out, termenv.WithColorCache(true))
	if _, nocolor := os.LookupEnv("NO_COLOR"); nocolor || !isTerminal(out) {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Writer{
		out:      out,
		renderer: renderer,

		errorStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D00000", Dark: "#FF5555"}).
			Bold(true),
		warnStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFAA00"}),
		successStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"}),
		infoStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}),
		dimStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
		boldStyle: r.NewStyle().Bold(true),
		headerStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}),
		markerStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFB74D"}).
			Bold(true),
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Print writes text to the terminal.
func (w *Writer) Print(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format, args...)
}

// Println writes text with a newline.
func (w *Writer) Println(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Markdown renders markdown to the terminal.
func (w *Writer) Markdown(md string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.renderer == nil {
		fmt.Fprintln(w.out, md)
		return nil
	}

	rendered, err := w.renderer.Render(md)
	if err != nil {
		fmt.Fprintln(w.out, md)
		return err
	}

	fmt.Fprint(w.out, rendered)
	return nil
}

// Error prints an error message in red.
func (w *Writer) Error(format string, args ...any) {
	w.line(w.errorStyle, "error: "+fmt.Sprintf(format, args...))
}

// Warn prints a warning message in yellow.
func (w *Writer) Warn(format string, args ...any) {
	w.line(w.warnStyle, "warning: "+fmt.Sprintf(format, args...))
}

// Success prints a success message in green.
func (w *Writer) Success(format string, args ...any) {
	w.line(w.successStyle, "✓ "+fmt.Sprintf(format, args...))
}

// Info prints an info message in blue.
func (w *Writer) Info(format string, args ...any) {
	w.line(w.infoStyle, fmt.Sprintf(format, args...))
}

// Dim prints dimmed/secondary text.
func (w *Writer) Dim(format string, args ...any) {
	w.line(w.dimStyle, fmt.Sprintf(format, args...))
}

// Header prints a section header.
func (w *Writer) Header(title string) {
	w.line(w.headerStyle, title)
}

func (w *Writer) line(style lipgloss.Style, s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, style.Render(s))
}

// Newline prints a blank line.
func (w *Writer) Newline() {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out)
}

// Divider prints a horizontal divider.
func (w *Writer) Divider() {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, w.dimStyle.Render(strings.Repeat("─", min(getTerminalWidth(), 60))))
}

// NumberedList prints a numbered list.
func (w *Writer) NumberedList(items []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, item := range items {
		fmt.Fprintf(w.out, "  %d. %s\n", i+1, item)
	}
}

// FocusOrder prints the elements a focus trap cycles through, marking the
// wrap boundaries and the initial focus.
func (w *Writer) FocusOrder(title string, entries []FocusEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	fmt.Fprintln(w.out, w.headerStyle.Render(title))
	if len(entries) == 0 {
		fmt.Fprintln(w.out, w.dimStyle.Render("  (no focusable elements)"))
		return
	}

	width := len(fmt.Sprint(len(entries)))
	for i, entry := range entries {
		var marks []string
		if entry.First {
			marks = append(marks, "first")
		}
		if entry.Last {
			marks = append(marks, "last")
		}
		if entry.Initial {
			marks = append(marks, "initial")
		}
		line := fmt.Sprintf("  %*d. %s", width, i+1, entry.Label)
		if len(marks) > 0 {
			line += " " + w.markerStyle.Render("["+strings.Join(marks, ", ")+"]")
		}
		fmt.Fprintln(w.out, line)
	}
}

// Box renders content in a styled box.
func (w *Writer) Box(title, content string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	boxWidth := min(getTerminalWidth()-4, 80)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}).
		Padding(0, 1).
		Width(boxWidth)

	output := content
	if title != "" {
		output = w.boldStyle.Render(title) + "\n\n" + content
	}

	fmt.Fprintln(w.out, boxStyle.Render(output))
}

// getTerminalWidth returns the terminal width, defaulting to 80.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width == 0 {
		return 80
	}
	return width
}
