// Command focustrap runs a terminal demo of a modal dialog whose keyboard
// focus is trapped, and can print the dialog's computed focus order.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	goruntime "runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/focustrap/pkg/config"
	apperrors "github.com/odvcencio/focustrap/pkg/errors"
	"github.com/odvcencio/focustrap/pkg/logging"
	output "github.com/odvcencio/focustrap/pkg/terminal"
	"github.com/odvcencio/focustrap/pkg/ui/backend"
	tcellbackend "github.com/odvcencio/focustrap/pkg/ui/backend/tcell"
	"github.com/odvcencio/focustrap/pkg/ui/runtime"
	"github.com/odvcencio/focustrap/pkg/ui/theme"
)

// Version information - set via ldflags during build
var (
	version   = "0.1.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type cliOptions struct {
	configPath   string
	list         bool
	keys         bool
	showVersion  bool
	initialID    string
	focusInitial bool
	metricsAddr  string
	logDir       string

	// set records which flags were given explicitly so they only
	// override config values when present.
	set map[string]bool
}

// newBackend is swapped out by tests.
var newBackend = func() (backend.Backend, error) {
	return tcellbackend.New()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{set: map[string]bool{}}
	fs := flag.NewFlagSet("focustrap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&opts.list, "list", false, "print the dialog's focus order and exit")
	fs.BoolVar(&opts.keys, "keys", false, "print the key reference and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	fs.StringVar(&opts.initialID, "initial", "", "element `id` to use as the trap's initial focus")
	fs.BoolVar(&opts.focusInitial, "focus-initial", false, "focus the initial focus element on activation instead of the first")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on `addr` while running")
	fs.StringVar(&opts.logDir, "log-dir", "", "directory for JSONL event logs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

func loadConfig(opts *cliOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.set["initial"] {
		cfg.Trap.InitialFocus = opts.initialID
	}
	if opts.set["focus-initial"] {
		cfg.Trap.FocusInitialOnActivate = opts.focusInitial
	}
	if opts.set["metrics-addr"] {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if opts.set["log-dir"] {
		cfg.Logging.Dir = opts.logDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	out := output.NewWithOutput(stdout)
	errOut := output.NewWithOutput(stderr)

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		errOut.Error("%v", err)
		return exitUsage
	}

	if opts.showVersion {
		printVersion(out)
		return exitOK
	}
	if opts.keys {
		if err := out.Markdown(keyReference); err != nil {
			errOut.Error("%v", err)
			return exitError
		}
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		reportError(errOut, err)
		return exitError
	}

	settings := trapSettings{
		initialID:    cfg.Trap.InitialFocus,
		focusInitial: cfg.Trap.FocusInitialOnActivate,
	}

	if opts.list {
		d := newDemo(nil)
		doc := runtime.NewDocument(runtime.TreeFunc(func() []runtime.Widget {
			return []runtime.Widget{d.dialog}
		}))
		if err := d.attach(doc, settings); err != nil {
			reportError(errOut, err)
			return exitError
		}
		out.FocusOrder("Focus order: "+d.dialog.ID(), d.focusOrder())
		return exitOK
	}

	logger := openLogger(cfg, errOut)
	defer logger.Close()

	if err := runDemo(ctx, cfg, settings, logger); err != nil {
		reportError(errOut, err)
		return exitError
	}
	return exitOK
}

func openLogger(cfg *config.Config, errOut *output.Writer) *logging.Logger {
	dir := cfg.LogDir()
	if dir == "" {
		return nil
	}
	logger, err := logging.NewLogger(dir, logging.NewSessionID())
	if err != nil {
		errOut.Warn("event logging disabled: %v", err)
		return nil
	}
	if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetMinLevel(level)
	}
	return logger
}

func runDemo(ctx context.Context, cfg *config.Config, settings trapSettings, logger *logging.Logger) error {
	be, err := newBackend()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "opening terminal")
	}

	var ln net.Listener
	if cfg.Metrics.Addr != "" {
		ln, err = net.Listen("tcp", cfg.Metrics.Addr)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "listening for metrics").
				WithContext("addr", cfg.Metrics.Addr)
		}
	}

	d, err := newDemoApp(be, cfg, settings, logger)
	if err != nil {
		if ln != nil {
			ln.Close()
		}
		return err
	}
	app := d.app

	logger.Info(logging.CategoryLifecycle, "app.start", "demo started", map[string]any{
		"theme":   cfg.ThemeName(),
		"trap_id": d.trap.ID(),
	})

	g, gctx := errgroup.WithContext(ctx)
	uiCtx, stopUI := context.WithCancel(gctx)
	defer stopUI()

	g.Go(func() error {
		defer stopUI()
		err := app.Run(uiCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	if ln != nil {
		g.Go(func() error {
			return serveMetrics(uiCtx, ln, logger)
		})
	}

	err = g.Wait()
	logger.Info(logging.CategoryLifecycle, "app.stop", "demo stopped", nil)
	return err
}

// newDemoApp wires the demo into an App on be with focus on the open button.
func newDemoApp(be backend.Backend, cfg *config.Config, settings trapSettings, logger *logging.Logger) (*demo, error) {
	d := newDemo(logger)
	d.app = runtime.NewApp(runtime.AppConfig{
		Backend:        be,
		Root:           d.base,
		Theme:          theme.Named(cfg.ThemeName()),
		CommandHandler: d.handleCommand,
	})
	if err := d.attach(d.app.Document(), settings); err != nil {
		return nil, err
	}
	d.app.Document().SetFocus(d.open)
	return d, nil
}

func reportError(w *output.Writer, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		w.Error("%v", err)
		return
	}
	if appErr.UserMessage != "" {
		w.Error("%s", appErr.UserMessage)
	} else {
		w.Error("%v", appErr)
	}
	for _, tip := range appErr.Remediation {
		w.Dim("  hint: %s", tip)
	}
}

func printVersion(w *output.Writer) {
	w.Println("focustrap %s", version)
	if commit != "unknown" {
		w.Println("  Commit:     %s", commit)
	}
	if buildDate != "unknown" {
		w.Println("  Built:      %s", buildDate)
	}
	w.Println("  Go version: %s", goruntime.Version())
}

const keyReference = `# focustrap keys

| Key | Action |
| --- | --- |
| Tab | next element; wraps from the last element of an open dialog to the first |
| Shift+Tab | previous element; wraps from the first element to the last |
| Enter / Space | press the focused button |
| Up / Down | change the selected option |
| Esc | close the dialog and return focus to the button that opened it |
| Ctrl+L | redraw the screen |
| q / Ctrl+C | quit |
`
