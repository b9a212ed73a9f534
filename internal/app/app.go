// Package app wires configuration, logging and the run modes of pilegame
// together: the console exploration, the --verify self-check and the --tui
// dashboard.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/pilegame/internal/config"
	"github.com/agbru/pilegame/internal/logging"
	"github.com/agbru/pilegame/internal/tui"
	"github.com/agbru/pilegame/internal/ui"
)

// Application represents the pilegame application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the zerolog logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "pilegame"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.logger == nil {
		level := logging.ParseLevel(cfg.LogLevel)
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		app.logger = logging.NewLogger(errWriter, "pilegame").WithLevel(level)
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return 0
	}

	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.Verify:
		return a.runVerify(ctx, out)
	case a.Config.TUI:
		return tui.Run(ctx, a.Config, Version)
	default:
		return a.runExplore(ctx, out)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
