// Package cli builds the ebrowse command line and runs the browser.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"ebrowse/internal/config"
	"ebrowse/internal/domain"
	"ebrowse/internal/index"
	"ebrowse/internal/logger"
	"ebrowse/internal/logic"
	"ebrowse/internal/ui"
	"ebrowse/internal/vardb"
)

// Exit codes returned by the ebrowse binary.
const (
	ExitSuccess       = 0 // Browsed and quit, or printed the version
	ExitGeneralError  = 1 // Runtime failure, logged before exiting
	ExitUsageError    = 2 // Invalid command line usage
	ExitNotFoundError = 5 // Package database not found
)

var log = logger.New("ebrowse.cli")

// ExitError carries the exit code for a failure out of the command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// RunFunc runs the interactive browser over a package source.
type RunFunc func(ctx context.Context, source logic.PackageSource) error

// CLI is the ebrowse command.
type CLI struct {
	cmd         *cli.Command
	cfg         *config.Config
	showVersion bool
	ncurses     bool

	// replaced in tests
	browse     RunFunc
	isTerminal func() bool
}

// New creates the ebrowse command with its default configuration.
func New() *CLI {
	app := &CLI{
		cfg: config.DefaultConfig(),
		browse: func(ctx context.Context, source logic.PackageSource) error {
			return ui.Run(ctx, source)
		},
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}

	app.cmd = &cli.Command{
		Name:        config.Name,
		Usage:       "browse the installed package database",
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "print the version and exit",
				Destination: &app.showVersion,
			},
			&cli.StringFlag{
				Name:        "logfile",
				Aliases:     []string{"l"},
				Usage:       "append log messages to `FILE`",
				Destination: &app.cfg.LogFile,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Aliases:     []string{"d"},
				Usage:       "log debug messages (only with --logfile)",
				Destination: &app.cfg.Debug,
			},
			&cli.BoolFlag{
				Name:        "ncurses",
				Aliases:     []string{"n"},
				Usage:       "use the full screen terminal interface",
				Value:       true,
				Destination: &app.ncurses,
			},
			&cli.StringFlag{
				Name:        "root",
				Aliases:     []string{"r"},
				Usage:       "read the package database below `DIR`",
				Value:       app.cfg.Root,
				Destination: &app.cfg.Root,
			},
			&cli.StringFlag{
				Name:        "index",
				Aliases:     []string{"i"},
				Usage:       "read packages from the TOML index `FILE` instead of the package database",
				Destination: &app.cfg.IndexPath,
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return NewExitError(ExitUsageError, err.Error(), err)
		},
		Action: app.action,
	}

	return app
}

// SetOutput redirects the command's regular and error output.
func (app *CLI) SetOutput(stdout, stderr io.Writer) {
	app.cmd.Writer = stdout
	app.cmd.ErrWriter = stderr
}

// Config returns the configuration the flags resolve into.
func (app *CLI) Config() *config.Config {
	return app.cfg
}

// Run executes the command with args, os.Args style.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.cmd.Run(ctx, args)
}

func (app *CLI) action(ctx context.Context, cmd *cli.Command) error {
	if app.showVersion {
		_, err := fmt.Fprintln(cmd.Root().Writer, config.Banner())
		return err
	}

	if cmd.Args().Present() {
		return NewExitError(ExitUsageError, fmt.Sprintf("unexpected argument %q", cmd.Args().First()), nil)
	}

	if app.ncurses {
		app.cfg.Interface = config.InterfaceCurses
	} else {
		app.cfg.Interface = ""
	}
	if err := app.cfg.Validate(); err != nil {
		return NewExitError(ExitUsageError, err.Error(), nil)
	}

	closeLog, err := app.setupLogging()
	if err != nil {
		return NewExitError(ExitGeneralError, "failed to open log file", err)
	}
	defer func() { _ = closeLog() }()

	log.Info("%s starting", config.Banner())
	log.Debug("options: %+v", *app.cfg)

	if !app.isTerminal() {
		return NewExitError(ExitUsageError, "ebrowse needs an interactive terminal", nil)
	}

	source, err := app.openSource()
	if err != nil {
		log.Error("%v", err)
		if errors.Is(err, domain.ErrNoDatabase) {
			return NewExitError(ExitNotFoundError, "package database not found", err)
		}
		return NewExitError(ExitGeneralError, "failed to open package source", err)
	}

	if err := app.browse(ctx, source); err != nil {
		log.Error("%v", err)
		return NewExitError(ExitGeneralError, "browser stopped", err)
	}

	log.Info("exiting")
	return nil
}

// setupLogging sends log output to the configured file. Without one,
// logging stays disabled.
func (app *CLI) setupLogging() (func() error, error) {
	if app.cfg.LogFile == "" {
		return func() error { return nil }, nil
	}
	lvl := logger.LevelInfo
	if app.cfg.Debug {
		lvl = logger.LevelDebug
	}
	return logger.OpenFile(app.cfg.LogFile, lvl)
}

// openSource picks the package source the configuration names.
func (app *CLI) openSource() (logic.PackageSource, error) {
	if app.cfg.UseIndex() {
		log.Info("reading package index %s", app.cfg.IndexPath)
		return index.Load(app.cfg.IndexPath)
	}
	log.Info("reading package database below %s", app.cfg.Root)
	return vardb.Open(app.cfg.Root)
}
