// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"

	"github.com/idevctl/idevctl/internal/classify"
	"github.com/idevctl/idevctl/internal/config"
	"github.com/idevctl/idevctl/internal/dispatch"
	"github.com/idevctl/idevctl/internal/groups/version"
	"github.com/idevctl/idevctl/internal/lazygroup"
	"github.com/idevctl/idevctl/internal/logging"
	"github.com/idevctl/idevctl/internal/registry"
	"github.com/idevctl/idevctl/pkg/devicegroup"
)

type (
	// App wires the CLI's collaborators. One App serves one process; every
	// Run builds its own cobra root.
	App struct {
		Registry   *registry.Registry
		Config     config.Provider
		Classifier *classify.Classifier

		providers map[string]*lazygroup.Provider
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies are the App's injectable collaborators. Zero fields get
	// production defaults.
	Dependencies struct {
		Registry   *registry.Registry
		Loader     devicegroup.Loader
		Config     config.Provider
		Classifier *classify.Classifier
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// globalFlags are the root flags needed before the first attempt runs.
	globalFlags struct {
		verbose    bool
		configPath string
	}
)

// NewApp creates an App, filling unset dependencies with defaults.
func NewApp(deps Dependencies) *App {
	if deps.Registry == nil {
		deps.Registry = registry.Default()
	}
	if deps.Loader == nil {
		deps.Loader = devicegroup.DefaultCatalog()
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Classifier == nil {
		deps.Classifier = classify.Default()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Registry:   deps.Registry,
		Config:     deps.Config,
		Classifier: deps.Classifier,
		providers:  lazygroup.NewAll(deps.Registry.Enumerate(), deps.Loader),
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
}

// Run dispatches args (program name excluded) and returns the outcome.
// Configuration and logging are set up once per Run; the dispatcher then
// executes args and at most one tunneld retry.
func (a *App) Run(ctx context.Context, args []string) dispatch.Outcome {
	gf := parseGlobalFlags(args)

	cfg, cfgErr := config.LoadOrDefault(ctx, a.Config, config.LoadOptions{ConfigFilePath: gf.configPath})
	verbose := gf.verbose || cfg.UI.Verbose

	logger := a.newLogger(cfg.Log, verbose)
	logging.Install(logger)

	if cfgErr != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: failed to load config, using defaults: ")+formatErrorForDisplay(cfgErr, verbose))
	}

	maxRetries := dispatch.DefaultMaxRetries
	if !cfg.Retry.Enabled {
		maxRetries = 0
	}

	d := dispatch.New(a.attempt, a.Classifier,
		newReporter(a.stderr, logger, verbose, cfg.UI.ColorScheme.GlamourStyle()),
		dispatch.WithMaxRetries(maxRetries),
		dispatch.WithLogger(slog.New(logger)),
	)
	return d.Dispatch(ctx, args)
}

// Execute dispatches args and converts a non-zero outcome into an
// *ExitError.
func (a *App) Execute(ctx context.Context, args []string) error {
	out := a.Run(ctx, args)
	if out.ExitCode.IsSuccess() {
		return nil
	}
	return &ExitError{Code: out.ExitCode, Err: out.Err}
}

// attempt runs argv once against a fresh command tree. fang's own error
// rendering is disabled; the dispatcher's reporter owns all failure output.
func (a *App) attempt(ctx context.Context, argv []string) error {
	root := a.newRootCommand()
	root.SetArgs(argv)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	return fang.Execute(ctx, root,
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(io.Writer, fang.Styles, error) {}),
	)
}

func (a *App) newLogger(cfg config.LogConfig, verbose bool) *log.Logger {
	logger, err := logging.New(a.stderr, cfg, verbose)
	if err != nil {
		logger, _ = logging.New(a.stderr, config.DefaultConfig().Log, verbose)
		logger.Warn("invalid logging configuration, using defaults", "error", err)
	}
	return logger
}
