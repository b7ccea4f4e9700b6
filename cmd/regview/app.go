// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/regview/regview/internal/classify"
	"github.com/regview/regview/internal/config"
	"github.com/regview/regview/internal/descriptor"
	"github.com/regview/regview/internal/issue"
	"github.com/regview/regview/internal/keymap"
	"github.com/regview/regview/internal/register"
	"github.com/regview/regview/internal/session"
	"github.com/regview/regview/internal/storefile"
	"github.com/regview/regview/internal/tui"
	"github.com/regview/regview/pkg/types"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App and reads the
	// configuration, store and registry through it.
	App struct {
		Config      ConfigProvider
		Stores      StoreLoader
		Registry    *descriptor.Registry
		Classifier  *classify.Classifier
		Interactive func() bool
		stdout      io.Writer
		stderr      io.Writer
		stdin       io.Reader

		flags rootFlags
		cfg   *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config      ConfigProvider
		Stores      StoreLoader
		Registry    *descriptor.Registry
		Classifier  *classify.Classifier
		Interactive func() bool
		Stdout      io.Writer
		Stderr      io.Writer
		Stdin       io.Reader
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Source(opts config.LoadOptions) (string, error)
	}

	// StoreLoader opens the entry store snapshot at path.
	StoreLoader func(path types.FilesystemPath) (register.Store, error)

	// rootFlags holds the persistent flags of one invocation.
	rootFlags struct {
		configPath string
		storePath  string
		mode       string
		verbose    bool
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stores == nil {
		deps.Stores = loadStoreFile
	}
	if deps.Registry == nil {
		deps.Registry = descriptor.Builtin()
	}
	if deps.Classifier == nil {
		deps.Classifier = classify.Default()
	}
	if deps.Interactive == nil {
		deps.Interactive = tui.IsInteractive
	}

	return &App{
		Config:      deps.Config,
		Stores:      deps.Stores,
		Registry:    deps.Registry,
		Classifier:  deps.Classifier,
		Interactive: deps.Interactive,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		stdin:       deps.Stdin,
	}, nil
}

func loadStoreFile(path types.FilesystemPath) (register.Store, error) {
	return storefile.Load(path)
}

// loadOptions returns the provider options selected by --config.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.flags.configPath)}
}

// loadConfig reads the configuration for this invocation. A broken config is
// reported as a warning and the defaults apply.
func (a *App) loadConfig(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.flags.verbose))
		cfg = config.DefaultConfig()
	}
	if !a.flags.verbose {
		a.flags.verbose = cfg.UI.Verbose
	}
	a.cfg = cfg
}

// config returns the loaded configuration, or the defaults before loading.
func (a *App) config() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

// initLogging routes slog through a charmbracelet logger on stderr.
func (a *App) initLogging() {
	level := log.WarnLevel
	if a.flags.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
	slog.SetDefault(slog.New(logger))
}

// loadStore opens the store named by --store, else by the configuration. With
// neither set the store is empty.
func (a *App) loadStore() (register.Store, error) {
	path := a.storePath()
	if path == "" {
		slog.Debug("no entry store configured; starting empty")
		return register.NewMemStore(), nil
	}

	store, err := a.Stores(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load entry store").
			WithResource(path.String()).
			WithSuggestion("Check that the file exists and ends in .cue or .toml").
			WithSuggestion("Each entry key must be a single character").
			WithIssue(issue.StoreLoadFailedId).
			Wrap(err).
			BuildError()
	}
	return store, nil
}

// storePath returns the snapshot named by --store or the configuration.
func (a *App) storePath() types.FilesystemPath {
	if a.flags.storePath != "" {
		return types.FilesystemPath(a.flags.storePath)
	}
	return a.config().Store.Path
}

// sessionOptions derives the session options from the configuration and the
// --mode flag.
func (a *App) sessionOptions() (session.Options, error) {
	cfg := a.config()

	mode := session.PreviewMode(cfg.Preview.Mode)
	if a.flags.mode != "" {
		mode = session.PreviewMode(a.flags.mode)
	}
	if err := mode.Validate(); err != nil {
		return session.Options{}, err
	}

	keys := make([]register.Key, 0, len(cfg.Preview.DefaultKeys))
	for _, k := range cfg.Preview.DefaultKeys {
		key, err := register.ParseKey(string(k))
		if err != nil {
			return session.Options{}, err
		}
		keys = append(keys, key)
	}

	return session.Options{
		Mode:        mode,
		DefaultKeys: keys,
		Width:       int(cfg.Pane.Width),
	}, nil
}

// keymap builds the key bindings from the configuration.
func (a *App) keymap() (keymap.Keymap, error) {
	return keymap.New(a.config().Keys.Bindings())
}

// hostOptions derives the terminal picker options from the configuration.
func (a *App) hostOptions(km keymap.Keymap) (tui.HostOptions, error) {
	cfg := a.config()

	border, err := tui.ParseBorderStyle(string(cfg.Pane.Border))
	if err != nil {
		return tui.HostOptions{}, err
	}
	position, err := tui.ParsePanePosition(string(cfg.Pane.Position))
	if err != nil {
		return tui.HostOptions{}, err
	}

	opts := tui.DefaultHostOptions()
	opts.Config.Theme = tui.Theme(cfg.UI.Theme)
	opts.Config.Width = cfg.Pane.Width
	opts.Config.Output = a.stderr
	opts.Config.Input = a.stdin
	opts.Keymap = km
	opts.Border = border
	opts.MaxHeight = cfg.Pane.MaxHeight
	opts.Position = position
	opts.RefreshInterval = time.Duration(cfg.Preview.RefreshIntervalMs) * time.Millisecond
	return opts, nil
}

// issueStyle picks the glamour style for catalog guides written to stderr.
func (a *App) issueStyle() string {
	if f, ok := a.stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "dark"
	}
	return "notty"
}
