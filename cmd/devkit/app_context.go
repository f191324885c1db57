package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/clipboard"
	"github.com/alexisbeaulieu97/devkit/internal/config"
	"github.com/alexisbeaulieu97/devkit/internal/logging"
	"github.com/alexisbeaulieu97/devkit/internal/ports"
	"github.com/alexisbeaulieu97/devkit/internal/snippet"
	"github.com/alexisbeaulieu97/devkit/internal/storage"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Logger    ports.Logger
	Clipboard ports.Clipboard

	store    ports.KVStore
	snippets *snippet.Manager
	logFile  *os.File
}

// newClipboard builds the clipboard used by commands. Tests swap it for an
// in-memory fake.
var newClipboard = func(logger ports.Logger, disableOSC52 bool) ports.Clipboard {
	return clipboard.New(logger, disableOSC52)
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	path, err := config.ResolvePath(flags.configPath)
	if err != nil {
		return newCommandError("load configuration", "resolving the config path", err, "Ensure your HOME directory is set correctly or pass --config.")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return newCommandError("load configuration", fmt.Sprintf("reading %s", path), err, "Fix the configuration file or point --config at a valid one.")
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}

	logger, err := logging.New(logging.Options{
		Writer:    cmd.ErrOrStderr(),
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Component: "cli",
	})
	if err != nil {
		return newCommandError("configure logging", "building the logger", err, "Use --log-format text or json.")
	}

	a.Config = cfg
	a.Logger = logger
	a.Clipboard = newClipboard(logger, cfg.Clipboard.DisableOSC52)
	return nil
}

// CommandContext returns a context carrying a fresh correlation ID together
// with a logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logging.Discard
	}
	return ctx, logger.With("component", component)
}

// Snippets opens the configured store on first use and loads the library.
func (a *AppContext) Snippets(ctx context.Context) (*snippet.Manager, error) {
	if a.snippets != nil {
		return a.snippets, nil
	}

	store, err := storage.Open(a.Config.Storage)
	if err != nil {
		return nil, newCommandError("open snippet storage", fmt.Sprintf("opening the %s backend", a.Config.Storage.Backend), err, "Check storage.path in your configuration and its file permissions.")
	}

	mgr := snippet.NewManager(store,
		snippet.WithKey(a.Config.Storage.Key),
		snippet.WithLogger(a.Logger.With("component", "snippet")),
	)
	if err := mgr.Load(ctx); err != nil {
		_ = store.Close()
		return nil, newCommandError("load snippets", "reading the snippet library", err, "Check that the storage backend is readable.")
	}

	a.store = store
	a.snippets = mgr
	return mgr, nil
}

// dashboardLogger returns the logger used while the dashboard owns the
// terminal: the configured log file, or nothing at all.
func (a *AppContext) dashboardLogger() (ports.Logger, error) {
	if a.Config == nil || strings.TrimSpace(a.Config.Log.File) == "" {
		return logging.Discard, nil
	}

	f, err := os.OpenFile(a.Config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	a.logFile = f

	return logging.New(logging.Options{
		Writer:    f,
		Level:     a.Config.Log.Level,
		Format:    a.Config.Log.Format,
		Component: "dashboard",
	})
}

// Close releases the store and log file, if any were opened.
func (a *AppContext) Close() error {
	var err error
	if a.store != nil {
		err = a.store.Close()
		a.store = nil
		a.snippets = nil
	}
	if a.logFile != nil {
		if cerr := a.logFile.Close(); err == nil {
			err = cerr
		}
		a.logFile = nil
	}
	return err
}
