package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/shoestock/internal/config"
	"github.com/roach88/shoestock/internal/journal"
	"github.com/roach88/shoestock/internal/logger"
	"github.com/roach88/shoestock/internal/stockfile"
	"github.com/roach88/shoestock/internal/tracker"
)

// app bundles everything a command needs for one invocation.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	tracker   *tracker.Tracker
	journal   *journal.Journal
	formatter *OutputFormatter
}

// openApp resolves configuration, applies flag overrides and wires the
// tracker. Failures are reported through the formatter.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Diagnostics go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	applyFlagOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
	}

	log, err := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeConfig, "failed to build logger", err)
	}

	mode, err := tracker.ParseReloadMode(cfg.Reload)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
	}

	a := &app{cfg: cfg, log: log, formatter: formatter}
	trackerOpts := []tracker.Option{
		tracker.WithReloadMode(mode),
		tracker.WithLogger(logger.Named(log, "tracker")),
	}
	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			return nil, formatter.Fail(ExitCommandError, ErrCodeJournal, "failed to open journal", err)
		}
		a.journal = j
		trackerOpts = append(trackerOpts, tracker.WithJournal(j))
	}

	file := stockfile.New(cfg.InventoryPath, logger.Named(log, "stockfile"))
	a.tracker = tracker.New(file, trackerOpts...)

	formatter.VerboseLog("Inventory: %s (reload=%s)", cfg.InventoryPath, cfg.Reload)
	return a, nil
}

// applyFlagOverrides gives explicitly passed flags the last word.
func applyFlagOverrides(cfg *config.Config, opts *RootOptions) {
	if opts.File != "" {
		cfg.InventoryPath = opts.File
	}
	if opts.Journal != "" {
		cfg.JournalPath = opts.Journal
	}
	if opts.Reload != "" {
		cfg.Reload = opts.Reload
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
}

// Close releases the journal and flushes the logger.
func (a *app) Close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.log.Error("error closing journal", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

// load fills the store once for a one-shot command and prints a
// diagnostic per skipped line.
func (a *app) load(ctx context.Context) error {
	result, err := a.tracker.Reload(ctx)
	if err != nil {
		return a.formatter.Fail(ExitCommandError, ErrCodeLoadFailed,
			fmt.Sprintf("failed to load inventory %s", a.cfg.InventoryPath), err)
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(a.formatter.GetErrWriter(), "Error reading line: %s. %v\n", skipped.Raw, skipped.Err)
	}
	a.formatter.VerboseLog("Loaded %d record(s)", result.Loaded)
	return nil
}

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
