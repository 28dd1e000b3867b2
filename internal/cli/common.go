package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mvp-joe/todocol/internal/collector"
	"github.com/mvp-joe/todocol/internal/config"
	"github.com/mvp-joe/todocol/internal/logging"
)

// defaultPath is used when a command gets no directory argument.
const defaultPath = "$PWD"

// loadConfig loads the configuration and applies the command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader(opts.cfgFile).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyOverrides(cmd.Flags(), cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyOverrides copies the flags the user set into cfg.
func applyOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("filename") {
		cfg.Outfile.Name = opts.filename
	}
	if flags.Changed("format") {
		cfg.Outfile.Format = opts.format
	}
	for _, p := range opts.prefixes {
		if !cfg.AddPrefix(p) {
			logger.Debug().Str("prefix", p).Msg("prefix already configured")
		}
	}
	for _, name := range opts.ignore {
		if !cfg.AddIgnore(name) {
			logger.Debug().Str("ignore", name).Msg("ignore entry already configured")
		}
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
}

// newCollector creates a collector that logs through the CLI logger and
// draws a progress bar when stderr is a terminal and --quiet is not set.
func newCollector(cmd *cobra.Command, cfg *config.Config) (*collector.Collector, error) {
	var progress collector.ProgressReporter = &collector.NoOpProgressReporter{}
	if !opts.quiet && logging.IsTerminal(cmd.ErrOrStderr()) {
		progress = NewCLIProgressReporter(cmd.ErrOrStderr())
	}

	return collector.New(cfg,
		collector.WithLogger(logger),
		collector.WithProgress(progress),
	)
}

// pathArg returns the directory argument with environment variables
// expanded, defaulting to the working directory.
func pathArg(args []string) string {
	path := defaultPath
	if len(args) > 0 {
		path = args[0]
	}
	if expanded := config.ExpandPath(path); expanded != "" {
		return expanded
	}
	return "."
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
