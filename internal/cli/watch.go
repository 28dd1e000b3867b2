package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/todocol/internal/source"
	"github.com/mvp-joe/todocol/internal/watcher"
)

var debounceFlag time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rewrite the project report whenever a source file changes",
	Long: `Collect the project once, then watch its supported source files and collect
again after changes settle. Stop with Ctrl+C.

Example:
  todocol watch ~/src/myproj --debounce 1s`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&debounceFlag, "debounce", watcher.DefaultDebounce, "quiet period after the last change before collecting")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := newCollector(cmd, cfg)
	if err != nil {
		return err
	}

	dir := pathArg(args)
	collect := func() error {
		rep, err := c.CollectProject(ctx, dir)
		if err != nil {
			return err
		}
		if !opts.quiet {
			printProjectSummary(cmd.OutOrStdout(), rep)
		}
		return nil
	}

	if err := collect(); err != nil {
		return err
	}

	w, err := watcher.NewFileWatcher([]string{dir}, watcher.Options{
		Extensions: source.SupportedExtensions(),
		Ignore:     cfg.Ignore,
		Debounce:   debounceFlag,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	triggers := make(chan []string, 1)
	if err := w.Start(ctx, func(files []string) {
		select {
		case triggers <- files:
		default:
			// A run is already queued.
		}
	}); err != nil {
		return err
	}

	logger.Info().Str("dir", dir).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case files := <-triggers:
			logger.Info().Int("changed", len(files)).Msg("sources changed, collecting")

			w.Pause()
			err := collect()
			w.Resume()

			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Error().Err(err).Msg("collection failed")
			}
		}
	}
}
