package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/todocol/internal/logging"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	cfgFile   string
	verbosity int
	logFormat string
	quiet     bool

	filename string
	format   string
	prefixes []string
	ignore   []string
	workers  int
}

var (
	opts   rootOptions
	logger = logging.Discard()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todocol",
	Short: "Collect TODO comments into a report file per project",
	Long: `todocol walks a project directory, extracts marker comments (TODO, FIXME, ...)
from Rust, C, C++, Python and shell sources, and writes them into a report
file at the project root.

Reports are plain text (TODO.txt), Markdown (TODO.md) or JSON (TODO.json).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is $HOME/.config/todocol/settings.{json,yaml,toml})")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log output format: console or json")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "disable progress bars and summaries")

	flags.StringVarP(&opts.filename, "filename", "n", "", "report file base name (default \"TODO\")")
	flags.StringVarP(&opts.format, "format", "f", "", "report format: raw, txt, markdown, md or json (default \"raw\")")
	flags.StringArrayVarP(&opts.prefixes, "prefix", "p", nil, "comment marker to collect, repeatable (adds to the configured markers)")
	flags.StringArrayVar(&opts.ignore, "ignore", nil, "file or directory name to skip, repeatable")
	flags.IntVar(&opts.workers, "workers", 0, "number of files scanned in parallel")
}

// setup loads .env and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	// A missing .env is the common case.
	_ = godotenv.Load()

	logger = logging.New(logging.Options{
		Level:  logging.LevelFromVerbosity(opts.verbosity),
		Format: opts.logFormat,
		Writer: cmd.ErrOrStderr(),
	})
	logger.Debug().Int("verbosity", opts.verbosity).Msg("debug logs enabled")

	return nil
}
