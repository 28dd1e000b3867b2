package cli

import (
	"github.com/spf13/cobra"
)

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project [path]",
	Short: "Collect comments in one project directory",
	Long: `Collect marker comments from every supported source file below path and
write the report to <path>/<name>.<ext>. The previous report is replaced.

Examples:
  # Collect the current directory
  todocol project

  # Collect FIXME as well, into a Markdown report
  todocol project ~/src/myproj -p FIXME -f md
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
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

	rep, err := c.CollectProject(ctx, pathArg(args))
	if err != nil {
		return err
	}

	if !opts.quiet {
		printProjectSummary(cmd.OutOrStdout(), rep)
	}
	return nil
}
