package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// workspaceCmd represents the workspace command
var workspaceCmd = &cobra.Command{
	Use:   "workspace [path]",
	Short: "Collect comments from all projects in one workspace",
	Long: `Treat every immediate subdirectory of path as a project and write one report
into each. A project that fails is reported and the others still run.

Example:
  todocol workspace ~/src`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkspace,
}

// workspacesCmd represents the workspaces command
var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Collect comments in every configured workspace",
	Long: `Run "todocol workspace" for each directory listed under "workspaces" in the
configuration file. Environment variables in the paths are expanded.

Example settings.yaml:
  workspaces:
    - $HOME/src/work
    - $HOME/src/oss`,
	Args: cobra.NoArgs,
	RunE: runWorkspaces,
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	rootCmd.AddCommand(workspacesCmd)
}

func runWorkspace(cmd *cobra.Command, args []string) error {
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

	result, err := c.CollectWorkspace(ctx, pathArg(args))
	if result != nil && !opts.quiet {
		printWorkspaceSummary(cmd.OutOrStdout(), result)
	}
	return err
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Workspaces) == 0 {
		return fmt.Errorf("no workspaces configured")
	}

	c, err := newCollector(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := c.CollectWorkspaces(ctx)
	if result != nil && !opts.quiet {
		printWorkspaceSummary(cmd.OutOrStdout(), result)
	}
	return err
}
