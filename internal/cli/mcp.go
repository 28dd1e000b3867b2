package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/todocol/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for comment collection",
	Long: `Start a Model Context Protocol (MCP) server on stdio so coding assistants can
collect and list marker comments.

Tools:
- todocol_collect_project: write the report for a project
- todocol_collect_workspace: write reports for every project in a workspace
- todocol_list_comments: list comments without writing
- todocol_render_report: render a report without writing

Example:
  todocol mcp`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stdout carries the protocol, so no progress bars.
	opts.quiet = true
	c, err := newCollector(cmd, cfg)
	if err != nil {
		return err
	}

	return mcp.NewMCPServer(c, Version, logger).Serve(ctx)
}
