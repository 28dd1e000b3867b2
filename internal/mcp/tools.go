package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/todocol/internal/collector"
	"github.com/mvp-joe/todocol/internal/comment"
	"github.com/mvp-joe/todocol/internal/report"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type toolHandler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// CollectProjectResponse is returned by todocol_collect_project.
type CollectProjectResponse struct {
	Project      string `json:"project"`
	OutputPath   string `json:"output_path"`
	Format       string `json:"format"`
	Comments     int    `json:"comments"`
	FilesScanned int    `json:"files_scanned"`
	FileErrors   int    `json:"file_errors"`
	RunID        string `json:"run_id"`
	TookMs       int    `json:"took_ms"`
}

// CollectWorkspaceResponse is returned by todocol_collect_workspace.
type CollectWorkspaceResponse struct {
	Workspace string                   `json:"workspace"`
	Projects  []CollectProjectResponse `json:"projects"`
	Failures  []ProjectFailure         `json:"failures"`
}

// ProjectFailure describes a project that produced no report.
type ProjectFailure struct {
	Dir   string `json:"dir"`
	Error string `json:"error"`
}

// ListCommentsResponse is returned by todocol_list_comments.
type ListCommentsResponse struct {
	Project       string            `json:"project"`
	Comments      []comment.Comment `json:"comments"`
	TotalFound    int               `json:"total_found"`
	TotalReturned int               `json:"total_returned"`
}

// AddCollectProjectTool registers the todocol_collect_project tool.
func AddCollectProjectTool(s *server.MCPServer, c *collector.Collector) {
	tool := mcp.NewTool(
		"todocol_collect_project",
		mcp.WithDescription(`Scan a project directory for marker comments (TODO, FIXME, ...) and write the report file into the project.

The report replaces <dir>/<name>.<ext>, where the name and format come from the todocol configuration.`),
		mcp.WithString("dir",
			mcp.Required(),
			mcp.Description("Project directory to scan")),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createCollectProjectHandler(c))
}

func createCollectProjectHandler(c *collector.Collector) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		dir, err := stringArg(argsMap, "dir", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		rep, err := c.CollectProject(ctx, dir)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("collection failed: %v", err)), nil
		}

		return jsonResult(projectResponse(rep))
	}
}

// AddCollectWorkspaceTool registers the todocol_collect_workspace tool.
func AddCollectWorkspaceTool(s *server.MCPServer, c *collector.Collector) {
	tool := mcp.NewTool(
		"todocol_collect_workspace",
		mcp.WithDescription("Write a marker comment report into every immediate subdirectory of a workspace directory. Failing projects are listed and do not stop the run."),
		mcp.WithString("dir",
			mcp.Required(),
			mcp.Description("Workspace directory whose subdirectories are projects")),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createCollectWorkspaceHandler(c))
}

func createCollectWorkspaceHandler(c *collector.Collector) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		dir, err := stringArg(argsMap, "dir", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := c.CollectWorkspace(ctx, dir)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("workspace collection failed: %v", err)), nil
		}

		response := CollectWorkspaceResponse{
			Workspace: dir,
			Projects:  []CollectProjectResponse{},
			Failures:  []ProjectFailure{},
		}
		for _, rep := range result.Projects {
			response.Projects = append(response.Projects, projectResponse(rep))
		}
		for _, failure := range result.Failures {
			response.Failures = append(response.Failures, ProjectFailure{Dir: failure.Dir, Error: failure.Err.Error()})
		}

		return jsonResult(response)
	}
}

// AddListCommentsTool registers the todocol_list_comments tool.
func AddListCommentsTool(s *server.MCPServer, c *collector.Collector) {
	tool := mcp.NewTool(
		"todocol_list_comments",
		mcp.WithDescription(`List the marker comments of a project without writing a report.

Comments are returned in traversal order with file, line, merged comment text and marker.`),
		mcp.WithString("dir",
			mcp.Required(),
			mcp.Description("Project directory to scan")),
		mcp.WithArray("markers",
			mcp.Description("Only return comments with these markers (default: all configured markers)"),
			mcp.WithStringItems()),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of comments to return (1-1000, default: 100)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createListCommentsHandler(c))
}

func createListCommentsHandler(c *collector.Collector) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		dir, err := stringArg(argsMap, "dir", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		markers := stringsArg(argsMap, "markers")
		limit := limitArg(argsMap, "limit", defaultListLimit, 1, maxListLimit)

		name, err := collector.ProjectName(dir)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		comments, err := c.ScanProject(ctx, dir)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
		}

		filtered := []comment.Comment{}
		for _, cm := range comments {
			if len(markers) == 0 || slices.Contains(markers, cm.Marker) {
				filtered = append(filtered, cm)
			}
		}

		returned := filtered
		if len(returned) > limit {
			returned = returned[:limit]
		}

		return jsonResult(ListCommentsResponse{
			Project:       name,
			Comments:      returned,
			TotalFound:    len(filtered),
			TotalReturned: len(returned),
		})
	}
}

// AddRenderReportTool registers the todocol_render_report tool.
func AddRenderReportTool(s *server.MCPServer, c *collector.Collector) {
	tool := mcp.NewTool(
		"todocol_render_report",
		mcp.WithDescription("Render the report a project would get, without writing it. Formats: raw (txt), markdown (md), json."),
		mcp.WithString("dir",
			mcp.Required(),
			mcp.Description("Project directory to scan")),
		mcp.WithString("format",
			mcp.Description("Report format (default: configured format)"),
			mcp.Enum("raw", "txt", "markdown", "md", "json")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createRenderReportHandler(c))
}

func createRenderReportHandler(c *collector.Collector) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		dir, err := stringArg(argsMap, "dir", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		selector, err := stringArg(argsMap, "format", false)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		format := c.Format()
		if selector != "" {
			if format, err = report.ParseFormat(selector); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		name, err := collector.ProjectName(dir)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		comments, err := c.ScanProject(ctx, dir)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
		}

		return mcp.NewToolResultText(report.Render(format, name, comments)), nil
	}
}

func projectResponse(rep *collector.ProjectReport) CollectProjectResponse {
	return CollectProjectResponse{
		Project:      rep.Name,
		OutputPath:   rep.OutputPath,
		Format:       rep.Format.String(),
		Comments:     len(rep.Comments),
		FilesScanned: rep.FilesScanned,
		FileErrors:   rep.FileErrors,
		RunID:        rep.RunID,
		TookMs:       int(rep.Duration / time.Millisecond),
	}
}

// jsonResult marshals v as the text content of a tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
