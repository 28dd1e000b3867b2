package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mvp-joe/todocol/internal/collector"
	"github.com/mvp-joe/todocol/internal/config"
	"github.com/mvp-joe/todocol/internal/logging"
)

// Test Plan for MCP tools:
// - NewMCPServer registers every tool
// - todocol_collect_project writes the report and returns a summary
// - todocol_collect_workspace lists projects and failures
// - todocol_list_comments filters by marker and applies the limit
// - todocol_render_report renders without writing, honoring the format argument
// - Missing or malformed arguments return tool errors, not system errors

func newTestCollector(t *testing.T) *collector.Collector {
	t.Helper()
	cfg := config.Default()
	cfg.AddPrefix("FIXME")
	c, err := collector.New(cfg)
	require.NoError(t, err)
	return c
}

func newTestProject(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.rs"),
		[]byte("// TODO: first\n// FIXME: second\nfn main() {}\n// TODO third\n"), 0644))
	return dir
}

func call(t *testing.T, handler toolHandler, args interface{}) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
	result, err := handler(context.Background(), request)
	require.NoError(t, err, "should not return system error")
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "should be text content")
	return textContent.Text
}

func TestNewMCPServer_RegistersTools(t *testing.T) {
	t.Parallel()

	s := NewMCPServer(newTestCollector(t), "test", logging.Discard())
	require.NotNil(t, s.Server())

	response := s.Server().HandleMessage(context.Background(),
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`))
	data, err := json.Marshal(response)
	require.NoError(t, err)

	names := gjson.GetBytes(data, "result.tools.#.name")
	var registered []string
	for _, n := range names.Array() {
		registered = append(registered, n.String())
	}

	assert.ElementsMatch(t, []string{
		"todocol_collect_project",
		"todocol_collect_workspace",
		"todocol_list_comments",
		"todocol_render_report",
	}, registered)
}

func TestCollectProjectHandler(t *testing.T) {
	t.Parallel()

	dir := newTestProject(t, t.TempDir(), "proj")
	handler := createCollectProjectHandler(newTestCollector(t))

	result := call(t, handler, map[string]interface{}{"dir": dir})
	assert.False(t, result.IsError)

	var response CollectProjectResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

	assert.Equal(t, "proj", response.Project)
	assert.Equal(t, filepath.Join(dir, "TODO.txt"), response.OutputPath)
	assert.Equal(t, "raw", response.Format)
	assert.Equal(t, 3, response.Comments)
	assert.Equal(t, 1, response.FilesScanned)
	assert.NotEmpty(t, response.RunID)
	assert.FileExists(t, response.OutputPath)
}

func TestCollectProjectHandler_InvalidArguments(t *testing.T) {
	t.Parallel()

	handler := createCollectProjectHandler(newTestCollector(t))

	result := call(t, handler, map[string]interface{}{})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "dir parameter is required")

	result = call(t, handler, "invalid string instead of map")
	assert.True(t, result.IsError)

	result = call(t, handler, map[string]interface{}{"dir": "/"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid project path")
}

func TestCollectWorkspaceHandler(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	newTestProject(t, ws, "alpha")
	beta := newTestProject(t, ws, "beta")
	require.NoError(t, os.MkdirAll(filepath.Join(beta, "TODO.txt", "blocker"), 0755))

	handler := createCollectWorkspaceHandler(newTestCollector(t))
	result := call(t, handler, map[string]interface{}{"dir": ws})
	assert.False(t, result.IsError)

	var response CollectWorkspaceResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

	require.Len(t, response.Projects, 1)
	assert.Equal(t, "alpha", response.Projects[0].Project)
	require.Len(t, response.Failures, 1)
	assert.Equal(t, beta, response.Failures[0].Dir)
	assert.Contains(t, response.Failures[0].Error, "cannot write report")
}

func TestListCommentsHandler(t *testing.T) {
	t.Parallel()

	dir := newTestProject(t, t.TempDir(), "proj")
	handler := createListCommentsHandler(newTestCollector(t))

	t.Run("all markers", func(t *testing.T) {
		t.Parallel()
		result := call(t, handler, map[string]interface{}{"dir": dir})

		var response ListCommentsResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		assert.Equal(t, "proj", response.Project)
		assert.Equal(t, 3, response.TotalFound)
		require.Len(t, response.Comments, 3)
		assert.Equal(t, "first", response.Comments[0].Content)
		assert.Equal(t, "second", response.Comments[1].Content)
		assert.Equal(t, 4, response.Comments[2].Line)
	})

	t.Run("marker filter", func(t *testing.T) {
		t.Parallel()
		result := call(t, handler, map[string]interface{}{
			"dir":     dir,
			"markers": []interface{}{"FIXME"},
		})

		var response ListCommentsResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		require.Len(t, response.Comments, 1)
		assert.Equal(t, "FIXME", response.Comments[0].Marker)
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()
		result := call(t, handler, map[string]interface{}{
			"dir":   dir,
			"limit": float64(2), // MCP sends numbers as float64
		})

		var response ListCommentsResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		assert.Equal(t, 3, response.TotalFound)
		assert.Equal(t, 2, response.TotalReturned)
		assert.Len(t, response.Comments, 2)
	})

	_, err := os.Stat(filepath.Join(dir, "TODO.txt"))
	assert.True(t, os.IsNotExist(err), "listing must not write a report")
}

func TestRenderReportHandler(t *testing.T) {
	t.Parallel()

	dir := newTestProject(t, t.TempDir(), "proj")
	handler := createRenderReportHandler(newTestCollector(t))

	result := call(t, handler, map[string]interface{}{"dir": dir, "format": "md"})
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "# proj\n\n")
	assert.Contains(t, text, "[proj/src/main.rs]")

	result = call(t, handler, map[string]interface{}{"dir": dir})
	assert.True(t, len(resultText(t, result)) > 0)
	assert.Contains(t, resultText(t, result), "proj:\n")

	result = call(t, handler, map[string]interface{}{"dir": dir, "format": "html"})
	assert.True(t, result.IsError)

	_, err := os.Stat(filepath.Join(dir, "TODO.md"))
	assert.True(t, os.IsNotExist(err), "rendering must not write a report")
}
