// Package mcp exposes todocol collection as MCP tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/phuslu/log"

	"github.com/mvp-joe/todocol/internal/collector"
)

// ServerName is the name announced to MCP clients.
const ServerName = "todocol-mcp"

// MCPServer manages the MCP server lifecycle.
type MCPServer struct {
	collector *collector.Collector
	logger    *log.Logger
	mcp       *server.MCPServer
}

// NewMCPServer creates a server with every todocol tool registered.
func NewMCPServer(c *collector.Collector, version string, logger *log.Logger) *MCPServer {
	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)

	AddCollectProjectTool(mcpServer, c)
	AddCollectWorkspaceTool(mcpServer, c)
	AddListCommentsTool(mcpServer, c)
	AddRenderReportTool(mcpServer, c)

	return &MCPServer{
		collector: c,
		logger:    logger,
		mcp:       mcpServer,
	}
}

// Server returns the underlying mcp-go server.
func (s *MCPServer) Server() *server.MCPServer {
	return s.mcp
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *MCPServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("server", ServerName).Msg("starting MCP server on stdio")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-sigCh:
		s.logger.Info().Msg("received shutdown signal, stopping")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
