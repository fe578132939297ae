/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/humaidq/phenoage/logging"
	"github.com/humaidq/phenoage/metrics"
)

const serverName = "phenoage"

var mcpLogger = logging.Logger(logging.SourceMCP)

// Server wraps an MCP server exposing the calculator tools.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a Server with both tools registered.
func New(version string, recorder *metrics.Recorder) *Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(server, CalculateTool(), CalculateHandler(recorder))
	mcp.AddTool(server, RangesTool(), RangesHandler(recorder))

	return &Server{mcpServer: server}
}

// Serve runs the server on stdio until the client disconnects or the context
// ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.ServeTransport(ctx, &mcp.StdioTransport{})
}

// ServeTransport runs the server on the given transport.
func (s *Server) ServeTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return ErrNotConfigured
	}

	mcpLogger.Info("serving MCP", "transport", fmt.Sprintf("%T", transport))

	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}

	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}

	return nil
}

// HTTPHandler returns a streamable HTTP handler for the server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}
