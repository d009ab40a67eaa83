// Package mcp implements the MCP stdio server exposing the design system to
// LLM hosts: component schemas, tokens, utilities, icons and documentation.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/mcplog"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/search"
	"github.com/MerzoukeMansouri/adeo-mozaic-mcp/pkg/store"
)

const serverVersion = "1.0.0"

// Server wires the read-only store and the search executor to MCP tools.
type Server struct {
	mcpServer *server.MCPServer
	store     *store.Store
	executor  *search.Executor
	logger    *slog.Logger
	calls     *mcplog.Logger // nil when call logging is disabled
}

// NewServer creates the MCP server over the given store and executor.
// calls may be nil to disable per-call JSONL logging.
func NewServer(st *store.Store, exec *search.Executor, logger *slog.Logger, calls *mcplog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{store: st, executor: exec, logger: logger, calls: calls}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if calls != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("mozaic", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listComponentsTool(), Handler: s.handleListComponents},
		server.ServerTool{Tool: getComponentPropsTool(), Handler: s.handleGetComponentProps},
		server.ServerTool{Tool: getComponentSnippetTool(), Handler: s.handleGetComponentSnippet},
		server.ServerTool{Tool: getTokensTool(), Handler: s.handleGetTokens},
		server.ServerTool{Tool: getCSSUtilitiesTool(), Handler: s.handleGetCSSUtilities},
		server.ServerTool{Tool: searchDocsTool(), Handler: s.handleSearchDocs},
		server.ServerTool{Tool: searchIconsTool(), Handler: s.handleSearchIcons},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout and blocks until the
// client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
