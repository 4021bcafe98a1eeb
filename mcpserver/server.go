package mcp

import (
	gomcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mleoca/ucn/cachestore"
	"github.com/mleoca/ucn/output"
)

// expandableCacheCapacity bounds the number of distinct (project,
// symbol, file pattern) context results the `expand` follow-up keeps
// around; it is independent of the project index cache (capacity param
// to NewServer).
const expandableCacheCapacity = 64

const serverVersion = "0.1.0"

// Server exposes the query Engine over the remote-procedure contract
// (§6): one MCP tool per read-only query, backed by a small LRU of
// built indices so a long-lived process can serve several projects
// without holding every one of them in memory at once.
type Server struct {
	mcpServer  *server.MCPServer
	projects   *projectCache
	expandable *cachestore.ExpandableCache
	logger     *output.Logger
}

// NewServer creates a Server with its own project cache, capped at
// capacity concurrently-loaded indices (§6's "remote-procedure server
// holds at most K indices, LRU by last-access time").
func NewServer(capacity int, logger *output.Logger) *Server {
	if logger == nil {
		logger = output.NewLogger(output.VerbosityNormal)
	}
	expandable, _ := cachestore.NewExpandableCache(expandableCacheCapacity)
	s := &Server{
		projects:   newProjectCache(capacity, logger),
		expandable: expandable,
		logger:     logger,
	}

	s.mcpServer = server.NewMCPServer("ucn", serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.requestMiddleware()),
	)
	s.mcpServer.AddTools(registeredTools(s)...)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func textResult(v interface{}) *gomcp.CallToolResult {
	b, err := marshalIndent(v)
	if err != nil {
		return gomcp.NewToolResultError(err.Error())
	}
	return gomcp.NewToolResultText(string(b))
}

func notFoundResult(query string, didYouMean []string) *gomcp.CallToolResult {
	return textResult(map[string]interface{}{
		"found":      false,
		"query":      query,
		"didYouMean": didYouMean,
	})
}
