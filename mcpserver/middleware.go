package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	gomcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// requestMiddleware stamps every tool call with a correlation id and
// logs its duration, grounded on the same ToolHandlerMiddleware shape
// the catalog-query server uses to record JSONL call entries — here
// routed through the project's own Logger rather than a separate log
// file, since nothing else in this codebase writes its own log format.
func (s *Server) requestMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
			reqID := uuid.New().String()
			start := time.Now()

			s.logger.Debug("mcp request %s: tool=%s", reqID, req.Params.Name)
			result, err := next(ctx, req)
			elapsed := time.Since(start)

			if err != nil {
				s.logger.Debug("mcp request %s: error after %s: %v", reqID, elapsed, err)
				return result, err
			}
			s.logger.Debug("mcp request %s: ok in %s", reqID, elapsed)
			return result, nil
		}
	}
}

func marshalIndent(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
