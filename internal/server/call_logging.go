package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

// withCallLogging wraps a tool handler so that every call is logged with a
// correlation id, its duration and whether it produced a tool error.
func withCallLogging(log *logger.Service, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		toolName := request.Params.Name
		start := time.Now()

		log.Debug("Tool call started", "tool", toolName, "call_id", callID)
		result, err := handler(ctx, request)

		attrs := []any{"tool", toolName, "call_id", callID, "duration", time.Since(start)}
		switch {
		case err != nil:
			log.Error("Tool call failed", append(attrs, "error", err)...)
		case result != nil && result.IsError:
			log.Info("Tool call returned an error result", attrs...)
		default:
			log.Debug("Tool call finished", attrs...)
		}
		return result, err
	}
}
