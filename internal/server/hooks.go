package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// onAfterSetLevelHook applies a logging/setLevel request to the server logger.
func (s *SchemaMCPServer) onAfterSetLevelHook(_ context.Context, id any, message *mcp.SetLevelRequest, _ *mcp.EmptyResult) {
	newLevel := string(message.Params.Level)
	s.log.SetLevel(newLevel)
	s.log.Info("Log level changed via MCP", "new_level", newLevel, "request_id", id)
}
