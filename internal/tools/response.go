package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// JSONResult encodes v as indented JSON text content.
func JSONResult(deps *ToolDependencies, tool string, v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorResult(deps, tool, "failed to format result as JSON", err)
	}
	return mcp.NewToolResultText(string(data))
}

// ErrorResult logs msg with the failing error and returns it as a tool error.
func ErrorResult(deps *ToolDependencies, tool, msg string, err error) *mcp.CallToolResult {
	if err != nil {
		deps.Log.Error(msg, "tool", tool, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", msg, err))
	}
	deps.Log.Error(msg, "tool", tool)
	return mcp.NewToolResultError(msg)
}
