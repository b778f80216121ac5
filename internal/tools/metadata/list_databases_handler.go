package metadata

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mysql-schema-mcp/mcp/internal/tools"
)

func ListDatabasesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListDatabases(ctx, deps)
	}
}

func handleListDatabases(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Catalog == nil {
		return tools.ErrorResult(deps, ListDatabasesToolName, "Catalog service is not initialized", nil), nil
	}

	databases, err := deps.Catalog.ListDatabases(ctx)
	if err != nil {
		return tools.ErrorResult(deps, ListDatabasesToolName, "failed to list databases", err), nil
	}

	deps.Log.Debug("Listed databases", "count", len(databases))
	return tools.JSONResult(deps, ListDatabasesToolName, databases), nil
}
