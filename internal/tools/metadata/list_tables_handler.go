package metadata

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mysql-schema-mcp/mcp/internal/tools"
)

func ListTablesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListTables(ctx, request, deps)
	}
}

func handleListTables(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Catalog == nil {
		return tools.ErrorResult(deps, ListTablesToolName, "Catalog service is not initialized", nil), nil
	}

	var args ListTablesInput
	if err := request.BindArguments(&args); err != nil {
		return tools.ErrorResult(deps, ListTablesToolName, "invalid arguments", err), nil
	}

	tables, err := deps.Catalog.ListTables(ctx, args.Database)
	if err != nil {
		return tools.ErrorResult(deps, ListTablesToolName, "failed to list tables", err), nil
	}

	deps.Log.Debug("Listed tables", "database", args.Database, "count", len(tables))
	return tools.JSONResult(deps, ListTablesToolName, tables), nil
}
