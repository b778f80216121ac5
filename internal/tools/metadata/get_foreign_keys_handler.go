package metadata

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mysql-schema-mcp/mcp/internal/tools"
)

func GetForeignKeysHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetForeignKeys(ctx, request, deps)
	}
}

func handleGetForeignKeys(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	args, errResult := bindTableInput(request, deps, GetForeignKeysToolName)
	if errResult != nil {
		return errResult, nil
	}

	foreignKeys, err := deps.Catalog.GetForeignKeys(ctx, args.Table, args.Database)
	if err != nil {
		return tools.ErrorResult(deps, GetForeignKeysToolName, "failed to get foreign keys", err), nil
	}

	deps.Log.Debug("Retrieved foreign keys", "database", args.Database, "table", args.Table, "count", len(foreignKeys))
	return tools.JSONResult(deps, GetForeignKeysToolName, foreignKeys), nil
}
