package metadata

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mysql-schema-mcp/mcp/internal/tools"
)

func GetTableSchemaHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetTableSchema(ctx, request, deps)
	}
}

func handleGetTableSchema(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Catalog == nil {
		return tools.ErrorResult(deps, GetTableSchemaToolName, "Catalog service is not initialized", nil), nil
	}

	var args GetTableSchemaInput
	if err := request.BindArguments(&args); err != nil {
		return tools.ErrorResult(deps, GetTableSchemaToolName, "invalid arguments", err), nil
	}

	schemas, err := deps.Catalog.GetTableSchema(ctx, args.Tables, args.Database)
	if err != nil {
		return tools.ErrorResult(deps, GetTableSchemaToolName, "failed to get table schema", err), nil
	}

	deps.Log.Debug("Retrieved table schema", "database", args.Database, "tables", schemas.Len())
	return tools.JSONResult(deps, GetTableSchemaToolName, schemas), nil
}
