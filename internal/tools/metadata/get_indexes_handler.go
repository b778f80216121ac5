package metadata

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mysql-schema-mcp/mcp/internal/tools"
)

func GetIndexesHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetIndexes(ctx, request, deps)
	}
}

func handleGetIndexes(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	args, errResult := bindTableInput(request, deps, GetIndexesToolName)
	if errResult != nil {
		return errResult, nil
	}

	indexes, err := deps.Catalog.GetIndexes(ctx, args.Table, args.Database)
	if err != nil {
		return tools.ErrorResult(deps, GetIndexesToolName, "failed to get indexes", err), nil
	}

	deps.Log.Debug("Retrieved indexes", "database", args.Database, "table", args.Table, "count", len(indexes))
	return tools.JSONResult(deps, GetIndexesToolName, indexes), nil
}

// bindTableInput validates the dependencies and a non-empty table argument.
func bindTableInput(request mcp.CallToolRequest, deps *tools.ToolDependencies, tool string) (TableInput, *mcp.CallToolResult) {
	var args TableInput
	if deps.Catalog == nil {
		return args, tools.ErrorResult(deps, tool, "Catalog service is not initialized", nil)
	}
	if err := request.BindArguments(&args); err != nil {
		return args, tools.ErrorResult(deps, tool, "invalid arguments", err)
	}
	if args.Table == "" {
		return args, tools.ErrorResult(deps, tool, "table parameter is required and cannot be empty", nil)
	}
	return args, nil
}
