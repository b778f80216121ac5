package metadata

import "github.com/mark3labs/mcp-go/mcp"

const ListTablesToolName = "list_tables"

type ListTablesInput struct {
	Database string `json:"database,omitempty" jsonschema:"Database (schema) to list tables from. Omit to list tables of every database"`
}

func ListTablesSpec() mcp.Tool {
	return mcp.NewTool(ListTablesToolName,
		mcp.WithDescription(
			"List tables with their storage engine, estimated row count, average row length, data length, comment and create/update times. "+
				"Results are ordered by database then table name. "+
				"Row counts are estimates maintained by the server and can be stale.",
		),
		mcp.WithInputSchema[ListTablesInput](),
		mcp.WithTitleAnnotation("List MySQL tables"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
