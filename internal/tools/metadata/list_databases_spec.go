package metadata

import "github.com/mark3labs/mcp-go/mcp"

const ListDatabasesToolName = "list_databases"

func ListDatabasesSpec() mcp.Tool {
	return mcp.NewTool(ListDatabasesToolName,
		mcp.WithDescription(
			"List every database (schema) on the MySQL server that the connected user can see, "+
				"with its default character set and collation. "+
				"Use this first to find the database name to pass to the other tools.",
		),
		mcp.WithTitleAnnotation("List MySQL databases"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
