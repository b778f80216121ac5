package metadata

import "github.com/mark3labs/mcp-go/mcp"

const GetForeignKeysToolName = "get_foreign_keys"

func GetForeignKeysSpec() mcp.Tool {
	return mcp.NewTool(GetForeignKeysToolName,
		mcp.WithDescription(
			"List the foreign keys declared on a table, with the referenced database, table and column and the ON UPDATE / ON DELETE rules. "+
				"Each entry is one referencing column, ordered by constraint name, so a composite key appears as several entries. "+
				"Use it to discover how tables join. An unknown table gives an empty list.",
		),
		mcp.WithInputSchema[TableInput](),
		mcp.WithTitleAnnotation("Get MySQL table foreign keys"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
