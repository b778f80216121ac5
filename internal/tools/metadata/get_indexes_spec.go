package metadata

import "github.com/mark3labs/mcp-go/mcp"

const GetIndexesToolName = "get_indexes"

// TableInput is the argument shape shared by the single-table tools.
type TableInput struct {
	Table    string `json:"table" jsonschema:"Name of the table"`
	Database string `json:"database,omitempty" jsonschema:"Database (schema) the table belongs to"`
}

func GetIndexesSpec() mcp.Tool {
	return mcp.NewTool(GetIndexesToolName,
		mcp.WithDescription(
			"List the indexes of a table. Each entry is one column of one index, ordered by index name then position in the index, "+
				"so a composite index appears as several entries sharing the same name. "+
				"non_unique is 0 for unique indexes; column_name is null for functional key parts. "+
				"An unknown table gives an empty list.",
		),
		mcp.WithInputSchema[TableInput](),
		mcp.WithTitleAnnotation("Get MySQL table indexes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
