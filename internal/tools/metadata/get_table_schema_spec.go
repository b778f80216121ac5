package metadata

import "github.com/mark3labs/mcp-go/mcp"

const GetTableSchemaToolName = "get_table_schema"

type GetTableSchemaInput struct {
	Tables   []string `json:"tables" jsonschema:"Names of the tables to describe"`
	Database string   `json:"database,omitempty" jsonschema:"Database (schema) the tables belong to. Omit to match tables of that name in every database"`
}

func GetTableSchemaSpec() mcp.Tool {
	return mcp.NewTool(GetTableSchemaToolName,
		mcp.WithDescription(
			"Describe one or more tables in a single call. "+
				"Returns a JSON object keyed by table name; each entry holds the table's columns (in ordinal order), "+
				"its index participation rows and its foreign keys. "+
				"Every requested table is present in the result; a table that does not exist has three empty lists. "+
				"Pass the database whenever several databases may contain a table of the same name.",
		),
		mcp.WithInputSchema[GetTableSchemaInput](),
		mcp.WithTitleAnnotation("Get MySQL table schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
