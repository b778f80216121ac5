package catalog

import (
	"github.com/huandu/go-sqlbuilder"

	"github.com/mysql-schema-mcp/mcp/internal/database"
)

func build(sb *sqlbuilder.SelectBuilder) database.Query {
	sql, args := sb.Build()
	return database.Query{SQL: sql, Args: args}
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func databasesQuery() database.Query {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select("SCHEMA_NAME", "DEFAULT_CHARACTER_SET_NAME", "DEFAULT_COLLATION_NAME").
		From("INFORMATION_SCHEMA.SCHEMATA").
		OrderBy("SCHEMA_NAME")
	return build(sb)
}

func tablesQuery(schema string) database.Query {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select(
		"TABLE_SCHEMA", "TABLE_NAME", "ENGINE", "TABLE_ROWS", "AVG_ROW_LENGTH",
		"DATA_LENGTH", "TABLE_COMMENT", "CREATE_TIME", "UPDATE_TIME",
	).From("INFORMATION_SCHEMA.TABLES")
	if schema != "" {
		sb.Where(sb.Equal("TABLE_SCHEMA", schema))
	}
	sb.OrderBy("TABLE_SCHEMA", "TABLE_NAME")
	return build(sb)
}

func columnsQuery(tables []string, schema string) database.Query {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select(
		"TABLE_SCHEMA", "TABLE_NAME", "COLUMN_NAME", "ORDINAL_POSITION", "COLUMN_DEFAULT",
		"IS_NULLABLE", "DATA_TYPE", "CHARACTER_MAXIMUM_LENGTH", "NUMERIC_PRECISION",
		"NUMERIC_SCALE", "COLUMN_TYPE", "COLUMN_KEY", "EXTRA", "COLUMN_COMMENT",
	).From("INFORMATION_SCHEMA.COLUMNS")
	sb.Where(sb.In("TABLE_NAME", anySlice(tables)...))
	if schema != "" {
		sb.Where(sb.Equal("TABLE_SCHEMA", schema))
	}
	sb.OrderBy("TABLE_NAME", "ORDINAL_POSITION")
	return build(sb)
}

// indexesQuery orders by table, index and position. TABLE_SCHEMA only breaks
// ties between same-named tables when no schema is given.
func indexesQuery(tables []string, schema string) database.Query {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select(
		"TABLE_SCHEMA", "TABLE_NAME", "INDEX_NAME", "NON_UNIQUE", "COLUMN_NAME",
		"SEQ_IN_INDEX", "COLLATION", "CARDINALITY", "INDEX_TYPE",
	).From("INFORMATION_SCHEMA.STATISTICS")
	sb.Where(sb.In("TABLE_NAME", anySlice(tables)...))
	if schema != "" {
		sb.Where(sb.Equal("TABLE_SCHEMA", schema))
	}
	sb.OrderBy("TABLE_NAME", "INDEX_NAME", "SEQ_IN_INDEX", "TABLE_SCHEMA")
	return build(sb)
}

// foreignKeysQuery keeps only key columns that reference another table.
// KEY_COLUMN_USAGE also lists primary and unique key columns, which have no
// referenced table.
func foreignKeysQuery(tables []string, schema string) database.Query {
	sb := sqlbuilder.MySQL.NewSelectBuilder()
	sb.Select(
		sb.As("kcu.CONSTRAINT_NAME", "CONSTRAINT_NAME"),
		sb.As("kcu.TABLE_SCHEMA", "TABLE_SCHEMA"),
		sb.As("kcu.TABLE_NAME", "TABLE_NAME"),
		sb.As("kcu.COLUMN_NAME", "COLUMN_NAME"),
		sb.As("kcu.REFERENCED_TABLE_SCHEMA", "REFERENCED_TABLE_SCHEMA"),
		sb.As("kcu.REFERENCED_TABLE_NAME", "REFERENCED_TABLE_NAME"),
		sb.As("kcu.REFERENCED_COLUMN_NAME", "REFERENCED_COLUMN_NAME"),
		sb.As("rc.UPDATE_RULE", "UPDATE_RULE"),
		sb.As("rc.DELETE_RULE", "DELETE_RULE"),
	).
		From("INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu").
		Join("INFORMATION_SCHEMA.REFERENTIAL_CONSTRAINTS rc",
			"kcu.CONSTRAINT_NAME = rc.CONSTRAINT_NAME",
			"kcu.TABLE_SCHEMA = rc.CONSTRAINT_SCHEMA",
		)
	sb.Where(
		sb.In("kcu.TABLE_NAME", anySlice(tables)...),
		sb.IsNotNull("kcu.REFERENCED_TABLE_NAME"),
	)
	if schema != "" {
		sb.Where(sb.Equal("kcu.TABLE_SCHEMA", schema))
	}
	sb.OrderBy("kcu.TABLE_NAME", "kcu.CONSTRAINT_NAME", "kcu.ORDINAL_POSITION")
	return build(sb)
}
