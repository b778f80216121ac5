package catalog

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/mysql-schema-mcp/mcp/internal/database"
)

// rowReader extracts typed fields from a result row. The first failure is
// kept in err and later reads become no-ops.
type rowReader struct {
	source string
	row    database.Row
	err    error
}

func (r *rowReader) fail(col, format string, args ...any) {
	if r.err == nil {
		r.err = database.NewQueryError(fmt.Sprintf("%s: column %s: %s", r.source, col, fmt.Sprintf(format, args...)), nil)
	}
}

func (r *rowReader) value(col string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.row[col]
	if !ok {
		r.fail(col, "missing from result")
		return nil, false
	}
	return v, true
}

func (r *rowReader) required(col string) (any, bool) {
	v, ok := r.value(col)
	if ok && v == nil {
		r.fail(col, "unexpected NULL")
		return nil, false
	}
	return v, ok
}

func (r *rowReader) toString(col string, v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		r.fail(col, "%v", err)
	}
	return s
}

func (r *rowReader) toInt64(col string, v any) int64 {
	n, err := cast.ToInt64E(v)
	if err != nil {
		r.fail(col, "%v", err)
	}
	return n
}

// String reads a non-nullable text column.
func (r *rowReader) String(col string) string {
	v, ok := r.required(col)
	if !ok {
		return ""
	}
	return r.toString(col, v)
}

// NullString reads a nullable text column.
func (r *rowReader) NullString(col string) *string {
	v, ok := r.value(col)
	if !ok || v == nil {
		return nil
	}
	s := r.toString(col, v)
	return &s
}

// Int64 reads a non-nullable integer column.
func (r *rowReader) Int64(col string) int64 {
	v, ok := r.required(col)
	if !ok {
		return 0
	}
	return r.toInt64(col, v)
}

// NullInt64 reads a nullable integer column.
func (r *rowReader) NullInt64(col string) *int64 {
	v, ok := r.value(col)
	if !ok || v == nil {
		return nil
	}
	n := r.toInt64(col, v)
	return &n
}

// NullTime reads a nullable DATETIME or TIMESTAMP column. Text values are
// accepted for connections opened without parseTime.
func (r *rowReader) NullTime(col string) *Timestamp {
	v, ok := r.value(col)
	if !ok || v == nil {
		return nil
	}
	if t, ok := v.(time.Time); ok {
		return &Timestamp{Time: t}
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		r.fail(col, "%v", err)
		return nil
	}
	return &Timestamp{Time: t}
}

// mapRows converts every row with scan, stopping at the first row that does
// not match the column contract.
func mapRows[T any](source string, rows []database.Row, scan func(r *rowReader) T) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		r := &rowReader{source: source, row: row}
		item := scan(r)
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, item)
	}
	return out, nil
}

func scanDatabase(r *rowReader) DatabaseInfo {
	return DatabaseInfo{
		Name:         r.String("SCHEMA_NAME"),
		CharacterSet: r.String("DEFAULT_CHARACTER_SET_NAME"),
		Collation:    r.String("DEFAULT_COLLATION_NAME"),
	}
}

func scanTable(r *rowReader) TableInfo {
	return TableInfo{
		Schema:       r.String("TABLE_SCHEMA"),
		Name:         r.String("TABLE_NAME"),
		Engine:       r.NullString("ENGINE"),
		Rows:         r.NullInt64("TABLE_ROWS"),
		AvgRowLength: r.NullInt64("AVG_ROW_LENGTH"),
		DataLength:   r.NullInt64("DATA_LENGTH"),
		Comment:      r.NullString("TABLE_COMMENT"),
		CreateTime:   r.NullTime("CREATE_TIME"),
		UpdateTime:   r.NullTime("UPDATE_TIME"),
	}
}

func scanColumn(r *rowReader) ColumnInfo {
	return ColumnInfo{
		Schema:           r.String("TABLE_SCHEMA"),
		Table:            r.String("TABLE_NAME"),
		Name:             r.String("COLUMN_NAME"),
		Position:         r.Int64("ORDINAL_POSITION"),
		Default:          r.NullString("COLUMN_DEFAULT"),
		IsNullable:       r.String("IS_NULLABLE"),
		DataType:         r.String("DATA_TYPE"),
		MaxLength:        r.NullInt64("CHARACTER_MAXIMUM_LENGTH"),
		NumericPrecision: r.NullInt64("NUMERIC_PRECISION"),
		NumericScale:     r.NullInt64("NUMERIC_SCALE"),
		ColumnType:       r.String("COLUMN_TYPE"),
		ColumnKey:        r.String("COLUMN_KEY"),
		Extra:            r.String("EXTRA"),
		Comment:          r.String("COLUMN_COMMENT"),
	}
}

func scanIndex(r *rowReader) IndexInfo {
	return IndexInfo{
		Schema:      r.String("TABLE_SCHEMA"),
		Table:       r.String("TABLE_NAME"),
		Name:        r.String("INDEX_NAME"),
		NonUnique:   r.Int64("NON_UNIQUE"),
		ColumnName:  r.NullString("COLUMN_NAME"),
		SeqInIndex:  r.Int64("SEQ_IN_INDEX"),
		Collation:   r.NullString("COLLATION"),
		Cardinality: r.NullInt64("CARDINALITY"),
		IndexType:   r.String("INDEX_TYPE"),
	}
}

func scanForeignKey(r *rowReader) ForeignKeyInfo {
	return ForeignKeyInfo{
		ConstraintName:   r.String("CONSTRAINT_NAME"),
		Schema:           r.String("TABLE_SCHEMA"),
		Table:            r.String("TABLE_NAME"),
		Column:           r.String("COLUMN_NAME"),
		ReferencedSchema: r.String("REFERENCED_TABLE_SCHEMA"),
		ReferencedTable:  r.String("REFERENCED_TABLE_NAME"),
		ReferencedColumn: r.String("REFERENCED_COLUMN_NAME"),
		UpdateRule:       r.String("UPDATE_RULE"),
		DeleteRule:       r.String("DELETE_RULE"),
	}
}
