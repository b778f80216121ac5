package catalog

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TimestampLayout is the wire format of catalog timestamps. The server's
// wall clock value is rendered as is, without an offset.
const TimestampLayout = "2006-01-02T15:04:05"

// DatabaseInfo describes one schema.
type DatabaseInfo struct {
	Name         string `json:"schema_name"`
	CharacterSet string `json:"character_set"`
	Collation    string `json:"collation"`
}

// TableInfo describes one table. Statistics are estimates maintained by the
// server and may be null for views or engines that do not report them.
type TableInfo struct {
	Schema       string     `json:"schema"`
	Name         string     `json:"name"`
	Engine       *string    `json:"engine"`
	Rows         *int64     `json:"rows"`
	AvgRowLength *int64     `json:"avg_row_length"`
	DataLength   *int64     `json:"data_length"`
	Comment      *string    `json:"comment"`
	CreateTime   *Timestamp `json:"create_time"`
	UpdateTime   *Timestamp `json:"update_time"`
}

// ColumnInfo describes one column of one table.
type ColumnInfo struct {
	Schema           string  `json:"schema"`
	Table            string  `json:"table"`
	Name             string  `json:"name"`
	Position         int64   `json:"position"`
	Default          *string `json:"default"`
	IsNullable       string  `json:"is_nullable"`
	DataType         string  `json:"data_type"`
	MaxLength        *int64  `json:"max_length"`
	NumericPrecision *int64  `json:"numeric_precision"`
	NumericScale     *int64  `json:"numeric_scale"`
	ColumnType       string  `json:"column_type"`
	ColumnKey        string  `json:"column_key"`
	Extra            string  `json:"extra"`
	Comment          string  `json:"comment"`
}

// Nullable reports whether the column accepts NULL.
func (c ColumnInfo) Nullable() bool {
	return c.IsNullable == "YES"
}

// IndexInfo is one column's participation in an index. An index spanning
// several columns yields one IndexInfo per column sharing the same Name.
type IndexInfo struct {
	Schema    string `json:"schema"`
	Table     string `json:"table"`
	Name      string `json:"name"`
	NonUnique int64  `json:"non_unique"`
	// ColumnName is nil for functional key parts.
	ColumnName  *string `json:"column_name"`
	SeqInIndex  int64   `json:"seq_in_index"`
	Collation   *string `json:"collation"`
	Cardinality *int64  `json:"cardinality"`
	IndexType   string  `json:"index_type"`
}

// Unique reports whether the index rejects duplicate keys.
func (i IndexInfo) Unique() bool {
	return i.NonUnique == 0
}

// ForeignKeyInfo is one referencing column of a foreign key constraint.
type ForeignKeyInfo struct {
	ConstraintName   string `json:"constraint_name"`
	Schema           string `json:"schema"`
	Table            string `json:"table"`
	Column           string `json:"column"`
	ReferencedSchema string `json:"referenced_schema"`
	ReferencedTable  string `json:"referenced_table"`
	ReferencedColumn string `json:"referenced_column"`
	UpdateRule       string `json:"update_rule"`
	DeleteRule       string `json:"delete_rule"`
}

// TableSchema is the combined structure of one table.
type TableSchema struct {
	Columns     []ColumnInfo     `json:"columns"`
	Indexes     []IndexInfo      `json:"indexes"`
	ForeignKeys []ForeignKeyInfo `json:"foreign_keys"`
}

func newTableSchema() *TableSchema {
	return &TableSchema{
		Columns:     []ColumnInfo{},
		Indexes:     []IndexInfo{},
		ForeignKeys: []ForeignKeyInfo{},
	}
}

// TableSchemas maps table names to their TableSchema, keeping the order in
// which the names were requested. It encodes as a JSON object.
type TableSchemas struct {
	m *orderedmap.OrderedMap[string, *TableSchema]
}

// NewTableSchemas holds one empty TableSchema per distinct name, in order.
func NewTableSchemas(names []string) *TableSchemas {
	m := orderedmap.New[string, *TableSchema](len(names))
	for _, name := range names {
		if _, ok := m.Get(name); !ok {
			m.Set(name, newTableSchema())
		}
	}
	return &TableSchemas{m: m}
}

// Get returns the schema of table.
func (s *TableSchemas) Get(table string) (*TableSchema, bool) {
	return s.m.Get(table)
}

// Len returns the number of tables.
func (s *TableSchemas) Len() int {
	return s.m.Len()
}

// Names returns the table names in request order.
func (s *TableSchemas) Names() []string {
	names := make([]string, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (s *TableSchemas) MarshalJSON() ([]byte, error) {
	return s.m.MarshalJSON()
}

func (s *TableSchemas) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, *TableSchema]()
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	s.m = m
	return nil
}
