package database

// resultSet is the part of *sql.Rows that scanRows reads.
type resultSet interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// scanRows drains and closes rs. The result is never nil.
func scanRows(rs resultSet) ([]Row, error) {
	defer rs.Close()

	columns, err := rs.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]Row, 0)
	for rs.Next() {
		dest := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range dest {
			ptrs[i] = &dest[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalize(dest[i])
		}
		result = append(result, row)
	}
	if err := rs.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// normalize turns the driver's []byte for text columns into string.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
