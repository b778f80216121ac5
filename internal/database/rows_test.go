package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResultSet struct {
	columns  []string
	values   [][]any
	pos      int
	scanErr  error
	iterErr  error
	closed   bool
	colError error
}

func (f *fakeResultSet) Columns() ([]string, error) { return f.columns, f.colError }

func (f *fakeResultSet) Next() bool {
	if f.pos >= len(f.values) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeResultSet) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	for i, v := range f.values[f.pos-1] {
		*(dest[i].(*any)) = v
	}
	return nil
}

func (f *fakeResultSet) Err() error   { return f.iterErr }
func (f *fakeResultSet) Close() error { f.closed = true; return nil }

func TestScanRows(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	t.Run("maps columns and normalizes bytes", func(t *testing.T) {
		rs := &fakeResultSet{
			columns: []string{"TABLE_NAME", "TABLE_ROWS", "CREATE_TIME", "TABLE_COMMENT"},
			values: [][]any{
				{[]byte("orders"), int64(42), created, nil},
				{"customers", uint64(7), nil, []byte("")},
			},
		}

		rows, err := scanRows(rs)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, Row{"TABLE_NAME": "orders", "TABLE_ROWS": int64(42), "CREATE_TIME": created, "TABLE_COMMENT": nil}, rows[0])
		assert.Equal(t, "customers", rows[1]["TABLE_NAME"])
		assert.Equal(t, "", rows[1]["TABLE_COMMENT"])
		assert.True(t, rs.closed)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		rows, err := scanRows(&fakeResultSet{columns: []string{"SCHEMA_NAME"}})
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("scan failure", func(t *testing.T) {
		rs := &fakeResultSet{columns: []string{"A"}, values: [][]any{{1}}, scanErr: errors.New("bad scan")}
		_, err := scanRows(rs)
		assert.EqualError(t, err, "bad scan")
		assert.True(t, rs.closed)
	})

	t.Run("iteration failure", func(t *testing.T) {
		_, err := scanRows(&fakeResultSet{columns: []string{"A"}, iterErr: errors.New("connection reset")})
		assert.EqualError(t, err, "connection reset")
	})

	t.Run("columns failure", func(t *testing.T) {
		_, err := scanRows(&fakeResultSet{colError: errors.New("no columns")})
		assert.EqualError(t, err, "no columns")
	})
}
