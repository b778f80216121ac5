package database

//go:generate mockgen -destination=mocks/mock_database.go -package=mocks github.com/mysql-schema-mcp/mcp/internal/database SessionFactory,Session

import (
	"context"
)

// Query is a SQL statement with positional "?" arguments.
type Query struct {
	SQL  string
	Args []any
}

// Row maps a result column name to its value. Text and binary columns are
// delivered as string, integers as int64 or uint64, timestamps as time.Time
// and SQL NULL as nil.
type Row map[string]any

// Session is a single connection to the server, used for the queries of one
// operation and then closed.
type Session interface {
	// Query runs q and returns every row in server order.
	Query(ctx context.Context, q Query) ([]Row, error)

	Close() error
}

// SessionFactory opens sessions.
type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}
