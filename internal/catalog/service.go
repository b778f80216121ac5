package catalog

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks github.com/mysql-schema-mcp/mcp/internal/catalog Service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mysql-schema-mcp/mcp/internal/database"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

// ErrTableRequired is returned when a single-table operation gets an empty name.
var ErrTableRequired = errors.New("table name is required")

// Service reads schema metadata from the server catalog. An empty database
// argument means every schema visible to the connected user.
type Service interface {
	// ListDatabases returns every schema ordered by name.
	ListDatabases(ctx context.Context) ([]DatabaseInfo, error)

	// ListTables returns tables ordered by schema and name.
	ListTables(ctx context.Context, database string) ([]TableInfo, error)

	// GetTableSchema returns columns, indexes and foreign keys for each
	// requested table. Every requested name is present in the result, with
	// empty sequences if the catalog knows nothing about it.
	GetTableSchema(ctx context.Context, tables []string, database string) (*TableSchemas, error)

	// GetIndexes returns the index participation rows of table ordered by
	// index name and position within the index.
	GetIndexes(ctx context.Context, table, database string) ([]IndexInfo, error)

	// GetForeignKeys returns the referencing columns of table's foreign keys
	// ordered by constraint name.
	GetForeignKeys(ctx context.Context, table, database string) ([]ForeignKeyInfo, error)
}

type service struct {
	sessions database.SessionFactory
	log      *logger.Service
}

// NewService returns a Service that opens one session per operation.
func NewService(sessions database.SessionFactory, log *logger.Service) Service {
	if log == nil {
		log = logger.Discard()
	}
	return &service{sessions: sessions, log: log}
}

// withSession runs fn on a fresh session and closes it afterwards.
func (s *service) withSession(ctx context.Context, op string, fn func(database.Session) error) error {
	if s.sessions == nil {
		return database.NewConnectivityError("no session factory configured", nil)
	}
	session, err := s.sessions.NewSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			s.log.Warn("Failed to close session", "operation", op, "error", cerr)
		}
	}()
	return fn(session)
}

func (s *service) ListDatabases(ctx context.Context) ([]DatabaseInfo, error) {
	var result []DatabaseInfo
	err := s.withSession(ctx, "list_databases", func(session database.Session) error {
		rows, err := session.Query(ctx, databasesQuery())
		if err != nil {
			return err
		}
		result, err = mapRows("SCHEMATA", rows, scanDatabase)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}
	return result, nil
}

func (s *service) ListTables(ctx context.Context, schema string) ([]TableInfo, error) {
	var result []TableInfo
	err := s.withSession(ctx, "list_tables", func(session database.Session) error {
		rows, err := session.Query(ctx, tablesQuery(schema))
		if err != nil {
			return err
		}
		result, err = mapRows("TABLES", rows, scanTable)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return result, nil
}

func (s *service) GetIndexes(ctx context.Context, table, schema string) ([]IndexInfo, error) {
	if table == "" {
		return nil, ErrTableRequired
	}
	var result []IndexInfo
	err := s.withSession(ctx, "get_indexes", func(session database.Session) error {
		rows, err := session.Query(ctx, indexesQuery([]string{table}, schema))
		if err != nil {
			return err
		}
		result, err = mapRows("STATISTICS", rows, scanIndex)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get indexes of %s: %w", table, err)
	}
	return result, nil
}

func (s *service) GetForeignKeys(ctx context.Context, table, schema string) ([]ForeignKeyInfo, error) {
	if table == "" {
		return nil, ErrTableRequired
	}
	var result []ForeignKeyInfo
	err := s.withSession(ctx, "get_foreign_keys", func(session database.Session) error {
		rows, err := session.Query(ctx, foreignKeysQuery([]string{table}, schema))
		if err != nil {
			return err
		}
		result, err = mapRows("KEY_COLUMN_USAGE", rows, scanForeignKey)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get foreign keys of %s: %w", table, err)
	}
	return result, nil
}

func (s *service) GetTableSchema(ctx context.Context, tables []string, schema string) (*TableSchemas, error) {
	schemas := NewTableSchemas(tables)
	if schemas.Len() == 0 {
		return schemas, nil
	}
	names := schemas.Names()

	err := s.withSession(ctx, "get_table_schema", func(session database.Session) error {
		columns, err := queryAndMap(ctx, session, columnsQuery(names, schema), "COLUMNS", scanColumn)
		if err != nil {
			return err
		}
		indexes, err := queryAndMap(ctx, session, indexesQuery(names, schema), "STATISTICS", scanIndex)
		if err != nil {
			return err
		}
		foreignKeys, err := queryAndMap(ctx, session, foreignKeysQuery(names, schema), "KEY_COLUMN_USAGE", scanForeignKey)
		if err != nil {
			return err
		}

		for _, c := range columns {
			ts, err := schemas.lookup("COLUMNS", c.Table)
			if err != nil {
				return err
			}
			ts.Columns = append(ts.Columns, c)
		}
		for _, i := range indexes {
			ts, err := schemas.lookup("STATISTICS", i.Table)
			if err != nil {
				return err
			}
			ts.Indexes = append(ts.Indexes, i)
		}
		for _, fk := range foreignKeys {
			ts, err := schemas.lookup("KEY_COLUMN_USAGE", fk.Table)
			if err != nil {
				return err
			}
			ts.ForeignKeys = append(ts.ForeignKeys, fk)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get table schema: %w", err)
	}

	s.log.Debug("Assembled table schema", "tables", schemas.Len())
	return schemas, nil
}

func queryAndMap[T any](ctx context.Context, session database.Session, q database.Query, source string, scan func(*rowReader) T) ([]T, error) {
	rows, err := session.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapRows(source, rows, scan)
}

// lookup returns the aggregate of a row's table. A table that was not
// requested means the catalog returned a name that does not match the
// request exactly, which would misattribute the row.
func (s *TableSchemas) lookup(source, table string) (*TableSchema, error) {
	ts, ok := s.m.Get(table)
	if !ok {
		return nil, database.NewQueryError(fmt.Sprintf("%s: row for table %q which was not requested", source, table), nil)
	}
	return ts, nil
}
