package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/mysql-schema-mcp/mcp/internal/config"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

// MySQLService is the SessionFactory backed by a MySQL server.
// It is safe for concurrent use.
type MySQLService struct {
	db   *sql.DB
	addr string
	log  *logger.Service
}

// NewDriverConfig translates the application configuration into a connector
// configuration for go-sql-driver/mysql.
func NewDriverConfig(cfg *config.Config) *mysql.Config {
	dc := mysql.NewConfig()
	dc.User = cfg.User
	dc.Passwd = cfg.Password
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	dc.DBName = cfg.Database
	dc.ParseTime = true
	dc.Timeout = cfg.ConnectTimeout
	return dc
}

// NewMySQLService creates the service. No connection is made until the first
// session is requested.
func NewMySQLService(cfg *config.Config, log *logger.Service) (*MySQLService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if log == nil {
		log = logger.Discard()
	}

	dc := NewDriverConfig(cfg)
	connector, err := mysql.NewConnector(dc)
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL connector: %w", err)
	}

	db := sql.OpenDB(connector)
	// every session dials its own connection and drops it on Close
	db.SetMaxIdleConns(0)

	return &MySQLService{db: db, addr: dc.Addr, log: log}, nil
}

// NewSession dials the server and checks the connection is usable.
func (s *MySQLService) NewSession(ctx context.Context) (Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, NewConnectivityError(fmt.Sprintf("failed to connect to %s", s.addr), err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, NewConnectivityError(fmt.Sprintf("failed to ping %s", s.addr), err)
	}
	return &mysqlSession{conn: conn, log: s.log}, nil
}

// VerifyConnectivity opens and closes one session.
func (s *MySQLService) VerifyConnectivity(ctx context.Context) error {
	session, err := s.NewSession(ctx)
	if err != nil {
		s.log.Error("Failed to verify database connectivity", "addr", s.addr, "error", err)
		return err
	}
	return session.Close()
}

// Close releases the underlying handle.
func (s *MySQLService) Close() error {
	return s.db.Close()
}

type mysqlSession struct {
	conn *sql.Conn
	log  *logger.Service
}

func (s *mysqlSession) Query(ctx context.Context, q Query) ([]Row, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		s.log.Debug("Query failed", "sql", q.SQL, "error", err)
		return nil, NewQueryError("failed to execute query", err)
	}

	result, err := scanRows(rows)
	if err != nil {
		return nil, NewQueryError("failed to read query result", err)
	}
	s.log.Debug("Query executed", "sql", q.SQL, "rows", len(result), "duration", time.Since(start))
	return result, nil
}

func (s *mysqlSession) Close() error {
	return s.conn.Close()
}
