package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mysql-schema-mcp/mcp/internal/catalog"
	"github.com/mysql-schema-mcp/mcp/internal/config"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

const (
	serverName            = "mysql-schema-mcp"
	mcpEndpoint           = "/mcp"
	httpReadHeaderTimeout = 10 * time.Second
)

// ConnectivityVerifier checks the database is reachable before serving.
type ConnectivityVerifier interface {
	VerifyConnectivity(ctx context.Context) error
}

// SchemaMCPServer represents the MCP server instance
type SchemaMCPServer struct {
	MCPServer  *server.MCPServer
	httpServer *http.Server
	config     *config.Config
	catalog    catalog.Service
	verifier   ConnectivityVerifier
	log        *logger.Service
	version    string
}

// NewSchemaMCPServer creates a new MCP server instance.
// The config parameter is expected to be already validated. verifier may be
// nil, in which case Start does not check the database first.
func NewSchemaMCPServer(version string, cfg *config.Config, catalogService catalog.Service, verifier ConnectivityVerifier, log *logger.Service) *SchemaMCPServer {
	if log == nil {
		log = logger.Discard()
	}
	s := &SchemaMCPServer{
		config:   cfg,
		catalog:  catalogService,
		verifier: verifier,
		log:      log,
		version:  version,
	}

	hooks := &server.Hooks{}
	hooks.AddAfterSetLevel(s.onAfterSetLevelHook)

	s.MCPServer = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithHooks(hooks),
		server.WithInstructions("This MCP server describes the structure of a MySQL server. "+
			"Start with list_databases and list_tables, then use get_table_schema to read columns, indexes and foreign keys of several tables at once. "+
			"get_indexes and get_foreign_keys answer the same questions for a single table. All tools are read-only."),
	)

	// Built up front so that Stop can always reach it, even before Start serves.
	if cfg != nil && cfg.TransportMode == config.TransportModeHTTP {
		s.httpServer = &http.Server{
			Addr:              net.JoinHostPort(cfg.HTTPHost, cfg.HTTPPort),
			Handler:           s.HTTPHandler(),
			ReadHeaderTimeout: httpReadHeaderTimeout,
		}
	}

	return s
}

// Start registers the tools, verifies connectivity and serves the configured
// transport until it stops. It blocks.
func (s *SchemaMCPServer) Start(ctx context.Context) error {
	s.log.Info("Starting MySQL schema MCP server", "version", s.version, "transport", s.config.TransportMode)

	if err := s.RegisterTools(); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	if s.verifier != nil {
		if err := s.verifier.VerifyConnectivity(ctx); err != nil {
			return fmt.Errorf("failed to verify database connectivity: %w", err)
		}
		s.log.Info("Verified database connectivity", "host", s.config.Host, "port", s.config.Port)
	}

	switch s.config.TransportMode {
	case config.TransportModeHTTP:
		return s.startHTTP()
	case config.TransportModeStdio, "":
		s.log.Info("Started MySQL schema MCP server. Now listening for input...")
		stdio := server.NewStdioServer(s.MCPServer)
		stdio.SetErrorLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelError))
		return stdio.Listen(ctx, os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unsupported transport mode: %s", s.config.TransportMode)
	}
}

// HTTPHandler returns the router serving the MCP endpoint over streamable HTTP.
func (s *SchemaMCPServer) HTTPHandler() http.Handler {
	mcpHandler := server.NewStreamableHTTPServer(
		s.MCPServer,
		server.WithEndpointPath(mcpEndpoint),
		server.WithStateLess(true),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(parseAllowedOrigins(s.config.HTTPAllowedOrigins)))
	r.Use(loggingMiddleware(s.log))
	r.NotFound(notFoundHandler)
	r.Handle(mcpEndpoint, mcpHandler)
	return r
}

func (s *SchemaMCPServer) startHTTP() error {
	addr := s.httpServer.Addr

	var err error
	if s.config.TLSEnabled() {
		s.log.Info("Started MySQL schema MCP HTTPS server", "url", "https://"+addr+mcpEndpoint)
		err = s.httpServer.ListenAndServeTLS(s.config.HTTPTLSCertFile, s.config.HTTPTLSKeyFile)
	} else {
		s.log.Info("Started MySQL schema MCP HTTP server", "url", "http://"+addr+mcpEndpoint)
		if s.config.HTTPHost != "127.0.0.1" && s.config.HTTPHost != "localhost" {
			s.log.Warn("HTTP server is reachable beyond localhost without TLS", "host", s.config.HTTPHost)
		}
		err = s.httpServer.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully stops the HTTP server. It is safe to call before or while
// Start runs; a stopped server makes Start return nil. Stdio mode ends when
// the context passed to Start is cancelled or its input closes.
func (s *SchemaMCPServer) Stop(ctx context.Context) error {
	s.log.Info("Stopping MySQL schema MCP server...")
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
