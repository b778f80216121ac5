package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mysql-schema-mcp/mcp/internal/catalog"
	"github.com/mysql-schema-mcp/mcp/internal/cli"
	"github.com/mysql-schema-mcp/mcp/internal/config"
	"github.com/mysql-schema-mcp/mcp/internal/database"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
	"github.com/mysql-schema-mcp/mcp/internal/server"
)

// Version is overridden at build time with -ldflags "-X main.Version=..."
var Version = "development"

const shutdownTimeout = 10 * time.Second

func main() {
	cli.HandleArgs(Version)

	overrides, err := cli.ParseOverrides(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	cfg, err := config.LoadConfig(overrides)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// stdout carries the stdio transport, so logs always go to stderr.
	logService := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	dbService, err := database.NewMySQLService(cfg, logService)
	if err != nil {
		logService.Error("Failed to create database service", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbService.Close(); err != nil {
			logService.Warn("Error closing database service", "error", err)
		}
	}()

	catalogService := catalog.NewService(dbService, logService)
	mcpServer := server.NewSchemaMCPServer(Version, cfg, catalogService, dbService, logService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		// Start blocks until the transport stops.
		errCh <- mcpServer.Start(ctx)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if stopErr := mcpServer.Stop(shutdownCtx); stopErr != nil {
			logService.Error("Error stopping server", "error", stopErr)
		}
		cancel()
		err = <-errCh
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logService.Error("Server error", "error", err)
		_ = dbService.Close()
		os.Exit(1)
	}
}
