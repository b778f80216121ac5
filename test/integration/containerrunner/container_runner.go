//go:build integration

package containerrunner

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/mysql-schema-mcp/mcp/internal/config"
	"github.com/mysql-schema-mcp/mcp/internal/database"
	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

const rootUser = "root"

var (
	container *tcmysql.MySQLContainer
	cfg       *config.Config
	once      sync.Once
)

// Start runs a MySQL container seeded with the given scripts, once per test binary.
func Start(ctx context.Context, scripts ...string) {
	once.Do(func() {
		startOnce(ctx, scripts)
	})
}

// Config returns a connection config for the running container.
func Config() *config.Config {
	if cfg == nil {
		log.Fatal("container is not started")
	}
	c := *cfg
	return &c
}

func startOnce(ctx context.Context, scripts []string) {
	password := config.GetEnvWithDefault("MYSQL_PASSWORD", "password")

	ctr, err := tcmysql.Run(ctx,
		config.GetEnvWithDefault("MYSQL_IMAGE", "mysql:8.4"),
		tcmysql.WithUsername(rootUser),
		tcmysql.WithPassword(password),
		tcmysql.WithScripts(scripts...),
	)
	if err != nil {
		log.Fatalf("failed to start shared mysql container: %v", err)
	}
	container = ctr

	host, err := ctr.Host(ctx)
	if err != nil {
		Close()
		log.Fatalf("failed to get container host: %v", err)
	}
	port, err := ctr.MappedPort(ctx, "3306/tcp")
	if err != nil {
		Close()
		log.Fatalf("failed to get container port: %v", err)
	}

	cfg = config.Default()
	cfg.Host = host
	cfg.Port = port.Int()
	cfg.User = rootUser
	cfg.Password = password

	if err := waitForConnectivity(ctx, cfg); err != nil {
		Close()
		log.Fatalf("failed to verify connectivity: %v", err)
	}
}

// Close terminates the shared container.
func Close() {
	if container == nil {
		return
	}
	if err := testcontainers.TerminateContainer(container); err != nil {
		log.Printf("Warning: failed to terminate container: %v", err)
	}
}

// waitForConnectivity waits for MySQL to accept connections with exponential backoff.
func waitForConnectivity(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	svc, err := database.NewMySQLService(cfg, logger.Discard())
	if err != nil {
		return err
	}
	defer svc.Close()

	backoff := 100 * time.Millisecond
	maxBackoff := 2 * time.Second

	var lastErr error
	for {
		if lastErr = svc.VerifyConnectivity(ctx); lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
		time.Sleep(backoff)
		backoff = min(backoff*2, maxBackoff)
	}
	return fmt.Errorf("mysql connectivity not ready: %w", lastErr)
}
