package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mysql-schema-mcp/mcp/internal/config"
)

// osExit is a variable that can be mocked in tests
var osExit = os.Exit

const programName = "mysql-schema-mcp"

const helpText = `mysql-schema-mcp - MySQL Schema Model Context Protocol Server

Usage:
  mysql-schema-mcp [OPTIONS]

Options:
  -h, --help                          Show this help message
  -v, --version                       Show version information
  --config <FILE>                     YAML configuration file
  --mysql-host <HOST>                 MySQL host (overrides env var)
  --mysql-port <PORT>                 MySQL port (overrides env var)
  --mysql-user <USER>                 MySQL user (overrides env var)
  --mysql-password <PASSWORD>         MySQL password (overrides env var)
  --mysql-database <DATABASE>         Schema selected on connect (overrides env var)
  --transport <MODE>                  MCP transport: stdio or http (default: stdio)
  --http-host <HOST>                  HTTP listen host (default: 127.0.0.1)
  --http-port <PORT>                  HTTP listen port (default: 8080)

Environment Variables:
  MYSQL_HOST        MySQL host (default: localhost)
  MYSQL_PORT        MySQL port (default: 3306)
  MYSQL_USER        MySQL user (default: root)
  MYSQL_PASSWORD    MySQL password (default: empty)
  MYSQL_DATABASE    Schema selected on connect (default: information_schema)
  MYSQL_CONNECT_TIMEOUT           Dial timeout, e.g. 10s
  MYSQL_MCP_CONFIG_FILE           YAML configuration file
  MYSQL_MCP_LOG_LEVEL             debug, info, notice, warning, error, ... (default: info)
  MYSQL_MCP_LOG_FORMAT            text or json (default: text)
  MYSQL_MCP_TRANSPORT             stdio or http (default: stdio)
  MYSQL_MCP_HTTP_HOST             HTTP listen host
  MYSQL_MCP_HTTP_PORT             HTTP listen port
  MYSQL_MCP_HTTP_ALLOWED_ORIGINS  Comma-separated CORS origins, "*" for all
  MYSQL_MCP_HTTP_TLS_CERT_FILE    TLS certificate, enables HTTPS with the key file
  MYSQL_MCP_HTTP_TLS_KEY_FILE     TLS private key

Precedence: CLI flags, then environment variables, then the configuration file, then defaults.

Examples:
  # Using environment variables
  MYSQL_HOST=db.internal MYSQL_USER=reader MYSQL_PASSWORD=secret mysql-schema-mcp

  # Using CLI flags (takes precedence over environment variables)
  mysql-schema-mcp --mysql-host db.internal --mysql-user reader --transport http
`

// valueFlags are the configuration flags that take a value.
var valueFlags = map[string]bool{
	"--config":         true,
	"--mysql-host":     true,
	"--mysql-port":     true,
	"--mysql-user":     true,
	"--mysql-password": true,
	"--mysql-database": true,
	"--transport":      true,
	"--http-host":      true,
	"--http-port":      true,
}

/*
Example walkthrough for argument parsing:

mysql-schema-mcp --mysql-host db.internal --mysql-user reader

os.Args:
- os.Args[0] = "mysql-schema-mcp"
- os.Args[1] = "--mysql-host"
- os.Args[2] = "db.internal"
- os.Args[3] = "--mysql-user"
- os.Args[4] = "reader"

As the loop processes:
1. i=1: "--mysql-host" is a value flag → i += 2 → i=3 (skips the host value)
2. i=3: "--mysql-user" is a value flag → i += 2 → i=5 (skips "reader")
3. i=5: Loop ends

Configuration flags pass through untouched so that ParseOverrides can later read them.
*/

// HandleArgs processes command-line arguments for version and help flags.
// It exits the program after displaying the requested information.
// If unknown flags are encountered, it prints an error message and exits.
func HandleArgs(version string) {
	if len(os.Args) <= 1 {
		return
	}

	flags := make(map[string]bool)
	var err error
	i := 1 // os.Args[0] is the program name

	for i < len(os.Args) {
		arg := os.Args[i]
		switch {
		case arg == "-h" || arg == "--help":
			flags["help"] = true
			i++
		case arg == "-v" || arg == "--version":
			flags["version"] = true
			i++
		case valueFlags[arg]:
			if i+1 >= len(os.Args) {
				err = fmt.Errorf("%s requires a value", arg)
				break
			}
			nextArg := os.Args[i+1]
			if strings.HasPrefix(nextArg, "--") {
				err = fmt.Errorf("%s requires a value (got flag %s instead)", arg, nextArg)
				break
			}
			i += 2
		case arg == "--":
			i = len(os.Args)
		default:
			err = fmt.Errorf("unknown flag or argument: %s", arg)
			i++
		}
		if err != nil {
			break
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}

	if flags["help"] {
		fmt.Print(helpText)
		osExit(0)
	}

	if flags["version"] {
		fmt.Printf("%s version: %s\n", programName, version)
		osExit(0)
	}
}

// ParseOverrides reads the configuration flags from args (without the
// program name). Help and version flags must already have been handled.
func ParseOverrides(args []string) (*config.CLIOverrides, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	overrides := &config.CLIOverrides{}
	fs.StringVar(&overrides.ConfigFile, "config", "", "YAML configuration file")
	fs.StringVar(&overrides.Host, "mysql-host", "", "MySQL host")
	fs.StringVar(&overrides.Port, "mysql-port", "", "MySQL port")
	fs.StringVar(&overrides.User, "mysql-user", "", "MySQL user")
	fs.StringVar(&overrides.Password, "mysql-password", "", "MySQL password")
	fs.StringVar(&overrides.Database, "mysql-database", "", "schema selected on connect")
	fs.StringVar(&overrides.TransportMode, "transport", "", "MCP transport")
	fs.StringVar(&overrides.HTTPHost, "http-host", "", "HTTP listen host")
	fs.StringVar(&overrides.HTTPPort, "http-port", "", "HTTP listen port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}
	return overrides, nil
}
