package config

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/mysql-schema-mcp/mcp/internal/logger"
)

type TransportMode string

const (
	TransportModeStdio TransportMode = "stdio"
	TransportModeHTTP  TransportMode = "http"
)

// ValidTransportModes defines the allowed transport mode values
var ValidTransportModes = []TransportMode{TransportModeStdio, TransportModeHTTP}

// Defaults applied before the config file, environment and CLI flags.
const (
	DefaultHost           = "localhost"
	DefaultPort           = 3306
	DefaultUser           = "root"
	DefaultDatabase       = "information_schema"
	DefaultConnectTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultHTTPHost       = "127.0.0.1"
	DefaultHTTPPort       = "8080"
)

// Config holds the application configuration
type Config struct {
	Host           string        // MySQL server host
	Port           int           // MySQL server port
	User           string        // MySQL user
	Password       string        // MySQL password, may be empty
	Database       string        // schema selected on connect
	ConnectTimeout time.Duration // dial timeout for every new connection

	LogLevel  string
	LogFormat string

	TransportMode      TransportMode // MCP transport ("stdio" or "http")
	HTTPHost           string        // HTTP server host
	HTTPPort           string        // HTTP server port
	HTTPAllowedOrigins string        // comma-separated CORS origins, "*" for all, empty disables CORS
	HTTPTLSCertFile    string        // enables HTTPS together with HTTPTLSKeyFile
	HTTPTLSKeyFile     string
}

// Default returns a configuration populated with the documented defaults.
func Default() *Config {
	return &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		User:           DefaultUser,
		Database:       DefaultDatabase,
		ConnectTimeout: DefaultConnectTimeout,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		TransportMode:  TransportModeStdio,
		HTTPHost:       DefaultHTTPHost,
		HTTPPort:       DefaultHTTPPort,
	}
}

// TLSEnabled reports whether the HTTP transport should serve HTTPS.
func (c *Config) TLSEnabled() bool {
	return c.HTTPTLSCertFile != "" || c.HTTPTLSKeyFile != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is required but was nil")
	}

	if c.Host == "" {
		return fmt.Errorf("MySQL host is required but was empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("MySQL port must be between 1 and 65535, got %d", c.Port)
	}
	if c.User == "" {
		return fmt.Errorf("MySQL user is required but was empty")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive, got %s", c.ConnectTimeout)
	}

	if c.TransportMode == "" {
		c.TransportMode = TransportModeStdio
	}
	if !slices.Contains(ValidTransportModes, c.TransportMode) {
		return fmt.Errorf("invalid transport mode '%s', must be one of %v", c.TransportMode, ValidTransportModes)
	}

	if c.TransportMode == TransportModeHTTP && c.TLSEnabled() {
		if c.HTTPTLSCertFile == "" {
			return fmt.Errorf("TLS certificate file is required when a TLS key is set (set MYSQL_MCP_HTTP_TLS_CERT_FILE)")
		}
		if c.HTTPTLSKeyFile == "" {
			return fmt.Errorf("TLS key file is required when a TLS certificate is set (set MYSQL_MCP_HTTP_TLS_KEY_FILE)")
		}
		if _, err := tls.LoadX509KeyPair(c.HTTPTLSCertFile, c.HTTPTLSKeyFile); err != nil {
			return fmt.Errorf("failed to load TLS certificate and key: %w", err)
		}
	}

	return nil
}

// CLIOverrides holds optional configuration values from CLI flags
type CLIOverrides struct {
	ConfigFile    string
	Host          string
	Port          string
	User          string
	Password      string
	Database      string
	TransportMode string
	HTTPHost      string
	HTTPPort      string
}

// LoadConfig builds the configuration from defaults, the optional YAML file,
// environment variables and CLI overrides, in increasing order of precedence.
func LoadConfig(cliOverrides *CLIOverrides) (*Config, error) {
	cfg := Default()

	configFile := GetEnv("MYSQL_MCP_CONFIG_FILE")
	if cliOverrides != nil && cliOverrides.ConfigFile != "" {
		configFile = cliOverrides.ConfigFile
	}
	if configFile != "" {
		fc, err := loadFile(configFile)
		if err != nil {
			return nil, err
		}
		fc.apply(cfg)
	}

	cfg.Host = GetEnvWithDefault("MYSQL_HOST", cfg.Host)
	cfg.Port = ParseInt(GetEnv("MYSQL_PORT"), cfg.Port)
	cfg.User = GetEnvWithDefault("MYSQL_USER", cfg.User)
	// an empty password is valid, so a set-but-empty variable still overrides
	if password, ok := os.LookupEnv("MYSQL_PASSWORD"); ok {
		cfg.Password = password
	}
	cfg.Database = GetEnvWithDefault("MYSQL_DATABASE", cfg.Database)
	cfg.ConnectTimeout = ParseDuration(GetEnv("MYSQL_CONNECT_TIMEOUT"), cfg.ConnectTimeout)
	cfg.LogLevel = GetEnvWithDefault("MYSQL_MCP_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = GetEnvWithDefault("MYSQL_MCP_LOG_FORMAT", cfg.LogFormat)
	cfg.TransportMode = TransportMode(GetEnvWithDefault("MYSQL_MCP_TRANSPORT", string(cfg.TransportMode)))
	cfg.HTTPHost = GetEnvWithDefault("MYSQL_MCP_HTTP_HOST", cfg.HTTPHost)
	cfg.HTTPPort = GetEnvWithDefault("MYSQL_MCP_HTTP_PORT", cfg.HTTPPort)
	cfg.HTTPAllowedOrigins = GetEnvWithDefault("MYSQL_MCP_HTTP_ALLOWED_ORIGINS", cfg.HTTPAllowedOrigins)
	cfg.HTTPTLSCertFile = GetEnvWithDefault("MYSQL_MCP_HTTP_TLS_CERT_FILE", cfg.HTTPTLSCertFile)
	cfg.HTTPTLSKeyFile = GetEnvWithDefault("MYSQL_MCP_HTTP_TLS_KEY_FILE", cfg.HTTPTLSKeyFile)

	if cliOverrides != nil {
		if cliOverrides.Host != "" {
			cfg.Host = cliOverrides.Host
		}
		if cliOverrides.Port != "" {
			cfg.Port = ParseInt(cliOverrides.Port, cfg.Port)
		}
		if cliOverrides.User != "" {
			cfg.User = cliOverrides.User
		}
		if cliOverrides.Password != "" {
			cfg.Password = cliOverrides.Password
		}
		if cliOverrides.Database != "" {
			cfg.Database = cliOverrides.Database
		}
		if cliOverrides.TransportMode != "" {
			cfg.TransportMode = TransportMode(cliOverrides.TransportMode)
		}
		if cliOverrides.HTTPHost != "" {
			cfg.HTTPHost = cliOverrides.HTTPHost
		}
		if cliOverrides.HTTPPort != "" {
			cfg.HTTPPort = cliOverrides.HTTPPort
		}
	}

	if !slices.Contains(logger.ValidLogLevels, cfg.LogLevel) {
		fmt.Fprintf(os.Stderr, "Warning: invalid log level '%s', using default '%s'. Valid values: %v\n", cfg.LogLevel, DefaultLogLevel, logger.ValidLogLevels)
		cfg.LogLevel = DefaultLogLevel
	}
	if !slices.Contains(logger.ValidLogFormats, cfg.LogFormat) {
		fmt.Fprintf(os.Stderr, "Warning: invalid log format '%s', using default '%s'. Valid values: %v\n", cfg.LogFormat, DefaultLogFormat, logger.ValidLogFormats)
		cfg.LogFormat = DefaultLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the value of an environment variable or empty string if not set
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvWithDefault returns the value of an environment variable or a default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseInt parses a base-10 integer.
// Returns the default value if the string is empty or invalid.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: Invalid integer value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return parsed
}

// ParseDuration parses a Go duration string such as "5s" or "1m30s".
// Returns the default value if the string is empty or invalid.
func ParseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: Invalid duration value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return parsed
}
