package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// configEnvKeys lists every variable LoadConfig reads, cleared before each case.
var configEnvKeys = []string{
	"MYSQL_MCP_CONFIG_FILE",
	"MYSQL_HOST", "MYSQL_PORT", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DATABASE", "MYSQL_CONNECT_TIMEOUT",
	"MYSQL_MCP_LOG_LEVEL", "MYSQL_MCP_LOG_FORMAT", "MYSQL_MCP_TRANSPORT",
	"MYSQL_MCP_HTTP_HOST", "MYSQL_MCP_HTTP_PORT", "MYSQL_MCP_HTTP_ALLOWED_ORIGINS",
	"MYSQL_MCP_HTTP_TLS_CERT_FILE", "MYSQL_MCP_HTTP_TLS_KEY_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		// Setenv records the original value for cleanup; then drop the key entirely.
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestConfig_Validate(t *testing.T) {
	certPath, keyPath := GenerateTestTLSCertificate(t)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		nilCfg  bool
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "nil config", nilCfg: true, wantErr: "configuration is required but was nil"},
		{name: "empty host", mutate: func(c *Config) { c.Host = "" }, wantErr: "MySQL host is required"},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: "MySQL port must be between 1 and 65535"},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "MySQL port must be between 1 and 65535"},
		{name: "empty user", mutate: func(c *Config) { c.User = "" }, wantErr: "MySQL user is required"},
		{name: "empty password is allowed", mutate: func(c *Config) { c.Password = "" }},
		{name: "empty database is allowed", mutate: func(c *Config) { c.Database = "" }},
		{name: "non-positive timeout", mutate: func(c *Config) { c.ConnectTimeout = 0 }, wantErr: "connect timeout must be positive"},
		{name: "empty transport defaults to stdio", mutate: func(c *Config) { c.TransportMode = "" }},
		{name: "unknown transport", mutate: func(c *Config) { c.TransportMode = "grpc" }, wantErr: "invalid transport mode 'grpc'"},
		{
			name: "http with cert but no key",
			mutate: func(c *Config) {
				c.TransportMode = TransportModeHTTP
				c.HTTPTLSCertFile = certPath
			},
			wantErr: "TLS key file is required",
		},
		{
			name: "http with missing cert files",
			mutate: func(c *Config) {
				c.TransportMode = TransportModeHTTP
				c.HTTPTLSCertFile = "/nonexistent/cert.pem"
				c.HTTPTLSKeyFile = "/nonexistent/key.pem"
			},
			wantErr: "failed to load TLS certificate and key",
		},
		{
			name: "http with valid TLS material",
			mutate: func(c *Config) {
				c.TransportMode = TransportModeHTTP
				c.HTTPTLSCertFile = certPath
				c.HTTPTLSKeyFile = keyPath
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg *Config
			if !tt.nilCfg {
				cfg = Default()
				tt.mutate(cfg)
			}

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got none", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error = %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 3306 || cfg.User != "root" || cfg.Password != "" {
		t.Errorf("unexpected connection defaults: %+v", cfg)
	}
	if cfg.Database != "information_schema" {
		t.Errorf("expected default database information_schema, got %q", cfg.Database)
	}
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %s", cfg.ConnectTimeout)
	}
	if cfg.TransportMode != TransportModeStdio {
		t.Errorf("expected stdio transport, got %q", cfg.TransportMode)
	}
}

func TestLoadConfig_EnvironmentAndOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_USER", "reader")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "shop")
	t.Setenv("MYSQL_CONNECT_TIMEOUT", "3s")

	t.Run("environment replaces defaults", func(t *testing.T) {
		cfg, err := LoadConfig(nil)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Host != "db.internal" || cfg.Port != 3307 || cfg.User != "reader" || cfg.Password != "secret" || cfg.Database != "shop" {
			t.Errorf("environment not applied: %+v", cfg)
		}
		if cfg.ConnectTimeout != 3*time.Second {
			t.Errorf("expected 3s timeout, got %s", cfg.ConnectTimeout)
		}
	})

	t.Run("CLI flags take precedence over environment", func(t *testing.T) {
		cfg, err := LoadConfig(&CLIOverrides{Host: "cli-host", Port: "3308", Database: "crm", TransportMode: "http"})
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Host != "cli-host" || cfg.Port != 3308 || cfg.Database != "crm" {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.User != "reader" {
			t.Errorf("expected user from environment, got %q", cfg.User)
		}
		if cfg.TransportMode != TransportModeHTTP {
			t.Errorf("expected http transport, got %q", cfg.TransportMode)
		}
	})

	t.Run("invalid port falls back to previous value", func(t *testing.T) {
		t.Setenv("MYSQL_PORT", "not-a-port")
		cfg, err := LoadConfig(nil)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Port != DefaultPort {
			t.Errorf("expected default port, got %d", cfg.Port)
		}
	})

	t.Run("invalid log settings fall back to defaults", func(t *testing.T) {
		t.Setenv("MYSQL_MCP_LOG_LEVEL", "chatty")
		t.Setenv("MYSQL_MCP_LOG_FORMAT", "xml")
		cfg, err := LoadConfig(nil)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat {
			t.Errorf("expected default log settings, got %q/%q", cfg.LogLevel, cfg.LogFormat)
		}
	})

	t.Run("invalid transport is rejected", func(t *testing.T) {
		t.Setenv("MYSQL_MCP_TRANSPORT", "carrier-pigeon")
		_, err := LoadConfig(nil)
		if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
			t.Errorf("expected invalid configuration error, got %v", err)
		}
	})
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "mcp.yaml")
	content := `
mysql:
  host: file-host
  port: 3310
  user: file-user
  database: inventory
  connect_timeout: 2s
log:
  level: debug
  format: json
transport:
  mode: http
  http_port: "9090"
  allowed_origins: "*"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Run("file values replace defaults", func(t *testing.T) {
		cfg, err := LoadConfig(&CLIOverrides{ConfigFile: path})
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Host != "file-host" || cfg.Port != 3310 || cfg.User != "file-user" || cfg.Database != "inventory" {
			t.Errorf("file values not applied: %+v", cfg)
		}
		if cfg.ConnectTimeout != 2*time.Second {
			t.Errorf("expected 2s timeout, got %s", cfg.ConnectTimeout)
		}
		if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
			t.Errorf("expected debug/json logging, got %q/%q", cfg.LogLevel, cfg.LogFormat)
		}
		if cfg.TransportMode != TransportModeHTTP || cfg.HTTPPort != "9090" || cfg.HTTPAllowedOrigins != "*" {
			t.Errorf("transport values not applied: %+v", cfg)
		}
		if cfg.HTTPHost != DefaultHTTPHost {
			t.Errorf("expected untouched default http host, got %q", cfg.HTTPHost)
		}
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		t.Setenv("MYSQL_MCP_CONFIG_FILE", path)
		t.Setenv("MYSQL_HOST", "env-host")
		cfg, err := LoadConfig(nil)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Host != "env-host" {
			t.Errorf("expected env host, got %q", cfg.Host)
		}
		if cfg.Database != "inventory" {
			t.Errorf("expected database from file, got %q", cfg.Database)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadConfig(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
		if err == nil || !strings.Contains(err.Error(), "read config file") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("bad duration in file is an error", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(bad, []byte("mysql:\n  connect_timeout: soon\n"), 0o600); err != nil {
			t.Fatalf("write config file: %v", err)
		}
		_, err := LoadConfig(&CLIOverrides{ConfigFile: bad})
		if err == nil || !strings.Contains(err.Error(), "mysql.connect_timeout") {
			t.Errorf("expected connect_timeout parse error, got %v", err)
		}
	})
}

func TestParseHelpers(t *testing.T) {
	if got := ParseInt("", 7); got != 7 {
		t.Errorf("ParseInt empty = %d, want 7", got)
	}
	if got := ParseInt("42", 7); got != 42 {
		t.Errorf("ParseInt 42 = %d, want 42", got)
	}
	if got := ParseDuration("", time.Second); got != time.Second {
		t.Errorf("ParseDuration empty = %s, want 1s", got)
	}
	if got := ParseDuration("bogus", time.Second); got != time.Second {
		t.Errorf("ParseDuration bogus = %s, want 1s", got)
	}
	if got := ParseDuration("250ms", time.Second); got != 250*time.Millisecond {
		t.Errorf("ParseDuration 250ms = %s, want 250ms", got)
	}
}

func TestLoadConfig_PasswordEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "mcp.yaml")
	if err := os.WriteFile(path, []byte("mysql:\n  password: from-file\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Run("unset variable keeps the file password", func(t *testing.T) {
		cfg, err := LoadConfig(&CLIOverrides{ConfigFile: path})
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Password != "from-file" {
			t.Errorf("expected file password, got %q", cfg.Password)
		}
	})

	t.Run("empty variable clears the file password", func(t *testing.T) {
		t.Setenv("MYSQL_PASSWORD", "")
		cfg, err := LoadConfig(&CLIOverrides{ConfigFile: path})
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Password != "" {
			t.Errorf("expected empty password, got %q", cfg.Password)
		}
	})

	t.Run("non-empty variable replaces the file password", func(t *testing.T) {
		t.Setenv("MYSQL_PASSWORD", "from-env")
		cfg, err := LoadConfig(&CLIOverrides{ConfigFile: path})
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}
		if cfg.Password != "from-env" {
			t.Errorf("expected env password, got %q", cfg.Password)
		}
	})
}
