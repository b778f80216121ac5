package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for the YAML config file. Pointer fields
// distinguish "absent" from a zero value so that only keys present in the
// file replace the defaults.
//
//	mysql:
//	  host: db.internal
//	  port: 3306
//	  user: reader
//	  password: secret
//	  database: shop
//	  connect_timeout: 5s
//	log:
//	  level: debug
//	  format: json
//	transport:
//	  mode: http
//	  http_host: 0.0.0.0
//	  http_port: "8080"
//	  allowed_origins: "*"
type fileConfig struct {
	MySQL struct {
		Host           *string `yaml:"host"`
		Port           *int    `yaml:"port"`
		User           *string `yaml:"user"`
		Password       *string `yaml:"password"`
		Database       *string `yaml:"database"`
		ConnectTimeout *string `yaml:"connect_timeout"`
	} `yaml:"mysql"`
	Log struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
	Transport struct {
		Mode           *string `yaml:"mode"`
		HTTPHost       *string `yaml:"http_host"`
		HTTPPort       *string `yaml:"http_port"`
		AllowedOrigins *string `yaml:"allowed_origins"`
		TLSCertFile    *string `yaml:"tls_cert_file"`
		TLSKeyFile     *string `yaml:"tls_key_file"`
	} `yaml:"transport"`
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.MySQL.ConnectTimeout != nil {
		if _, err := time.ParseDuration(*fc.MySQL.ConnectTimeout); err != nil {
			return nil, fmt.Errorf("parse config file %s: mysql.connect_timeout: %w", path, err)
		}
	}
	return &fc, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.Host, fc.MySQL.Host)
	if fc.MySQL.Port != nil {
		cfg.Port = *fc.MySQL.Port
	}
	setString(&cfg.User, fc.MySQL.User)
	setString(&cfg.Password, fc.MySQL.Password)
	setString(&cfg.Database, fc.MySQL.Database)
	if fc.MySQL.ConnectTimeout != nil {
		// validated in loadFile
		cfg.ConnectTimeout, _ = time.ParseDuration(*fc.MySQL.ConnectTimeout)
	}

	setString(&cfg.LogLevel, fc.Log.Level)
	setString(&cfg.LogFormat, fc.Log.Format)

	if fc.Transport.Mode != nil {
		cfg.TransportMode = TransportMode(*fc.Transport.Mode)
	}
	setString(&cfg.HTTPHost, fc.Transport.HTTPHost)
	setString(&cfg.HTTPPort, fc.Transport.HTTPPort)
	setString(&cfg.HTTPAllowedOrigins, fc.Transport.AllowedOrigins)
	setString(&cfg.HTTPTLSCertFile, fc.Transport.TLSCertFile)
	setString(&cfg.HTTPTLSKeyFile, fc.Transport.TLSKeyFile)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
