// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Supported values for Config.DatabaseDriver. They double as the
// database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Config holds runtime settings for the products server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the JSON API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - DatabaseDriver: "sqlite" (modernc.org/sqlite) or "pgx" (PostgreSQL).
//   - DatabaseDSN: DSN handed to sql.Open for the chosen driver.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use the default in prod.
//   - AccessTokenValidityDuration: session token lifetime.
//   - ShutdownTimeout: how long in-flight HTTP requests may take during shutdown.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP            string
	EndpointAddrGRPC            string
	DatabaseDriver              string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	ShutdownTimeout             time.Duration
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "file:products.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 1 * time.Hour
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key must not be empty")
	}
	if c.DatabaseDriver != DriverSQLite && c.DatabaseDriver != DriverPostgres {
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN must not be empty")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return errors.New("access token validity must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
