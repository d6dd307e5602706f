package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, DriverSQLite, c.DatabaseDriver)
	assert.Equal(t, "file:products.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 1*time.Hour, c.AccessTokenValidityDuration)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadFromArgs_DefaultsWithoutArgs(t *testing.T) {
	c, err := loadFromArgs(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, c)
}

func TestLoadFromArgs_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http": ":9000",
		"secret_key":         "from-json",
	})

	c, err := loadFromArgs([]string{"-c", path, "-s", "from-flag"})
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.EndpointAddrHTTP)
	assert.Equal(t, "from-flag", c.SecretKey)
}

func TestLoadFromArgs_InvalidFinalConfig(t *testing.T) {
	_, err := loadFromArgs([]string{"-s", ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret key")

	_, err = loadFromArgs([]string{"-D", "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, ok: true},
		{name: "postgres", mutate: func(c *Config) { c.DatabaseDriver = DriverPostgres }, ok: true},
		{name: "empty secret", mutate: func(c *Config) { c.SecretKey = "" }},
		{name: "empty dsn", mutate: func(c *Config) { c.DatabaseDSN = "" }},
		{name: "zero validity", mutate: func(c *Config) { c.AccessTokenValidityDuration = 0 }},
		{name: "unknown driver", mutate: func(c *Config) { c.DatabaseDriver = "oracle" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			if tt.ok {
				assert.NoError(t, c.Validate())
			} else {
				assert.Error(t, c.Validate())
			}
		})
	}
}
