package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sos-api/pkg/utilities"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("INTERNAL_TOKEN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("RABBITMQ_URL", "")

	path := writeConfig(t, `{"database": {"connection_string": "sos.db"}, "auth": {"jwt_secret": "secret"}}`)

	cfg, err := utilities.ReadConfig[ApiConfigJson, ApiConfig](path)
	require.NoError(t, err)

	assert.Equal(t, uint16(8000), cfg.GetRestApiPort())
	assert.Equal(t, "sos.db", cfg.GetDatabaseConnectionString())
	assert.True(t, cfg.DatabaseConf.RunMigrations)
	assert.Equal(t, []byte("secret"), cfg.AuthConf.JwtSecret)
	assert.Equal(t, zerolog.InfoLevel, cfg.GetLoggerConfig().LogLevel)
	assert.Equal(t, int64(30), cfg.RedisConf.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RedisConf.RateLimitWindow)
	assert.Equal(t, "@every 10s", cfg.OutboxConf.Schedule)
	assert.False(t, cfg.GetRabbitmqConfig().Enabled())
	assert.Empty(t, cfg.GetRedisSettings().Addr)
}

func TestReadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://sos@localhost/sos")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("INTERNAL_TOKEN", "internal-env")
	t.Setenv("REDIS_ADDR", "redis:6379")

	path := writeConfig(t, `{
		"logger": {"log_level": "debug"},
		"rest": {"port": 9000, "allowed_origin": "https://app.example"},
		"database": {"connection_string": "sos.db", "run_migrations": false},
		"auth": {"jwt_secret": "from-file", "internal_token": "internal-file"},
		"redis": {"addr": "localhost:6379", "db": 2, "rate_limit_requests": 5, "rate_limit_window_seconds": 10},
		"outbox": {"schedule": "@every 1m"}
	}`)

	cfg, err := utilities.ReadConfig[ApiConfigJson, ApiConfig](path)
	require.NoError(t, err)

	assert.Equal(t, uint16(9000), cfg.GetRestApiPort())
	assert.Equal(t, "https://app.example", cfg.RestConf.AllowedOrigin)
	assert.Equal(t, "postgres://sos@localhost/sos", cfg.GetDatabaseConnectionString())
	assert.False(t, cfg.DatabaseConf.RunMigrations)
	assert.Equal(t, []byte("from-env"), cfg.AuthConf.JwtSecret)
	assert.Equal(t, "internal-env", cfg.AuthConf.InternalToken)
	assert.Equal(t, zerolog.DebugLevel, cfg.GetLoggerConfig().LogLevel)
	assert.Equal(t, "redis:6379", cfg.GetRedisSettings().Addr)
	assert.Equal(t, 2, cfg.GetRedisSettings().DB)
	assert.Equal(t, int64(5), cfg.RedisConf.RateLimitRequests)
	assert.Equal(t, 10*time.Second, cfg.RedisConf.RateLimitWindow)
	assert.Equal(t, "@every 1m", cfg.OutboxConf.Schedule)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := utilities.ReadConfig[ApiConfigJson, ApiConfig](filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
