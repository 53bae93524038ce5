package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv はテストに影響する環境変数を空にします。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_DRIVER", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_HOST", "DB_PORT",
		"INSTANCE_CONNECTION_NAME", "DB_PATH", "RUN_MIGRATIONS", "DB_CONNECT_TIMEOUT",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "CACHE_TTL",
		"SERVER_PORT", "CORS_ALLOWED_ORIGIN", "WEB_PORT", "API_URL", "API_TIMEOUT",
		"API_RATE_PER_SEC", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.False(t, cfg.DB.RunMigrations)
	assert.Equal(t, 60*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, "4000", cfg.ServerPort)
	assert.Equal(t, "3000", cfg.WebPort)
	assert.Equal(t, "http://localhost:4000/graphql", cfg.APIURL)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 20.0, cfg.APIRatePerSec)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("API_TIMEOUT", "not-a-duration")
	t.Setenv("API_RATE_PER_SEC", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "envuser", cfg.DB.User)
	assert.True(t, cfg.DB.RunMigrations)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout, "invalid duration falls back to the default")
	assert.Equal(t, 2.5, cfg.APIRatePerSec)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "oracle")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
