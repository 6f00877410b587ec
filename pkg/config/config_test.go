package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
provider:
  base_url: https://provider.example.com
`)
	t.Setenv("MONGO_URI", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("PROVIDER_BASE_URL", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "https://provider.example.com", cfg.Provider.BaseURL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
database:
  uri: mongodb://file-host:27017
  dbname: filedb
provider:
  base_url: https://file.example.com
`)
	t.Setenv("MONGO_URI", "mongodb://env-host:27017")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("PROVIDER_BASE_URL", "https://env.example.com")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mongodb://env-host:27017", cfg.Database.URI)
	assert.Equal(t, "envdb", cfg.Database.DBName)
	assert.Equal(t, "redis.internal", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "https://env.example.com", cfg.Provider.BaseURL)
}

func TestLoadConfig_MissingProviderBaseURL(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8080
`)
	t.Setenv("PROVIDER_BASE_URL", "")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider base URL is required")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidRedisPortEnv(t *testing.T) {
	path := writeConfigFile(t, `
provider:
  base_url: https://provider.example.com
`)
	t.Setenv("REDIS_PORT", "not-a-port")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid REDIS_PORT value")
}
