package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
service:
  name: profiler-test
  port: 9090
database:
  driver: sqlite3
  database: /tmp/profiler.db
elasticsearch:
  url: http://es:9200
  conversation_index: conv_test
redis:
  addr: redis:6379
  profile_cache_ttl: 5m
catalog:
  url: http://catalog:8090
  per_category_limit: 3
profile:
  disable_feedback: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "profiler-test", cfg.Service.Name)
	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "conv_test", cfg.Elasticsearch.ConversationIndex)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ProfileCacheTTL)
	assert.Equal(t, 3, cfg.Catalog.PerCategoryLimit)
	assert.False(t, cfg.Profile.DisableStaticProfile)
	assert.True(t, cfg.Profile.DisableFeedback)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "profiler", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "conversation_analysis", cfg.Elasticsearch.ConversationIndex)
	assert.Equal(t, 15*time.Minute, cfg.Redis.ProfileCacheTTL)
	assert.Equal(t, 10, cfg.Catalog.RequestsPerSec)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PROFILER_PORT", "7070")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_DEBUG", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Service.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Service.Debug)
}

func TestLoadInvalidEnvValue(t *testing.T) {
	t.Setenv("PROFILER_PORT", "not-a-port")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
