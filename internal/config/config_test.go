package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://datos.gob.cl", cfg.Datastore.BaseURL)
	assert.Equal(t, 1000, cfg.Datastore.Limit)
	assert.NotEmpty(t, cfg.Datastore.ResourceID)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"csv", "json"}, cfg.Export.Formats)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DASHBOARD_SERVER_PORT", "9090")
	t.Setenv("DASHBOARD_DATASTORE_LIMIT", "250")
	t.Setenv("DASHBOARD_DATASTORE_RESOURCE_ID", "override-id")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 250, cfg.Datastore.Limit)
	assert.Equal(t, "override-id", cfg.Datastore.ResourceID)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 3000
datastore:
  base_url: http://localhost:9999
  resource_id: file-id
  limit: 42
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:9999", cfg.Datastore.BaseURL)
	assert.Equal(t, "file-id", cfg.Datastore.ResourceID)
	assert.Equal(t, 42, cfg.Datastore.Limit)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	t.Setenv("DASHBOARD_DATASTORE_LIMIT", "0")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
