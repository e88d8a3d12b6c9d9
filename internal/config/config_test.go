package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
service:
  name: order-crm-sync
  environment: test
woocommerce:
  base_url: https://store.example.com
  consumer_key: ck_test
  consumer_secret: cs_test
  page_size: 50
zoho:
  access_token: test-token
database:
  host: localhost
  port: 5432
  name: order_sync
  user: postgres
  password: postgres
server:
  http:
    host: 0.0.0.0
    port: 8080
log:
  level: debug
  format: console
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads a valid config", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", writeConfig(t, validConfig))

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "order-crm-sync", cfg.Service.Name)
		assert.Equal(t, "https://store.example.com", cfg.WooCommerce.BaseURL)
		assert.Equal(t, 50, cfg.WooCommerce.PageSize)
		assert.Equal(t, "test-token", cfg.Zoho.AccessToken)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, 8080, cfg.Server.HTTP.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("missing credentials fail validation", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", writeConfig(t, `
woocommerce:
  base_url: https://store.example.com
database:
  host: localhost
  port: 5432
  name: order_sync
  user: postgres
`))

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", writeConfig(t, "service: [broken"))

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}
