package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT",
	"POINTS_OF_SALE_FILE", "ORDERS_FILE", "MAP_ZOOM", "MAP_TILE_URL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		os.Unsetenv(k)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "puntos_venta.xlsx", cfg.Dataset.PointsOfSalePath)
	assert.Equal(t, "pedidos_servidos.xlsx", cfg.Dataset.OrdersPath)
	assert.Equal(t, 12, cfg.Map.Zoom)
	assert.Contains(t, cfg.Map.TileURL, "openstreetmap")
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("POINTS_OF_SALE_FILE", "/data/pos.xlsx")
	t.Setenv("ORDERS_FILE", "/data/orders.xls")
	t.Setenv("MAP_ZOOM", "14")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "/data/pos.xlsx", cfg.Dataset.PointsOfSalePath)
	assert.Equal(t, "/data/orders.xls", cfg.Dataset.OrdersPath)
	assert.Equal(t, 14, cfg.Map.Zoom)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
ORDERS_FILE=manifest.xlsx
`)
	require.NoError(t, os.WriteFile(dir+"/.env", content, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "manifest.xlsx", cfg.Dataset.OrdersPath)
	assert.Equal(t, "puntos_venta.xlsx", cfg.Dataset.PointsOfSalePath)
}

// TestValidateRequired verifies that missing required fields return an error.
func TestValidateRequired(t *testing.T) {
	err := validateRequired(&AppConfig{
		Dataset: DatasetConfig{OrdersPath: "orders.xlsx"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required configuration: POINTS_OF_SALE_FILE")

	err = validateRequired(&AppConfig{
		Dataset: DatasetConfig{PointsOfSalePath: "pos.xlsx", OrdersPath: "orders.xlsx"},
	})
	assert.NoError(t, err)
}
