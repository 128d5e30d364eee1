package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-retail/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventario-retail", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "inventario.json", cfg.Inventory.FilePath)
	assert.Equal(t, "reporte_inventario.pdf", cfg.Inventory.ReportPath)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("INVENTORY_FILE", "/tmp/otro.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/otro.json", cfg.Inventory.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}
