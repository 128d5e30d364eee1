package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// InventoryConfig rutas de los archivos que toca la aplicación.
type InventoryConfig struct {
	FilePath   string // archivo JSON del inventario
	ReportPath string // destino del reporte PDF
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde un archivo .env en el directorio actual). Las env vars tienen
// prioridad. Nombres esperados: APP_ENV, APP_NAME, LOG_LEVEL,
// INVENTORY_FILE, REPORT_FILE.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-retail"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Inventory: InventoryConfig{
			FilePath:   getString(v, "INVENTORY_FILE", "inventario.json"),
			ReportPath: getString(v, "REPORT_FILE", "reporte_inventario.pdf"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
