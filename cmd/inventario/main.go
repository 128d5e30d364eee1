package main

import (
	"os"

	appinventory "github.com/jhoicas/inventario-retail/internal/application/inventory"
	"github.com/jhoicas/inventario-retail/internal/application/report"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/jsonfile"
	infrapdf "github.com/jhoicas/inventario-retail/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-retail/internal/interfaces/cli"
	"github.com/jhoicas/inventario-retail/pkg/config"
	"github.com/jhoicas/inventario-retail/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("inventory_file", cfg.Inventory.FilePath).
		Msg("iniciando aplicación")

	store := jsonfile.NewStore(cfg.Inventory.FilePath)
	inventoryUC := appinventory.NewUseCase(store, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewUseCase(pdfGenerator, log)

	menu := cli.New(os.Stdin, os.Stdout, inventoryUC, reportUC, cfg.Inventory.ReportPath)
	menu.Run()
}
