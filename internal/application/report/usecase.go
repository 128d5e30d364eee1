// Package report genera el reporte PDF del inventario detrás de un puerto,
// para que la capa de aplicación no dependa de la librería de render.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/pkg/logger"
)

// Generator puerto de render: recibe el listado, el valor total y la fecha
// de generación, y devuelve los bytes del documento.
type Generator interface {
	Generate(products []*entity.Product, total decimal.Decimal, generatedAt time.Time) ([]byte, error)
}

// UseCase genera y escribe el reporte del inventario.
type UseCase struct {
	gen Generator
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(gen Generator, log *logger.Logger) *UseCase {
	return &UseCase{gen: gen, log: log}
}

// Export genera el reporte y lo escribe en path. Errores de escritura se
// reportan como ErrIO.
func (uc *UseCase) Export(products []*entity.Product, total decimal.Decimal, path string) error {
	data, err := uc.gen.Generate(products, total, time.Now())
	if err != nil {
		return fmt.Errorf("generar reporte: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	uc.log.Info().Str("path", path).Int("products", len(products)).Msg("reporte exportado")
	return nil
}
