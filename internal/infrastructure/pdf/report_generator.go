// Package pdf implementa el render del reporte de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cat | ID | Nombre | Detalle | Precio | Stock | Valor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor agregado del inventario                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(products []*entity.Product, total decimal.Decimal, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación + conteo (der).
func headerRow(generatedAt time.Time, count int) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Productos: %d", count), props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 2, align.Left),
		h("ID", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Detalle", 2, align.Left),
		h("Precio", 1, align.Right),
		h("Stock", 1, align.Center),
		h("Valor", 1, align.Right),
	)
}

// tableRows: una fila por producto, con el detalle propio de la variante.
func tableRows(products []*entity.Product) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			cell(string(p.Category), 2, align.Left),
			cell(p.ID, 2, align.Left),
			cell(p.Name, 3, align.Left),
			cell(variantDetail(p), 2, align.Left),
			cell(p.Price.StringFixed(2), 1, align.Right),
			cell(fmt.Sprintf("%d", p.Quantity), 1, align.Center),
			cell(p.TotalValue().StringFixed(2), 1, align.Right),
		))
	}
	return result
}

// totalRow: valor agregado alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(8),
		col.New(2).Add(text.New("VALOR TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func variantDetail(p *entity.Product) string {
	switch p.Category {
	case entity.CategoryElectronics:
		return fmt.Sprintf("%s, %d años", p.Brand, p.WarrantyYears)
	case entity.CategoryGrocery:
		return "Vence " + p.ExpiryDate.Format(entity.ExpiryDateLayout)
	case entity.CategoryClothing:
		return p.Size + ", " + p.Material
	default:
		return ""
	}
}
