package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/pdf"
)

func TestGenerate_DocumentoValido(t *testing.T) {
	e, err := entity.NewElectronics("E1", "Phone", decimal.NewFromFloat(499.99), 10, "Acme", 2)
	require.NoError(t, err)
	g, err := entity.NewGrocery("G1", "Milk", decimal.NewFromFloat(2.50), 20, "2030-01-01")
	require.NoError(t, err)
	c, err := entity.NewClothing("C1", "Shirt", decimal.NewFromFloat(19.99), 50, "M", "Cotton")
	require.NoError(t, err)

	gen := pdf.NewMarotoReportGenerator()
	data, err := gen.Generate(
		[]*entity.Product{e, g, c},
		decimal.NewFromFloat(6049.40),
		time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "el documento debe ser un PDF")
}

func TestGenerate_InventarioVacio(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()
	data, err := gen.Generate(nil, decimal.Zero, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
