package inventory_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-retail/internal/application/dto"
	appinventory "github.com/jhoicas/inventario-retail/internal/application/inventory"
	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/infrastructure/jsonfile"
	"github.com/jhoicas/inventario-retail/pkg/logger"
)

func newUseCase(t *testing.T) (*appinventory.UseCase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventario.json")
	return appinventory.NewUseCase(jsonfile.NewStore(path), logger.Nop()), path
}

func electronicsRequest(id string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Category:      "Electronics",
		ID:            id,
		Name:          "Phone",
		Price:         decimal.NewFromFloat(499.99),
		Quantity:      10,
		Brand:         "Acme",
		WarrantyYears: 2,
	}
}

func TestAddProduct_GeneraIDCuandoFalta(t *testing.T) {
	uc, _ := newUseCase(t)

	p, err := uc.AddProduct(electronicsRequest(""))
	require.NoError(t, err)

	// Con ID vacío el caso de uso asigna un UUID válido.
	_, err = uuid.Parse(p.ID)
	assert.NoError(t, err)
}

func TestAddProduct_Duplicado(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.AddProduct(electronicsRequest("E1"))
	require.NoError(t, err)

	_, err = uc.AddProduct(electronicsRequest("E1"))
	require.ErrorIs(t, err, domain.ErrDuplicateProductID)
	assert.Equal(t, 1, uc.Count())
}

func TestAddProduct_CategoriaInvalida(t *testing.T) {
	uc, _ := newUseCase(t)

	in := electronicsRequest("E1")
	in.Category = "Furniture"
	_, err := uc.AddProduct(in)
	require.ErrorIs(t, err, domain.ErrInvalidProductData)
}

func TestSellProduct_Propagacion(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.AddProduct(electronicsRequest("E1"))
	require.NoError(t, err)

	_, err = uc.SellProduct("no-existe", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = uc.SellProduct("E1", 11)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err := uc.SellProduct("E1", 4)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Quantity)

	p, err = uc.RestockProduct("E1", 4)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity)
}

func TestSaveLoad_CicloCompleto(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.AddProduct(electronicsRequest("E1"))
	require.NoError(t, err)
	_, err = uc.AddProduct(dto.CreateProductRequest{
		Category: "Grocery", ID: "G1", Name: "Milk",
		Price: decimal.NewFromFloat(2.50), Quantity: 20, ExpiryDate: "2030-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Save())

	// Mutar tras guardar y recargar: Load restaura el snapshot persistido.
	_, err = uc.SellProduct("E1", 10)
	require.NoError(t, err)
	require.True(t, uc.RemoveProduct("G1"))
	require.NoError(t, uc.Load())

	assert.Equal(t, 2, uc.Count())
	products := uc.ListAll()
	assert.Equal(t, "E1", products[0].ID)
	assert.Equal(t, 10, products[0].Quantity)
	assert.Equal(t, "G1", products[1].ID)
}

func TestLoad_FallaPreservaEstado(t *testing.T) {
	uc, path := newUseCase(t)

	_, err := uc.AddProduct(electronicsRequest("E1"))
	require.NoError(t, err)

	// Archivo con tipo desconocido: la carga falla completa y el estado en
	// memoria no se toca.
	require.NoError(t, os.WriteFile(path, []byte(`[
        {"type": "Furniture", "product_id": "F1", "name": "Mesa", "price": 10, "quantity_in_stock": 1}
    ]`), 0o644))

	err = uc.Load()
	require.ErrorIs(t, err, domain.ErrInvalidProductData)

	assert.Equal(t, 1, uc.Count())
	products := uc.ListAll()
	require.Len(t, products, 1)
	assert.Equal(t, "E1", products[0].ID)
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	require.ErrorIs(t, uc.Load(), domain.ErrIO)
}

func TestRemoveExpired(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.AddProduct(dto.CreateProductRequest{
		Category: "Grocery", ID: "G1", Name: "Milk",
		Price: decimal.NewFromFloat(2.50), Quantity: 20, ExpiryDate: "2023-01-01",
	})
	require.NoError(t, err)
	_, err = uc.AddProduct(electronicsRequest("E1"))
	require.NoError(t, err)

	removed := uc.RemoveExpired(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"G1"}, removed)
	assert.Equal(t, 1, uc.Count())
}

func TestSearchByCategory_TagDesconocido(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.AddProduct(electronicsRequest("E1"))
	require.NoError(t, err)

	assert.Empty(t, uc.SearchByCategory("Furniture"))
	assert.Len(t, uc.SearchByCategory("electronics"), 1)
}
