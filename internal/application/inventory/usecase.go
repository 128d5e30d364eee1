// Package inventory orquesta las operaciones del inventario sobre el
// agregado en memoria y el puerto de persistencia.
package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/application/dto"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-retail/internal/domain/inventory"
	"github.com/jhoicas/inventario-retail/pkg/logger"
)

// UseCase casos de uso del inventario. Mantiene el agregado en memoria;
// Save/Load lo sincronizan con el Store.
type UseCase struct {
	inv   *domaininv.Inventory
	store Store
	log   *logger.Logger
}

// NewUseCase construye el caso de uso con un inventario vacío.
func NewUseCase(store Store, log *logger.Logger) *UseCase {
	return &UseCase{inv: domaininv.New(), store: store, log: log}
}

// AddProduct registra un producto nuevo según la categoría del request.
// Con ID vacío genera un UUID. Falla con ErrDuplicateProductID si el ID ya
// existe; el registro existente no se modifica.
func (uc *UseCase) AddProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	category, err := entity.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	if in.ID == "" {
		in.ID = uuid.New().String()
	}

	var p *entity.Product
	switch category {
	case entity.CategoryElectronics:
		p, err = entity.NewElectronics(in.ID, in.Name, in.Price, in.Quantity, in.Brand, in.WarrantyYears)
	case entity.CategoryGrocery:
		p, err = entity.NewGrocery(in.ID, in.Name, in.Price, in.Quantity, in.ExpiryDate)
	case entity.CategoryClothing:
		p, err = entity.NewClothing(in.ID, in.Name, in.Price, in.Quantity, in.Size, in.Material)
	}
	if err != nil {
		return nil, err
	}
	if err := uc.inv.Add(p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Str("category", string(p.Category)).Msg("producto agregado")
	return p, nil
}

// RemoveProduct elimina un producto. Un ID ausente no es error; devuelve si
// había algo que eliminar.
func (uc *UseCase) RemoveProduct(id string) bool {
	removed := uc.inv.Remove(id)
	if removed {
		uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	}
	return removed
}

// SearchByName busca por subcadena del nombre (insensible a mayúsculas).
func (uc *UseCase) SearchByName(query string) []*entity.Product {
	return uc.inv.SearchByName(query)
}

// SearchByCategory busca por tag de variante. Tag desconocido → vacío.
func (uc *UseCase) SearchByCategory(tag string) []*entity.Product {
	category, err := entity.ParseCategory(tag)
	if err != nil {
		return []*entity.Product{}
	}
	return uc.inv.SearchByCategory(category)
}

// ListAll devuelve todos los productos en orden de inserción.
func (uc *UseCase) ListAll() []*entity.Product {
	return uc.inv.ListAll()
}

// Count cantidad de productos registrados.
func (uc *UseCase) Count() int { return uc.inv.Len() }

// SellProduct vende qty unidades y devuelve el producto actualizado.
func (uc *UseCase) SellProduct(id string, qty int) (*entity.Product, error) {
	if err := uc.inv.Sell(id, qty); err != nil {
		return nil, err
	}
	p, err := uc.inv.Get(id)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Int("quantity", qty).Int("stock", p.Quantity).Msg("venta registrada")
	return p, nil
}

// RestockProduct reabastece qty unidades y devuelve el producto actualizado.
func (uc *UseCase) RestockProduct(id string, qty int) (*entity.Product, error) {
	if err := uc.inv.Restock(id, qty); err != nil {
		return nil, err
	}
	p, err := uc.inv.Get(id)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Int("quantity", qty).Int("stock", p.Quantity).Msg("reabastecimiento registrado")
	return p, nil
}

// TotalValue valor agregado del inventario (precio × stock sumado).
func (uc *UseCase) TotalValue() decimal.Decimal {
	return uc.inv.TotalValue()
}

// RemoveExpired elimina los víveres vencidos en now y devuelve sus IDs.
func (uc *UseCase) RemoveExpired(now time.Time) []string {
	removed := uc.inv.RemoveExpired(now)
	if len(removed) > 0 {
		uc.log.Info().Strs("product_ids", removed).Msg("productos vencidos eliminados")
	}
	return removed
}

// Save persiste el inventario completo en el Store.
func (uc *UseCase) Save() error {
	if err := uc.store.Save(uc.inv.ListAll()); err != nil {
		return fmt.Errorf("guardar inventario: %w", err)
	}
	uc.log.Info().Int("products", uc.inv.Len()).Msg("inventario guardado")
	return nil
}

// Load reemplaza el inventario en memoria por el contenido del Store. La
// carga es atómica: el archivo completo se valida antes de sustituir nada,
// así que ante cualquier error (ErrIO, ErrInvalidProductData) el estado
// previo queda intacto.
func (uc *UseCase) Load() error {
	products, err := uc.store.Load()
	if err != nil {
		return fmt.Errorf("cargar inventario: %w", err)
	}
	if err := uc.inv.Replace(products); err != nil {
		return fmt.Errorf("cargar inventario: %w", err)
	}
	uc.log.Info().Int("products", len(products)).Msg("inventario cargado")
	return nil
}
