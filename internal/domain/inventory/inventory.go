// Package inventory contiene el agregado Inventory: la colección de productos
// con clave product_id, dueña exclusiva de sus registros. Todas las
// operaciones son transiciones entre estados válidos o rechazos que dejan la
// colección intacta.
package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

// Inventory mantiene el mapa product_id → Product más el orden de inserción,
// para que los listados sean deterministas. Sin sincronización interna: un
// solo llamador secuencial (el candado externo es responsabilidad de quien
// comparta la instancia).
type Inventory struct {
	products map[string]*entity.Product
	order    []string
}

// New crea un inventario vacío.
func New() *Inventory {
	return &Inventory{products: make(map[string]*entity.Product)}
}

// Len cantidad de productos registrados.
func (inv *Inventory) Len() int { return len(inv.products) }

// Add inserta un producto. Si el ID ya existe falla con
// ErrDuplicateProductID y no modifica el registro existente.
func (inv *Inventory) Add(p *entity.Product) error {
	if _, ok := inv.products[p.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateProductID, p.ID)
	}
	inv.products[p.ID] = p
	inv.order = append(inv.order, p.ID)
	return nil
}

// Remove elimina el producto indicado. Un ID ausente no es error: devuelve
// false y nada cambia.
func (inv *Inventory) Remove(id string) bool {
	if _, ok := inv.products[id]; !ok {
		return false
	}
	delete(inv.products, id)
	inv.dropFromOrder(id)
	return true
}

// Get busca un producto por ID. Falla con ErrProductNotFound si no existe.
func (inv *Inventory) Get(id string) (*entity.Product, error) {
	p, ok := inv.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return p, nil
}

// ListAll devuelve todos los productos en orden de inserción.
func (inv *Inventory) ListAll() []*entity.Product {
	out := make([]*entity.Product, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.products[id])
	}
	return out
}

// SearchByName busca por subcadena del nombre, insensible a
// mayúsculas/minúsculas (case folding Unicode). Sin coincidencias → slice
// vacío, no error.
func (inv *Inventory) SearchByName(query string) []*entity.Product {
	fold := cases.Fold()
	needle := fold.String(query)
	out := []*entity.Product{}
	for _, id := range inv.order {
		p := inv.products[id]
		if strings.Contains(fold.String(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SearchByCategory devuelve los productos cuya variante coincide con el tag.
// Un tag desconocido produce un resultado vacío, no un error.
func (inv *Inventory) SearchByCategory(c entity.Category) []*entity.Product {
	out := []*entity.Product{}
	for _, id := range inv.order {
		if p := inv.products[id]; p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// Sell vende qty unidades del producto indicado. ErrProductNotFound si el ID
// no existe; propaga ErrInsufficientStock del producto.
func (inv *Inventory) Sell(id string, qty int) error {
	p, err := inv.Get(id)
	if err != nil {
		return err
	}
	return p.Sell(qty)
}

// Restock reabastece qty unidades del producto indicado.
func (inv *Inventory) Restock(id string, qty int) error {
	p, err := inv.Get(id)
	if err != nil {
		return err
	}
	return p.Restock(qty)
}

// TotalValue suma precio × stock de todos los productos. Inventario vacío → 0.
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.products {
		total = total.Add(p.TotalValue())
	}
	return total
}

// RemoveExpired elimina los víveres vencidos en el instante now y devuelve
// los IDs eliminados en orden de inserción. Las demás variantes nunca se ven
// afectadas.
func (inv *Inventory) RemoveExpired(now time.Time) []string {
	removed := []string{}
	for _, id := range inv.order {
		if inv.products[id].IsExpired(now) {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		delete(inv.products, id)
		inv.dropFromOrder(id)
	}
	return removed
}

// Replace sustituye toda la colección por products, en ese orden. Si hay IDs
// duplicados falla con ErrInvalidProductData y el estado previo queda
// intacto: la carga desde archivo es atómica.
func (inv *Inventory) Replace(products []*entity.Product) error {
	next := make(map[string]*entity.Product, len(products))
	order := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := next[p.ID]; ok {
			return fmt.Errorf("%w: product_id duplicado %s", domain.ErrInvalidProductData, p.ID)
		}
		next[p.ID] = p
		order = append(order, p.ID)
	}
	inv.products = next
	inv.order = order
	return nil
}

func (inv *Inventory) dropFromOrder(id string) {
	for i, oid := range inv.order {
		if oid == id {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			return
		}
	}
}
