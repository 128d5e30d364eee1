package inventory

import "github.com/jhoicas/inventario-retail/internal/domain/entity"

// Store es el puerto de persistencia del inventario completo (snapshot).
// Save escribe todos los productos en el orden dado; Load devuelve los
// productos del medio persistente ya validados, sin tocar estado en memoria.
type Store interface {
	Save(products []*entity.Product) error
	Load() ([]*entity.Product, error)
}
