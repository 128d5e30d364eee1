// Package jsonfile persiste el inventario completo como un arreglo JSON
// legible. Cada registro lleva el tag "type" y únicamente los campos
// declarados de su variante: la codificación es explícita por variante, nunca
// un volcado genérico de la estructura.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

func init() {
	// El formato persistido declara price como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Store implementa el puerto de persistencia sobre un archivo JSON.
type Store struct {
	path string
}

// NewStore crea un store atado a la ruta dada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// productRecord es el registro en disco. Los campos de variante son punteros
// para distinguir "ausente" de "valor cero" al validar la carga.
type productRecord struct {
	Type            string          `json:"type"`
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`

	Brand         *string `json:"brand,omitempty"`
	WarrantyYears *int    `json:"warranty_years,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
	Size          *string `json:"size,omitempty"`
	Material      *string `json:"material,omitempty"`
}

// Save escribe todos los productos en el orden recibido. La escritura es a
// archivo temporal + rename, para no dejar un archivo a medias ante un fallo.
func (s *Store) Save(products []*entity.Product) error {
	records := make([]productRecord, 0, len(products))
	for _, p := range products {
		records = append(records, encodeProduct(p))
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".inventario-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	return nil
}

// Load lee y valida el archivo completo antes de devolver nada: ante un
// error no se entrega ningún producto parcial. Archivo ilegible → ErrIO;
// contenido malformado, tag desconocido o campo de variante faltante →
// ErrInvalidProductData.
func (s *Store) Load() ([]*entity.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}

	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProductData, err)
	}

	products := make([]*entity.Product, 0, len(records))
	for i, rec := range records {
		p, err := decodeProduct(rec)
		if err != nil {
			return nil, fmt.Errorf("registro %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func encodeProduct(p *entity.Product) productRecord {
	rec := productRecord{
		Type:            string(p.Category),
		ProductID:       p.ID,
		Name:            p.Name,
		Price:           p.Price,
		QuantityInStock: p.Quantity,
	}
	switch p.Category {
	case entity.CategoryElectronics:
		rec.Brand = ptr(p.Brand)
		rec.WarrantyYears = ptr(p.WarrantyYears)
	case entity.CategoryGrocery:
		rec.ExpiryDate = ptr(p.ExpiryDate.Format(entity.ExpiryDateLayout))
	case entity.CategoryClothing:
		rec.Size = ptr(p.Size)
		rec.Material = ptr(p.Material)
	}
	return rec
}

// decodeProduct reconstruye la entidad delegando en los constructores de
// variante, que revalidan los invariantes (precio y stock no negativos,
// fecha parseable). Cualquier violación se reporta como ErrInvalidProductData.
func decodeProduct(rec productRecord) (*entity.Product, error) {
	var (
		p   *entity.Product
		err error
	)
	switch rec.Type {
	case string(entity.CategoryElectronics):
		if rec.Brand == nil || rec.WarrantyYears == nil {
			return nil, fmt.Errorf("%w: Electronics requiere brand y warranty_years", domain.ErrInvalidProductData)
		}
		p, err = entity.NewElectronics(rec.ProductID, rec.Name, rec.Price, rec.QuantityInStock, *rec.Brand, *rec.WarrantyYears)
	case string(entity.CategoryGrocery):
		if rec.ExpiryDate == nil {
			return nil, fmt.Errorf("%w: Grocery requiere expiry_date", domain.ErrInvalidProductData)
		}
		p, err = entity.NewGrocery(rec.ProductID, rec.Name, rec.Price, rec.QuantityInStock, *rec.ExpiryDate)
	case string(entity.CategoryClothing):
		if rec.Size == nil || rec.Material == nil {
			return nil, fmt.Errorf("%w: Clothing requiere size y material", domain.ErrInvalidProductData)
		}
		p, err = entity.NewClothing(rec.ProductID, rec.Name, rec.Price, rec.QuantityInStock, *rec.Size, *rec.Material)
	default:
		return nil, fmt.Errorf("%w: tipo desconocido %q", domain.ErrInvalidProductData, rec.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProductData, err)
	}
	return p, nil
}

func ptr[T any](v T) *T { return &v }
