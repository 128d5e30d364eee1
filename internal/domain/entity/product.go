package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-retail/internal/domain"
)

// Category discrimina la variante de un producto. El conjunto es cerrado:
// cada variante lleva sus propios campos dentro de Product y el tag decide
// cuáles son significativos.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryGrocery     Category = "Grocery"
	CategoryClothing    Category = "Clothing"
)

// ExpiryDateLayout formato de la fecha de vencimiento (solo fecha calendario).
const ExpiryDateLayout = "2006-01-02"

// ParseCategory interpreta un tag de variante escrito por el usuario
// (acepta mayúsculas/minúsculas). Tag desconocido → ErrInvalidProductData.
func ParseCategory(s string) (Category, error) {
	for _, c := range []Category{CategoryElectronics, CategoryGrocery, CategoryClothing} {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidProductData, s)
}

// Product es un registro polimórfico de inventario discriminado por Category.
// Todos los campos se fijan en la construcción; solo Quantity cambia después,
// y únicamente a través de Sell y Restock.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Category Category

	// Electronics
	Brand         string
	WarrantyYears int

	// Grocery. Medianoche UTC del día de vencimiento.
	ExpiryDate time.Time

	// Clothing
	Size     string
	Material string
}

func newBase(category Category, id, name string, price decimal.Decimal, quantity int) (*Product, error) {
	switch {
	case id == "":
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	case name == "":
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	case price.IsNegative():
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	case quantity < 0:
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return &Product{ID: id, Name: name, Price: price, Quantity: quantity, Category: category}, nil
}

// NewElectronics construye un producto de electrónica.
func NewElectronics(id, name string, price decimal.Decimal, quantity int, brand string, warrantyYears int) (*Product, error) {
	p, err := newBase(CategoryElectronics, id, name, price, quantity)
	if err != nil {
		return nil, err
	}
	if warrantyYears < 0 {
		return nil, fmt.Errorf("%w: la garantía no puede ser negativa", domain.ErrInvalidInput)
	}
	p.Brand = brand
	p.WarrantyYears = warrantyYears
	return p, nil
}

// NewGrocery construye un producto de víveres. expiryDate en formato YYYY-MM-DD.
func NewGrocery(id, name string, price decimal.Decimal, quantity int, expiryDate string) (*Product, error) {
	p, err := newBase(CategoryGrocery, id, name, price, quantity)
	if err != nil {
		return nil, err
	}
	exp, err := time.ParseInLocation(ExpiryDateLayout, expiryDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de vencimiento %q (se espera YYYY-MM-DD)", domain.ErrInvalidInput, expiryDate)
	}
	p.ExpiryDate = exp
	return p, nil
}

// NewClothing construye un producto de ropa.
func NewClothing(id, name string, price decimal.Decimal, quantity int, size, material string) (*Product, error) {
	p, err := newBase(CategoryClothing, id, name, price, quantity)
	if err != nil {
		return nil, err
	}
	p.Size = size
	p.Material = material
	return p, nil
}

// Sell descuenta quantity unidades del stock. Si quantity supera el stock
// disponible falla con ErrInsufficientStock y no modifica nada.
func (p *Product) Sell(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: la cantidad a vender no puede ser negativa", domain.ErrInvalidInput)
	}
	if quantity > p.Quantity {
		return fmt.Errorf("%w: solo hay %d unidades de %s", domain.ErrInsufficientStock, p.Quantity, p.ID)
	}
	p.Quantity -= quantity
	return nil
}

// Restock suma amount unidades al stock. Montos negativos se rechazan con
// ErrInvalidInput; no hay tope superior.
func (p *Product) Restock(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: el monto de reabastecimiento no puede ser negativo", domain.ErrInvalidInput)
	}
	p.Quantity += amount
	return nil
}

// TotalValue devuelve precio × stock. Pura, sin efectos.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// IsExpired reporta si el producto está vencido en el instante now. Solo los
// víveres pueden vencer; para las demás variantes siempre es false, de modo
// que el llamador no necesita distinguir la variante.
func (p *Product) IsExpired(now time.Time) bool {
	return p.Category == CategoryGrocery && now.After(p.ExpiryDate)
}

// String produce el resumen legible del producto según su variante.
func (p *Product) String() string {
	switch p.Category {
	case CategoryElectronics:
		return fmt.Sprintf("[Electronics] ID: %s, Nombre: %s, Marca: %s, Garantía: %d años, Precio: %s, Stock: %d",
			p.ID, p.Name, p.Brand, p.WarrantyYears, p.Price, p.Quantity)
	case CategoryGrocery:
		return fmt.Sprintf("[Grocery] ID: %s, Nombre: %s, Vence: %s, Precio: %s, Stock: %d",
			p.ID, p.Name, p.ExpiryDate.Format(ExpiryDateLayout), p.Price, p.Quantity)
	case CategoryClothing:
		return fmt.Sprintf("[Clothing] ID: %s, Nombre: %s, Talla: %s, Material: %s, Precio: %s, Stock: %d",
			p.ID, p.Name, p.Size, p.Material, p.Price, p.Quantity)
	default:
		return fmt.Sprintf("[%s] ID: %s, Nombre: %s", p.Category, p.ID, p.Name)
	}
}
