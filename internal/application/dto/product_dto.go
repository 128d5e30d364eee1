package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para registrar un producto. Category decide
// qué campos de variante son obligatorios; los demás se ignoran. Con ID
// vacío el caso de uso genera uno.
type CreateProductRequest struct {
	Category string
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int

	// Electronics
	Brand         string
	WarrantyYears int

	// Grocery (YYYY-MM-DD)
	ExpiryDate string

	// Clothing
	Size     string
	Material string
}
