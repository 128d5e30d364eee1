package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se comparan con errors.Is;
// las capas externas los envuelven con contexto usando %w.
var (
	ErrDuplicateProductID = errors.New("ya existe un producto con ese ID")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidProductData = errors.New("datos de producto inválidos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrIO                 = errors.New("error de lectura/escritura")
)
