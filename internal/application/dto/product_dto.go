package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// InitialQuantity opcional: si es > 0 se registra como un movimiento de entrada
// a través del ledger, nunca como escritura directa de current_quantity.
type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Description     string           `json:"description" validate:"omitempty,max=500"`
	CategoryID      string           `json:"category_id" validate:"omitempty,uuid"`
	Unit            string           `json:"unit" validate:"required,min=1,max=20"`
	MinimumQuantity decimal.Decimal  `json:"minimum_quantity"`
	InitialQuantity *decimal.Decimal `json:"initial_quantity,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
// No incluye current_quantity: ese campo solo lo muta el ledger.
type UpdateProductRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description" validate:"omitempty,max=500"`
	CategoryID      *string          `json:"category_id" validate:"omitempty"`
	Unit            *string          `json:"unit" validate:"omitempty,min=1,max=20"`
	MinimumQuantity *decimal.Decimal `json:"minimum_quantity,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	LowStock        bool            `json:"low_stock"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
