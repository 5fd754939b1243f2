package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CurrentQuantity es un valor derivado y cacheado: su único mutador legítimo es el
// ledger de movimientos; ninguna otra operación escribe este campo.
type Product struct {
	ID              string
	Name            string
	Description     string
	CategoryID      string // vacío si no tiene categoría (referencia débil)
	Unit            string
	CurrentQuantity decimal.Decimal // saldo corrido, siempre >= 0
	MinimumQuantity decimal.Decimal // umbral de stock bajo, >= 0
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
