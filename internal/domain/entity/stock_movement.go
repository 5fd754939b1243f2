package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada
	MovementTypeExit  = "exit"  // salida
)

// StockMovement representa una entrada o salida de stock de un producto.
// Inmutable una vez creado: el ledger es append-only, no se expone update ni delete.
type StockMovement struct {
	ID                string
	ProductID         string
	Type              string          // entry | exit
	Quantity          decimal.Decimal // siempre > 0, el signo lo da el tipo
	ResponsibleUserID string          // debe ser la identidad que ejecuta la escritura
	Notes             string
	CreatedAt         time.Time
}

// StockMovementDetail movimiento enriquecido para listados
// (join con nombre/unidad del producto y nombre del responsable).
type StockMovementDetail struct {
	StockMovement
	ProductName     string
	ProductUnit     string
	ResponsibleName string
}
