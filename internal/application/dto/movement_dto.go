package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
// ResponsibleUserID debe coincidir con la identidad del token; no se permite
// registrar movimientos a nombre de otro usuario.
type RegisterMovementRequest struct {
	ProductID         string          `json:"product_id"`
	Type              string          `json:"movement_type"` // entry | exit
	Quantity          decimal.Decimal `json:"quantity"`
	ResponsibleUserID string          `json:"responsible_user_id"`
	Notes             string          `json:"notes,omitempty"`
}

// MovementResponse salida del movimiento creado, incluyendo el saldo resultante.
type MovementResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	Type              string          `json:"movement_type"`
	Quantity          decimal.Decimal `json:"quantity"`
	ResponsibleUserID string          `json:"responsible_user_id"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	ResultingQuantity decimal.Decimal `json:"resulting_quantity"`
}

// MovementDetailResponse movimiento enriquecido para el historial.
type MovementDetailResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductUnit     string          `json:"product_unit"`
	Type            string          `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	ResponsibleName string          `json:"responsible_name"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// MovementListResponse historial de movimientos (created_at DESC).
type MovementListResponse struct {
	Items []MovementDetailResponse `json:"items"`
	Total int                      `json:"total"`
}

// ProductMovementResponse movimiento dentro del historial de un producto.
type ProductMovementResponse struct {
	ID                string          `json:"id"`
	Type              string          `json:"movement_type"`
	Quantity          decimal.Decimal `json:"quantity"`
	ResponsibleUserID string          `json:"responsible_user_id"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ProductMovementListResponse historial paginado de un producto (created_at DESC).
type ProductMovementListResponse struct {
	ProductID string                    `json:"product_id"`
	Items     []ProductMovementResponse `json:"items"`
	Page      PageResponse              `json:"page"`
}

// RecomputeResponse resultado del recálculo de saldo de un producto.
type RecomputeResponse struct {
	ProductID        string          `json:"product_id"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	Quantity         decimal.Decimal `json:"quantity"`
	MovementsApplied int             `json:"movements_applied"`
}
