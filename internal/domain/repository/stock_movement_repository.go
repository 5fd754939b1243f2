package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del ledger (DIP).
// Insert-only: el ledger es append-only, no hay update ni delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListRecent devuelve los movimientos más recientes (created_at DESC, tope limit)
	// con nombre/unidad del producto y nombre del responsable para el display.
	ListRecent(limit int) ([]*entity.StockMovementDetail, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListAllByProduct devuelve el historial completo en orden cronológico ascendente.
	// Usado por el recálculo de saldo (replay con clamp).
	ListAllByProduct(productID string) ([]*entity.StockMovement, error)
}
