package repository

import "context"

// MetricsRepository define las consultas de lectura para las métricas del dashboard.
// Las implementaciones son read-only (no modifican datos) y cada conteo es
// independiente: pueden ejecutarse en cualquier orden o en paralelo.
type MetricsRepository interface {
	// CountProducts devuelve el total de productos registrados.
	CountProducts(ctx context.Context) (int, error)
	// CountLowStock devuelve cuántos productos están en stock bajo
	// (current_quantity <= minimum_quantity, no estricto).
	CountLowStock(ctx context.Context) (int, error)
	// CountMovementsByType devuelve el total de movimientos del tipo dado.
	CountMovementsByType(ctx context.Context, movementType string) (int, error)
}
