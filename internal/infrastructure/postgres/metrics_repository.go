package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas read-only para el dashboard. Sin bloqueos: un conteo
// puede estar momentáneamente desfasado respecto a un movimiento en vuelo.
type MetricsRepo struct {
	q Querier
}

// NewMetricsRepository construye el adaptador de métricas. Pasar pool (read-only).
func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

// CountProducts devuelve el total de productos registrados.
func (r *MetricsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountLowStock cuenta productos con current_quantity <= minimum_quantity (no estricto).
func (r *MetricsRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE current_quantity <= minimum_quantity`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// CountMovementsByType cuenta movimientos del tipo dado (entry o exit).
func (r *MetricsRepo) CountMovementsByType(ctx context.Context, movementType string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_movements WHERE movement_type = $1`, movementType,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
