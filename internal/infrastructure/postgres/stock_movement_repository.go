package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Insert-only: no hay update ni delete de movimientos.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity, responsible_user_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.ResponsibleUserID, nullIfEmpty(movement.Notes), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListRecent lista los movimientos más recientes (created_at DESC, tope limit)
// con nombre/unidad del producto y nombre del responsable para el display.
func (r *StockMovementRepo) ListRecent(limit int) ([]*entity.StockMovementDetail, error) {
	query := `
		SELECT m.id, m.product_id, m.movement_type, m.quantity, m.responsible_user_id, m.notes, m.created_at,
		       p.name, p.unit, pr.full_name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		JOIN profiles pr ON pr.id = m.responsible_user_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementDetail
	for rows.Next() {
		var d entity.StockMovementDetail
		var notes *string
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Type, &d.Quantity, &d.ResponsibleUserID,
			&notes, &d.CreatedAt, &d.ProductName, &d.ProductUnit, &d.ResponsibleName); err != nil {
			return nil, fmt.Errorf("scan movement detail: %w", err)
		}
		if notes != nil {
			d.Notes = *notes
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByProduct lista movimientos de un producto (created_at DESC) con paginación.
func (r *StockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, responsible_user_id, notes, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListAllByProduct devuelve el historial completo en orden cronológico ascendente
// (desempate por id para orden estable). Usado por el replay del saldo.
func (r *StockMovementRepo) ListAllByProduct(productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, movement_type, quantity, responsible_user_id, notes, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list all by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var notes *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.ResponsibleUserID, &notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
