// Package ledger implementa el núcleo del sistema: validación de movimientos,
// mantenimiento atómico del saldo corrido de cada producto y el recálculo de
// reparación sobre el historial completo.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// Tope por defecto del historial reciente de movimientos.
const DefaultRecentLimit = 50

// LedgerUseCase registra movimientos de stock de forma transaccional con bloqueo
// de fila (SELECT FOR UPDATE) y Commit/Rollback, y expone las lecturas del ledger.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// RegisterMovement valida y registra un movimiento de stock.
//
// Validación (sin efectos si falla):
//   - movement_type debe ser entry o exit
//   - quantity debe ser > 0
//   - responsible_user_id debe ser la identidad que ejecuta (actorID)
//   - el producto debe existir
//
// Aplicación: dentro de una transacción se bloquea la fila del producto, se
// inserta el movimiento y se escribe el nuevo saldo (entry suma; exit resta con
// clamp en cero) refrescando updated_at. Movimientos concurrentes sobre el mismo
// producto serializan en el lock de fila; sobre productos distintos no se coordinan.
//
// Política de salida excedida: una salida mayor al saldo NO se rechaza; se acepta
// y el saldo queda exactamente en cero. Comportamiento observado del sistema
// original que debe preservarse tal cual.
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, actorID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !stock.IsValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.ResponsibleUserID != actorID {
		return nil, domain.ErrForbidden
	}
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Pre-chequeo fuera de la tx para responder NotFound sin abrir transacción.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:                uuid.New().String(),
		ProductID:         in.ProductID,
		Type:              in.Type,
		Quantity:          in.Quantity,
		ResponsibleUserID: in.ResponsibleUserID,
		Notes:             in.Notes,
		CreatedAt:         now,
	}
	var resulting decimal.Decimal

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para evitar lost updates entre lecturas
		// y escrituras concurrentes del saldo.
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newQty, err := stock.Apply(locked.CurrentQuantity, in.Type, in.Quantity)
		if err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(in.ProductID, newQty, now); err != nil {
			return err
		}
		resulting = newQty
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:                mov.ID,
		ProductID:         mov.ProductID,
		Type:              mov.Type,
		Quantity:          mov.Quantity,
		ResponsibleUserID: mov.ResponsibleUserID,
		Notes:             mov.Notes,
		CreatedAt:         mov.CreatedAt,
		ResultingQuantity: resulting,
	}, nil
}

// RecomputeBalance recalcula el saldo de un producto plegando su historial
// completo con clamp en cada paso y reescribe current_quantity, todo dentro de
// una transacción con la fila bloqueada. Gancho de reparación: no forma parte
// del camino normal de escritura.
func (uc *LedgerUseCase) RecomputeBalance(ctx context.Context, productID string) (*dto.RecomputeResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.RecomputeResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		movs, err := movRepo.ListAllByProduct(productID)
		if err != nil {
			return err
		}
		balance := stock.Replay(movs)
		if err := productRepo.UpdateQuantity(productID, balance, time.Now()); err != nil {
			return err
		}
		out = dto.RecomputeResponse{
			ProductID:        productID,
			PreviousQuantity: product.CurrentQuantity,
			Quantity:         balance,
			MovementsApplied: len(movs),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecent devuelve los movimientos más recientes (created_at DESC) con los
// datos de display del producto y del responsable. limit <= 0 usa el tope por defecto.
func (uc *LedgerUseCase) ListRecent(limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 || limit > DefaultRecentLimit {
		limit = DefaultRecentLimit
	}
	list, err := uc.movRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementDetailResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementDetailResponse{
			ID:              m.ID,
			ProductID:       m.ProductID,
			ProductName:     m.ProductName,
			ProductUnit:     m.ProductUnit,
			Type:            m.Type,
			Quantity:        m.Quantity,
			ResponsibleName: m.ResponsibleName,
			Notes:           m.Notes,
			CreatedAt:       m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// ListByProduct devuelve el historial de un producto con paginación.
func (uc *LedgerUseCase) ListByProduct(productID string, limit, offset int) (*dto.ProductMovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.ProductMovementResponse{
			ID:                m.ID,
			Type:              m.Type,
			Quantity:          m.Quantity,
			ResponsibleUserID: m.ResponsibleUserID,
			Notes:             m.Notes,
			CreatedAt:         m.CreatedAt,
		})
	}
	return &dto.ProductMovementListResponse{
		ProductID: productID,
		Items:     items,
		Page:      dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
