package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// ProductUseCase casos de uso CRUD para productos.
// CurrentQuantity nunca se escribe aquí: todo cambio de saldo pasa por el ledger,
// incluido el saldo inicial opcional en la creación.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	ledgerUC     *ledger.LedgerUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	ledgerUC *ledger.LedgerUseCase,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, ledgerUC: ledgerUC}
}

// Create crea un producto con saldo 0. Si viene InitialQuantity > 0 se registra
// como un movimiento de entrada a nombre del actor, a través del ledger.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinimumQuantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		CategoryID:      in.CategoryID,
		Unit:            in.Unit,
		CurrentQuantity: decimal.Zero,
		MinimumQuantity: in.MinimumQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	if in.InitialQuantity != nil && in.InitialQuantity.GreaterThan(decimal.Zero) {
		mov, err := uc.ledgerUC.RegisterMovement(ctx, actorID, dto.RegisterMovementRequest{
			ProductID:         product.ID,
			Type:              entity.MovementTypeEntry,
			Quantity:          *in.InitialQuantity,
			ResponsibleUserID: actorID,
			Notes:             "saldo inicial",
		})
		if err != nil {
			return nil, err
		}
		product.CurrentQuantity = mov.ResultingQuantity
		product.UpdatedAt = mov.CreatedAt
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar CurrentQuantity (se maneja vía movimientos).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		if *in.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.MinimumQuantity != nil {
		if in.MinimumQuantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MinimumQuantity = *in.MinimumQuantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos ordenados por nombre, con filtros opcionales de
// categoría y stock bajo.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ListLowStock devuelve los productos en stock bajo para las alertas.
// Recalculado en cada lectura desde el snapshot más reciente; sin estado propio.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Sus movimientos se eliminan en cascada.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		Unit:            p.Unit,
		CurrentQuantity: p.CurrentQuantity,
		MinimumQuantity: p.MinimumQuantity,
		LowStock:        stock.IsLowStock(p),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
