package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listados de productos.
type ProductFilter struct {
	CategoryID string // vacío = todas
	LowStock   bool   // true = solo productos con current_quantity <= minimum_quantity
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity es el único camino de escritura de current_quantity y solo
// lo invoca el ledger dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity decimal.Decimal, updatedAt time.Time) error
	List(filter ProductFilter) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
