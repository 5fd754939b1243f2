// Package stock contiene las reglas puras del ledger de inventario:
// aplicación de movimientos sobre el saldo corrido (con clamp en cero)
// y la clasificación de stock bajo. Sin dependencias de persistencia.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Apply calcula el nuevo saldo tras aplicar un movimiento sobre el saldo actual.
//
//	entry: Q' = Q + cantidad
//	exit:  Q' = max(Q - cantidad, 0)
//
// Una salida mayor al saldo NO se rechaza: se acepta y el saldo queda en cero.
// Esto implica que el saldo no se recupera sumando cantidades con signo; hay
// que replicar el clamp paso a paso (ver Replay).
func Apply(current decimal.Decimal, movementType string, quantity decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	switch movementType {
	case entity.MovementTypeEntry:
		return current.Add(quantity), nil
	case entity.MovementTypeExit:
		next := current.Sub(quantity)
		if next.LessThan(decimal.Zero) {
			return decimal.Zero, nil
		}
		return next, nil
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
}

// Replay recalcula el saldo de un producto plegando todo su historial de
// movimientos en orden cronológico, aplicando el clamp en cada paso.
// Es la operación de reparación/auditoría; el camino normal es el saldo corrido.
func Replay(movements []*entity.StockMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		next, err := Apply(balance, m.Type, m.Quantity)
		if err != nil {
			// Movimientos persistidos nunca deberían ser inválidos; se ignoran.
			continue
		}
		balance = next
	}
	return balance
}

// IsLowStock indica si el producto está en stock bajo.
// No estricto: un producto exactamente en su mínimo cuenta como stock bajo.
func IsLowStock(p *entity.Product) bool {
	return p.CurrentQuantity.LessThanOrEqual(p.MinimumQuantity)
}

// IsValidMovementType valida el tipo de movimiento.
func IsValidMovementType(t string) bool {
	return t == entity.MovementTypeEntry || t == entity.MovementTypeExit
}
