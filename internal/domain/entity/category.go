package entity

import "time"

// Category representa una categoría de productos. Ciclo de vida independiente:
// eliminarla no elimina productos, solo limpia su referencia (SET NULL).
type Category struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
}
