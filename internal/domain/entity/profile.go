package entity

import "time"

// Profile representa la identidad de un usuario del sistema.
// Se crea exactamente una vez en el registro y es el responsable de los movimientos.
type Profile struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	CreatedAt    time.Time
}
