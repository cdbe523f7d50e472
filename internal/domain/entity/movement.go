package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement representa un movimiento de inventario (entrada o salida).
// Es append-only: una vez creado nunca se modifica ni se borra, aunque el
// producto referenciado pase a inactivo.
type Movement struct {
	ID          string
	ProductCode string
	Type        string // IN, OUT
	Quantity    int64  // siempre positiva; el tipo define el signo del efecto
	Notes       string
	CreatedBy   string // username del autor
	CreatedAt   time.Time
}
