package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleGerente      = "gerente"
	RoleVisualizador = "visualizador"
)

// IsValidRole indica si s es uno de los roles conocidos.
func IsValidRole(s string) bool {
	return s == RoleAdmin || s == RoleGerente || s == RoleVisualizador
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, gerente, visualizador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
