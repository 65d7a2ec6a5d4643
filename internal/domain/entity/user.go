package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleTechnician = "TECHNICIAN"
)

// User representa un usuario del sistema (administrador, supervisor o técnico de campo).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, SUPERVISOR, TECHNICIAN
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
