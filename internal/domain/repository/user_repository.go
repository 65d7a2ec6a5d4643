package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// ListTechnicians lista los usuarios con rol TECHNICIAN ordenados por nombre.
	ListTechnicians() ([]*entity.User, error)
}
