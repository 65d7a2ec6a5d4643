package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// InterventionRepository puerto mínimo sobre intervenciones para el consumo de
// repuestos: resolver técnico asignado/estado y registrar las partes usadas.
type InterventionRepository interface {
	GetByID(id string) (*entity.Intervention, error)
	CreatePart(part *entity.InterventionPart) error
	ListParts(interventionID string) ([]*entity.InterventionPart, error)
}
