package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// SerialNumberFilter filtros opcionales para listar unidades serializadas.
// Campos vacíos no filtran.
type SerialNumberFilter struct {
	Location     string
	TechnicianID string
	Status       string
}

// SerialNumberRepository define el puerto del registro de números de serie.
type SerialNumberRepository interface {
	CreateBatch(units []*entity.SerialNumberStock) error
	ListByItem(itemID string, filter SerialNumberFilter) ([]*entity.SerialNumberStock, error)
	// ListSerialsByItem devuelve solo los strings de serie del ítem (chequeo de
	// duplicados y escaneo de sufijo máximo para autogeneración).
	ListSerialsByItem(itemID string) ([]string, error)
	// GetByIDs resuelve unidades por ID dentro de un ítem, sin bloqueo (lecturas).
	GetByIDs(itemID string, ids []string) ([]*entity.SerialNumberStock, error)
	// GetByIDsForUpdate resuelve y bloquea (FOR UPDATE) las unidades indicadas del ítem.
	// Devuelve solo las encontradas; el caller detecta faltantes por conteo.
	GetByIDsForUpdate(itemID string, ids []string) ([]*entity.SerialNumberStock, error)
	// UpdateState cambia ubicación/estado/técnico de un conjunto de unidades.
	// technicianID vacío limpia la asignación.
	UpdateState(ids []string, location, status, technicianID string) error
	// CountByTechnician cuenta las unidades del ítem en poder del técnico
	// (location = TECHNICIAN). Fuente de verdad para el contador derivado.
	CountByTechnician(itemID, technicianID string) (int, error)
	// CountByLocation cuenta unidades del ítem en una ubicación (stock derivado de serializados).
	CountByLocation(itemID, location string) (int, error)
}
