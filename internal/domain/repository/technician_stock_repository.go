package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// TechnicianStockRepository define el puerto para el stock en poder de técnicos.
// "Sin fila" significa cantidad cero, nunca error.
type TechnicianStockRepository interface {
	// Get devuelve nil (sin error) si el técnico no tiene el ítem.
	Get(itemID, technicianID string) (*entity.TechnicianStock, error)
	// GetForUpdate igual que Get pero bloquea la fila si existe (SELECT FOR UPDATE).
	GetForUpdate(itemID, technicianID string) (*entity.TechnicianStock, error)
	// Upsert crea o actualiza la fila con la cantidad dada (> 0).
	Upsert(itemID, technicianID string, quantity int) error
	// Delete elimina la fila (cantidad llegó a 0). No falla si no existe.
	Delete(itemID, technicianID string) error
	ListByTechnician(technicianID string) ([]*entity.TechnicianStock, error)
	ListByItem(itemID string) ([]*entity.TechnicianStock, error)
}
