package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// ItemMovementRepository define el puerto de persistencia para el historial de movimientos.
// Los movimientos son inmutables: solo Create y lecturas.
type ItemMovementRepository interface {
	Create(movement *entity.ItemMovement) error
	// LinkSerialNumbers crea las filas de join movimiento ↔ unidades serializadas.
	LinkSerialNumbers(movementID string, serialNumberIDs []string) error
	GetByID(id string) (*entity.ItemMovement, error)
	// ListByItem lista movimientos de un ítem, más recientes primero, con sus unidades vinculadas.
	ListByItem(itemID string, limit, offset int) ([]*entity.ItemMovement, error)
}
