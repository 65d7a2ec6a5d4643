package repository

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// WarehouseItemRepository define el puerto de persistencia para el catálogo de repuestos.
type WarehouseItemRepository interface {
	Create(item *entity.WarehouseItem) error
	GetByID(id string) (*entity.WarehouseItem, error)
	// GetForUpdate bloquea la fila del ítem (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.WarehouseItem, error)
	Update(item *entity.WarehouseItem) error
	// UpdateStock actualiza solo el contador de bodega central.
	UpdateStock(id string, mainWarehouse int) error
	List(limit, offset int) ([]*entity.WarehouseItem, error)
	Delete(id string) error
}
