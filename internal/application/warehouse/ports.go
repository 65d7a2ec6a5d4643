package warehouse

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de movimientos: validación,
// mutación de contadores/registro y auditoría comparten Commit/Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.WarehouseItemRepository,
		serialRepo repository.SerialNumberRepository,
		techStockRepo repository.TechnicianStockRepository,
		movRepo repository.ItemMovementRepository,
	) error) error
}
