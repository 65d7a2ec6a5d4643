package intervention

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// TxRunner transacción para el consumo de repuestos en intervenciones: mismos
// repositorios del motor de movimientos más el de intervenciones, todos atados
// a una sola tx (el movimiento USE y el InterventionPart comparten Commit).
type TxRunner interface {
	RunIntervention(ctx context.Context, fn func(
		itemRepo repository.WarehouseItemRepository,
		serialRepo repository.SerialNumberRepository,
		techStockRepo repository.TechnicianStockRepository,
		movRepo repository.ItemMovementRepository,
		interventionRepo repository.InterventionRepository,
	) error) error
}
