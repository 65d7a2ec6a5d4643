package warehouse

import (
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// bulkMover estrategia para ítems a granel: aritmética sobre el contador de
// bodega central y las filas de stock por técnico. La fila del ítem ya llegó
// bloqueada (GetForUpdate) desde el despachador.
// Invariante: ningún contador queda negativo; la fila del técnico se elimina al llegar a 0.
type bulkMover struct {
	item          *entity.WarehouseItem
	itemRepo      repository.WarehouseItemRepository
	techStockRepo repository.TechnicianStockRepository
}

func (m *bulkMover) add(in MovementInput) (int, []string, error) {
	if in.Quantity <= 0 {
		return 0, nil, domain.ErrInvalidInput
	}
	if err := m.itemRepo.UpdateStock(m.item.ID, m.item.MainWarehouse+in.Quantity); err != nil {
		return 0, nil, err
	}
	return in.Quantity, nil, nil
}

func (m *bulkMover) remove(in MovementInput) (int, []string, error) {
	if in.Quantity <= 0 {
		return 0, nil, domain.ErrInvalidInput
	}
	if m.item.MainWarehouse < in.Quantity {
		return 0, nil, &domain.InsufficientStockError{Available: m.item.MainWarehouse}
	}
	if err := m.itemRepo.UpdateStock(m.item.ID, m.item.MainWarehouse-in.Quantity); err != nil {
		return 0, nil, err
	}
	return in.Quantity, nil, nil
}

func (m *bulkMover) transferToTech(in MovementInput) (int, []string, error) {
	if in.Quantity <= 0 || in.ToUserID == "" {
		return 0, nil, domain.ErrInvalidInput
	}
	if m.item.MainWarehouse < in.Quantity {
		return 0, nil, &domain.InsufficientStockError{Available: m.item.MainWarehouse}
	}
	if err := m.itemRepo.UpdateStock(m.item.ID, m.item.MainWarehouse-in.Quantity); err != nil {
		return 0, nil, err
	}
	// Bloquea la fila del técnico si existe; crea si no
	stock, err := m.techStockRepo.GetForUpdate(m.item.ID, in.ToUserID)
	if err != nil {
		return 0, nil, err
	}
	current := 0
	if stock != nil {
		current = stock.Quantity
	}
	if err := m.techStockRepo.Upsert(m.item.ID, in.ToUserID, current+in.Quantity); err != nil {
		return 0, nil, err
	}
	return in.Quantity, nil, nil
}

func (m *bulkMover) transferFromTech(in MovementInput) (int, []string, error) {
	qty, err := m.takeFromTechnician(in)
	if err != nil {
		return 0, nil, err
	}
	if err := m.itemRepo.UpdateStock(m.item.ID, m.item.MainWarehouse+qty); err != nil {
		return 0, nil, err
	}
	return qty, nil, nil
}

// use descuenta del técnico sin devolver a bodega: el stock sale de circulación.
func (m *bulkMover) use(in MovementInput) (int, []string, error) {
	qty, err := m.takeFromTechnician(in)
	if err != nil {
		return 0, nil, err
	}
	return qty, nil, nil
}

// takeFromTechnician valida y descuenta la cantidad del stock del técnico origen,
// eliminando la fila si llega a 0.
func (m *bulkMover) takeFromTechnician(in MovementInput) (int, error) {
	if in.Quantity <= 0 || in.FromUserID == "" {
		return 0, domain.ErrInvalidInput
	}
	stock, err := m.techStockRepo.GetForUpdate(m.item.ID, in.FromUserID)
	if err != nil {
		return 0, err
	}
	available := 0
	if stock != nil {
		available = stock.Quantity
	}
	if available < in.Quantity {
		return 0, &domain.InsufficientStockError{Available: available}
	}
	remaining := available - in.Quantity
	if remaining == 0 {
		if err := m.techStockRepo.Delete(m.item.ID, in.FromUserID); err != nil {
			return 0, err
		}
	} else {
		if err := m.techStockRepo.Upsert(m.item.ID, in.FromUserID, remaining); err != nil {
			return 0, err
		}
	}
	return in.Quantity, nil
}
