package warehouse

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// SerialNumberUseCase consultas y altas sobre el registro de números de serie.
// Las altas pasan por el motor de movimientos (ADD_STOCK) para que queden en la
// misma transacción y con el mismo registro de auditoría que el resto de operaciones.
type SerialNumberUseCase struct {
	itemRepo   repository.WarehouseItemRepository
	serialRepo repository.SerialNumberRepository
	userRepo   repository.UserRepository
	movementUC *MovementUseCase
}

// NewSerialNumberUseCase construye el caso de uso.
func NewSerialNumberUseCase(
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	userRepo repository.UserRepository,
	movementUC *MovementUseCase,
) *SerialNumberUseCase {
	return &SerialNumberUseCase{itemRepo: itemRepo, serialRepo: serialRepo, userRepo: userRepo, movementUC: movementUC}
}

// List unidades de un ítem con filtros opcionales (ubicación, técnico, estado),
// ordenadas por número de serie. Usada para armar formularios de "disponibles a elegir".
func (uc *SerialNumberUseCase) List(itemID string, filter repository.SerialNumberFilter) ([]dto.SerialNumberResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	units, err := uc.serialRepo.ListByItem(itemID, filter)
	if err != nil {
		return nil, err
	}
	// Resuelve nombres de técnicos una sola vez
	names := make(map[string]string)
	out := make([]dto.SerialNumberResponse, 0, len(units))
	for _, u := range units {
		resp := toSerialNumberResponse(u)
		if u.TechnicianID != "" {
			name, ok := names[u.TechnicianID]
			if !ok {
				if tech, err := uc.userRepo.GetByID(u.TechnicianID); err == nil && tech != nil {
					name = tech.Name
				}
				names[u.TechnicianID] = name
			}
			resp.TechnicianName = name
		}
		out = append(out, resp)
	}
	return out, nil
}

// Add da de alta números de serie (manual o autogenerado) vía el motor de
// movimientos; el ítem debe estar marcado como serializado.
func (uc *SerialNumberUseCase) Add(ctx context.Context, actor domain.Actor, itemID string, in dto.AddSerialNumbersRequest) (*dto.MovementResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !item.TracksSerialNumbers {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Manual) > 0 && in.Auto != nil {
		return nil, domain.ErrInvalidInput
	}
	input := MovementInput{
		ItemID:        itemID,
		MovementType:  entity.MovementTypeAddStock,
		SerialNumbers: in.Manual,
		Notes:         in.Notes,
	}
	if in.Auto != nil {
		input.AutoCount = in.Auto.Count
	}
	return uc.movementUC.ApplyMovement(ctx, actor, input)
}

func toSerialNumberResponse(u *entity.SerialNumberStock) dto.SerialNumberResponse {
	return dto.SerialNumberResponse{
		ID:           u.ID,
		ItemID:       u.ItemID,
		SerialNumber: u.SerialNumber,
		Location:     u.Location,
		Status:       u.Status,
		TechnicianID: u.TechnicianID,
		CreatedAt:    u.CreatedAt,
	}
}
