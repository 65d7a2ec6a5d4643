package intervention

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/warehouse"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	domintervention "github.com/jhoicas/Mantenimiento-api/internal/domain/intervention"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// PartsUseCase consumo de repuestos contra una intervención: único caller del
// motor de movimientos que restringe USE al técnico asignado. Aplica el USE y
// crea el InterventionPart en la misma transacción.
type PartsUseCase struct {
	txRunner         TxRunner
	interventionRepo repository.InterventionRepository
	itemRepo         repository.WarehouseItemRepository
	serialRepo       repository.SerialNumberRepository
	movementUC       *warehouse.MovementUseCase
}

// NewPartsUseCase construye el caso de uso.
func NewPartsUseCase(
	txRunner TxRunner,
	interventionRepo repository.InterventionRepository,
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	movementUC *warehouse.MovementUseCase,
) *PartsUseCase {
	return &PartsUseCase{
		txRunner:         txRunner,
		interventionRepo: interventionRepo,
		itemRepo:         itemRepo,
		serialRepo:       serialRepo,
		movementUC:       movementUC,
	}
}

// ConsumeForIntervention registra repuestos usados en una intervención:
// resuelve el técnico asignado, verifica que el estado no sea terminal para el
// rol del actor (contrato de permisos, no se duplica aquí), valida la tenencia
// (unidades del técnico en serializados, cantidad en granel), aplica el USE y
// vincula el consumo a la intervención. Todo o nada.
func (uc *PartsUseCase) ConsumeForIntervention(ctx context.Context, actor domain.Actor, interventionID string, in dto.AddInterventionPartRequest) (*dto.InterventionPartResponse, error) {
	if interventionID == "" || in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var part *entity.InterventionPart
	err := uc.txRunner.RunIntervention(ctx, func(
		itemRepo repository.WarehouseItemRepository,
		serialRepo repository.SerialNumberRepository,
		techStockRepo repository.TechnicianStockRepository,
		movRepo repository.ItemMovementRepository,
		interventionRepo repository.InterventionRepository,
	) error {
		itv, err := interventionRepo.GetByID(interventionID)
		if err != nil {
			return err
		}
		if itv == nil {
			return domain.ErrNotFound
		}
		if !domintervention.CanEdit(actor.Role, itv.Status) {
			return domain.ErrForbidden
		}
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		if item.TracksSerialNumbers {
			// Exactamente Quantity unidades, todas en poder del técnico asignado
			if len(in.SerialNumberIDs) != in.Quantity {
				return domain.ErrInvalidInput
			}
			units, err := serialRepo.GetByIDsForUpdate(in.ItemID, in.SerialNumberIDs)
			if err != nil {
				return err
			}
			if len(units) != len(in.SerialNumberIDs) {
				return domain.ErrNotFound
			}
			for _, u := range units {
				if u.Location != entity.LocationTechnician ||
					u.TechnicianID != itv.AssignedToID ||
					u.Status != entity.SerialStatusAvailable {
					return domain.ErrUnitNotAssigned
				}
			}
		} else {
			if len(in.SerialNumberIDs) > 0 {
				return domain.ErrInvalidInput
			}
			stock, err := techStockRepo.Get(in.ItemID, itv.AssignedToID)
			if err != nil {
				return err
			}
			available := 0
			if stock != nil {
				available = stock.Quantity
			}
			if available < in.Quantity {
				return &domain.InsufficientStockError{Available: available}
			}
		}

		movement, err := uc.movementUC.ApplyInTx(itemRepo, serialRepo, techStockRepo, movRepo, actor, warehouse.MovementInput{
			ItemID:          in.ItemID,
			MovementType:    entity.MovementTypeUse,
			Quantity:        in.Quantity,
			SerialNumberIDs: in.SerialNumberIDs,
			FromUserID:      itv.AssignedToID,
			Notes:           fmt.Sprintf("Usado en intervención %s", interventionID),
		})
		if err != nil {
			return err
		}

		part = &entity.InterventionPart{
			ID:              uuid.New().String(),
			InterventionID:  interventionID,
			ItemID:          in.ItemID,
			Quantity:        movement.Quantity,
			SerialNumberIDs: in.SerialNumberIDs,
			CreatedAt:       time.Now(),
		}
		return interventionRepo.CreatePart(part)
	})
	if err != nil {
		return nil, err
	}
	return uc.toPartResponse(part)
}

// ListParts repuestos consumidos en una intervención, con los números de serie resueltos.
func (uc *PartsUseCase) ListParts(interventionID string) ([]dto.InterventionPartResponse, error) {
	itv, err := uc.interventionRepo.GetByID(interventionID)
	if err != nil {
		return nil, err
	}
	if itv == nil {
		return nil, domain.ErrNotFound
	}
	parts, err := uc.interventionRepo.ListParts(interventionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InterventionPartResponse, 0, len(parts))
	for _, p := range parts {
		resp, err := uc.toPartResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *PartsUseCase) toPartResponse(p *entity.InterventionPart) (*dto.InterventionPartResponse, error) {
	resp := &dto.InterventionPartResponse{
		ID:             p.ID,
		InterventionID: p.InterventionID,
		ItemID:         p.ItemID,
		Quantity:       p.Quantity,
		CreatedAt:      p.CreatedAt,
	}
	item, err := uc.itemRepo.GetByID(p.ItemID)
	if err != nil {
		return nil, err
	}
	if item != nil {
		resp.ItemName = item.ItemName
		resp.PartNumber = item.PartNumber
	}
	if len(p.SerialNumberIDs) > 0 {
		units, err := uc.serialRepo.GetByIDs(p.ItemID, p.SerialNumberIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range units {
			resp.SerialNumbers = append(resp.SerialNumbers, dto.SerialNumberResponse{
				ID:           u.ID,
				ItemID:       u.ItemID,
				SerialNumber: u.SerialNumber,
				Location:     u.Location,
				Status:       u.Status,
				CreatedAt:    u.CreatedAt,
			})
		}
	}
	return resp, nil
}
