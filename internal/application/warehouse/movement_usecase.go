package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// MovementInput entrada del motor de movimientos.
// Granel: Quantity. Serializados: SerialNumberIDs (unidades existentes) o, para
// ADD_STOCK, SerialNumbers (alta manual) / AutoCount (autogeneración).
type MovementInput struct {
	ItemID          string
	MovementType    string
	Quantity        int
	SerialNumberIDs []string
	SerialNumbers   []string
	AutoCount       int
	FromUserID      string
	ToUserID        string
	Notes           string
}

// MovementUseCase motor de movimientos de stock: despacha según el modo del ítem
// (granel o serializado) a una estrategia stockMover, dentro de una transacción
// con bloqueo de filas (SELECT FOR UPDATE) y Commit/Rollback.
type MovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.WarehouseItemRepository
	movRepo  repository.ItemMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	itemRepo repository.WarehouseItemRepository,
	movRepo repository.ItemMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// stockMover capacidad de movimiento de stock. Dos estrategias: bulkMover para
// ítems a granel (aritmética de contadores) y serializedMover para ítems con
// números de serie (transiciones de estado por unidad). Cada método devuelve la
// cantidad movida y las unidades involucradas (vacío en granel).
type stockMover interface {
	add(in MovementInput) (int, []string, error)
	remove(in MovementInput) (int, []string, error)
	transferToTech(in MovementInput) (int, []string, error)
	transferFromTech(in MovementInput) (int, []string, error)
	use(in MovementInput) (int, []string, error)
}

// ApplyMovement valida la entrada, abre una transacción y aplica el movimiento.
// El registro de auditoría se escribe solo si todas las mutaciones tuvieron éxito;
// una validación fallida aborta sin mutar nada.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, actor domain.Actor, in MovementInput) (*dto.MovementResponse, error) {
	if in.ItemID == "" || actor.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.MovementType {
	case entity.MovementTypeAddStock, entity.MovementTypeRemoveStock,
		entity.MovementTypeTransferToTech, entity.MovementTypeTransferFromTech,
		entity.MovementTypeUse:
	default:
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.ItemMovement
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.WarehouseItemRepository,
		serialRepo repository.SerialNumberRepository,
		techStockRepo repository.TechnicianStockRepository,
		movRepo repository.ItemMovementRepository,
	) error {
		var err error
		movement, err = uc.ApplyInTx(itemRepo, serialRepo, techStockRepo, movRepo, actor, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// ApplyInTx aplica un movimiento usando repositorios ya atados a la transacción
// del caller (integración consumo-intervención, misma tx). Bloquea la fila del
// ítem, selecciona la estrategia según TracksSerialNumbers, ejecuta la operación
// y escribe el registro ItemMovement al final.
func (uc *MovementUseCase) ApplyInTx(
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	techStockRepo repository.TechnicianStockRepository,
	movRepo repository.ItemMovementRepository,
	actor domain.Actor,
	in MovementInput,
) (*entity.ItemMovement, error) {
	// Bloquea la fila del ítem: re-lee el estado actual dentro de la tx antes de mutar
	item, err := itemRepo.GetForUpdate(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	var mover stockMover
	if item.TracksSerialNumbers {
		mover = &serializedMover{item: item, serialRepo: serialRepo, techStockRepo: techStockRepo}
	} else {
		mover = &bulkMover{item: item, itemRepo: itemRepo, techStockRepo: techStockRepo}
	}

	var qty int
	var serialIDs []string
	switch in.MovementType {
	case entity.MovementTypeAddStock:
		qty, serialIDs, err = mover.add(in)
	case entity.MovementTypeRemoveStock:
		qty, serialIDs, err = mover.remove(in)
	case entity.MovementTypeTransferToTech:
		qty, serialIDs, err = mover.transferToTech(in)
	case entity.MovementTypeTransferFromTech:
		qty, serialIDs, err = mover.transferFromTech(in)
	case entity.MovementTypeUse:
		qty, serialIDs, err = mover.use(in)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	// Registro de auditoría: último paso, solo tras mutaciones exitosas.
	// CreatedByID siempre es el actor verificado, nunca un campo del body.
	movement := &entity.ItemMovement{
		ID:              uuid.New().String(),
		ItemID:          in.ItemID,
		MovementType:    in.MovementType,
		Quantity:        qty,
		FromUserID:      in.FromUserID,
		ToUserID:        in.ToUserID,
		Notes:           in.Notes,
		CreatedByID:     actor.UserID,
		CreatedAt:       time.Now(),
		SerialNumberIDs: serialIDs,
	}
	if err := movRepo.Create(movement); err != nil {
		return nil, err
	}
	if len(serialIDs) > 0 {
		if err := movRepo.LinkSerialNumbers(movement.ID, serialIDs); err != nil {
			return nil, err
		}
	}
	return movement, nil
}

// ListMovements historial de movimientos de un ítem, más recientes primero.
func (uc *MovementUseCase) ListMovements(itemID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByItem(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

func toMovementResponse(m *entity.ItemMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:              m.ID,
		ItemID:          m.ItemID,
		MovementType:    m.MovementType,
		Quantity:        m.Quantity,
		Sign:            m.Sign(),
		FromUserID:      m.FromUserID,
		ToUserID:        m.ToUserID,
		Notes:           m.Notes,
		CreatedByID:     m.CreatedByID,
		CreatedAt:       m.CreatedAt,
		SerialNumberIDs: m.SerialNumberIDs,
	}
}
