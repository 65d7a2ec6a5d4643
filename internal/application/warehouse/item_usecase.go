package warehouse

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemUseCase CRUD del catálogo de repuestos. La mutación del catálogo está
// restringida por rol (ADMIN/SUPERVISOR) en el router; aquí va la lógica.
type ItemUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.WarehouseItemRepository
	serialRepo    repository.SerialNumberRepository
	techStockRepo repository.TechnicianStockRepository
	movRepo       repository.ItemMovementRepository
	userRepo      repository.UserRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	techStockRepo repository.TechnicianStockRepository,
	movRepo repository.ItemMovementRepository,
	userRepo repository.UserRepository,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		serialRepo:    serialRepo,
		techStockRepo: techStockRepo,
		movRepo:       movRepo,
		userRepo:      userRepo,
	}
}

// Create registra un repuesto. Ítems serializados inician con bodega en 0 (el
// stock real vive en el registro de unidades); en granel el stock inicial queda
// auditado como un movimiento ADD_STOCK en la misma transacción.
func (uc *ItemUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Value.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.AutoSn && (!in.TracksSerialNumbers || in.SnPrefix == "") {
		return nil, domain.ErrInvalidInput
	}
	initialStock := in.MainWarehouse
	if in.TracksSerialNumbers {
		initialStock = 0
	}
	if initialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.WarehouseItem{
		ID:                  uuid.New().String(),
		ItemName:            in.ItemName,
		PartNumber:          in.PartNumber,
		Value:               in.Value,
		TracksSerialNumbers: in.TracksSerialNumbers,
		AutoSn:              in.AutoSn,
		SnPrefix:            in.SnPrefix,
		MainWarehouse:       initialStock,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.WarehouseItemRepository,
		_ repository.SerialNumberRepository,
		_ repository.TechnicianStockRepository,
		movRepo repository.ItemMovementRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if initialStock > 0 {
			return movRepo.Create(&entity.ItemMovement{
				ID:           uuid.New().String(),
				ItemID:       item.ID,
				MovementType: entity.MovementTypeAddStock,
				Quantity:     initialStock,
				Notes:        "Stock inicial",
				CreatedByID:  actor.UserID,
				CreatedAt:    now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toItemResponse(item, false)
}

// GetByID obtiene un repuesto con el stock por técnico y los totales.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toItemResponse(item, true)
}

// List lista el catálogo con los totales de stock calculados.
func (uc *ItemUseCase) List(page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	list, err := uc.itemRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		resp, err := uc.toItemResponse(it, false)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// Update edita nombre, número de parte, valor y configuración de autogeneración.
// TracksSerialNumbers es inmutable después de crear.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.PartNumber != nil {
		item.PartNumber = *in.PartNumber
	}
	if in.Value != nil {
		if in.Value.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Value = *in.Value
	}
	if in.AutoSn != nil {
		item.AutoSn = *in.AutoSn
	}
	if in.SnPrefix != nil {
		item.SnPrefix = *in.SnPrefix
	}
	if item.AutoSn && (!item.TracksSerialNumbers || item.SnPrefix == "") {
		return nil, domain.ErrInvalidInput
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return uc.toItemResponse(item, true)
}

// Delete elimina un repuesto solo si nada lo referencia: sin movimientos, sin
// stock en técnicos y sin unidades serializadas registradas.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByItem(id, 1, 0)
	if err != nil {
		return err
	}
	if len(movements) > 0 {
		return domain.ErrConflict
	}
	stocks, err := uc.techStockRepo.ListByItem(id)
	if err != nil {
		return err
	}
	if len(stocks) > 0 {
		return domain.ErrConflict
	}
	serials, err := uc.serialRepo.ListSerialsByItem(id)
	if err != nil {
		return err
	}
	if len(serials) > 0 {
		return domain.ErrConflict
	}
	return uc.itemRepo.Delete(id)
}

// toItemResponse arma la respuesta con totales. Para serializados el stock de
// bodega se deriva del conteo de unidades en MAIN_WAREHOUSE, no del contador legado.
func (uc *ItemUseCase) toItemResponse(item *entity.WarehouseItem, withTechnicians bool) (*dto.ItemResponse, error) {
	mainWarehouse := item.MainWarehouse
	if item.TracksSerialNumbers {
		count, err := uc.serialRepo.CountByLocation(item.ID, entity.LocationMainWarehouse)
		if err != nil {
			return nil, err
		}
		mainWarehouse = count
	}
	stocks, err := uc.techStockRepo.ListByItem(item.ID)
	if err != nil {
		return nil, err
	}
	totalTech := 0
	var techStocks []dto.TechnicianStockDTO
	for _, s := range stocks {
		totalTech += s.Quantity
		if withTechnicians {
			techDTO := dto.TechnicianStockDTO{TechnicianID: s.TechnicianID, Quantity: s.Quantity}
			if tech, err := uc.userRepo.GetByID(s.TechnicianID); err == nil && tech != nil {
				techDTO.TechnicianName = tech.Name
			}
			techStocks = append(techStocks, techDTO)
		}
	}
	return &dto.ItemResponse{
		ID:                   item.ID,
		ItemName:             item.ItemName,
		PartNumber:           item.PartNumber,
		Value:                item.Value,
		TracksSerialNumbers:  item.TracksSerialNumbers,
		AutoSn:               item.AutoSn,
		SnPrefix:             item.SnPrefix,
		MainWarehouse:        mainWarehouse,
		TotalTechnicianStock: totalTech,
		TotalStock:           mainWarehouse + totalTech,
		TechnicianStocks:     techStocks,
		CreatedAt:            item.CreatedAt,
		UpdatedAt:            item.UpdatedAt,
	}, nil
}
