package warehouse

import (
	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TechnicianStockUseCase vistas de lectura del stock en poder de técnicos.
type TechnicianStockUseCase struct {
	userRepo      repository.UserRepository
	techStockRepo repository.TechnicianStockRepository
	itemRepo      repository.WarehouseItemRepository
	serialRepo    repository.SerialNumberRepository
}

// NewTechnicianStockUseCase construye el caso de uso.
func NewTechnicianStockUseCase(
	userRepo repository.UserRepository,
	techStockRepo repository.TechnicianStockRepository,
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
) *TechnicianStockUseCase {
	return &TechnicianStockUseCase{
		userRepo:      userRepo,
		techStockRepo: techStockRepo,
		itemRepo:      itemRepo,
		serialRepo:    serialRepo,
	}
}

// ListWithStock lista todos los técnicos con su stock, total de unidades y
// valor total (cantidad × valor unitario del catálogo).
func (uc *TechnicianStockUseCase) ListWithStock() ([]dto.TechnicianSummaryResponse, error) {
	technicians, err := uc.userRepo.ListTechnicians()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnicianSummaryResponse, 0, len(technicians))
	for _, tech := range technicians {
		summary, err := uc.buildSummary(tech, false)
		if err != nil {
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, nil
}

// GetDetail detalle de un técnico con su stock completo; para ítems serializados
// incluye las unidades disponibles en su poder.
func (uc *TechnicianStockUseCase) GetDetail(technicianID string) (*dto.TechnicianSummaryResponse, error) {
	tech, err := uc.userRepo.GetByID(technicianID)
	if err != nil {
		return nil, err
	}
	if tech == nil || tech.Role != entity.RoleTechnician {
		return nil, domain.ErrNotFound
	}
	return uc.buildSummary(tech, true)
}

func (uc *TechnicianStockUseCase) buildSummary(tech *entity.User, withSerials bool) (*dto.TechnicianSummaryResponse, error) {
	stocks, err := uc.techStockRepo.ListByTechnician(tech.ID)
	if err != nil {
		return nil, err
	}
	totalItems := 0
	totalValue := decimal.Zero
	items := make([]dto.TechnicianStockItemDTO, 0, len(stocks))
	for _, s := range stocks {
		item, err := uc.itemRepo.GetByID(s.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue // ítem eliminado del catálogo; la fila quedó huérfana
		}
		totalItems += s.Quantity
		totalValue = totalValue.Add(item.Value.Mul(decimal.NewFromInt(int64(s.Quantity))))
		itemDTO := dto.TechnicianStockItemDTO{
			ItemID:              item.ID,
			ItemName:            item.ItemName,
			PartNumber:          item.PartNumber,
			TracksSerialNumbers: item.TracksSerialNumbers,
			Quantity:            s.Quantity,
			Value:               item.Value,
		}
		if withSerials && item.TracksSerialNumbers {
			units, err := uc.serialRepo.ListByItem(item.ID, repository.SerialNumberFilter{
				Location:     entity.LocationTechnician,
				TechnicianID: tech.ID,
			})
			if err != nil {
				return nil, err
			}
			for _, u := range units {
				itemDTO.SerialNumbers = append(itemDTO.SerialNumbers, toSerialNumberResponse(u))
			}
		}
		items = append(items, itemDTO)
	}
	return &dto.TechnicianSummaryResponse{
		ID:         tech.ID,
		Name:       tech.Name,
		Email:      tech.Email,
		TotalItems: totalItems,
		TotalValue: totalValue,
		StockItems: items,
	}, nil
}
