package warehouse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// serializedMover estrategia para ítems con números de serie: cada operación es
// una transición de estado sobre unidades individuales, seguida del recálculo
// del contador derivado TechnicianStock desde el conteo real de unidades.
// El contador MainWarehouse del ítem NO se toca: el stock serializado se deriva
// siempre del registro de unidades.
type serializedMover struct {
	item          *entity.WarehouseItem
	serialRepo    repository.SerialNumberRepository
	techStockRepo repository.TechnicianStockRepository
}

// add da de alta unidades nuevas en bodega central. Dos sub-modos:
// manual (SerialNumbers explícitos, rechaza duplicados dentro del ítem) y
// autogenerado (AutoCount unidades continuando la secuencia prefijo-N).
func (m *serializedMover) add(in MovementInput) (int, []string, error) {
	var serials []string
	switch {
	case in.AutoCount > 0:
		generated, err := m.generateSerials(in.AutoCount)
		if err != nil {
			return 0, nil, err
		}
		serials = generated
	case len(in.SerialNumbers) > 0:
		cleaned, err := m.checkManualSerials(in.SerialNumbers)
		if err != nil {
			return 0, nil, err
		}
		serials = cleaned
	default:
		return 0, nil, domain.ErrInvalidInput
	}

	now := time.Now()
	units := make([]*entity.SerialNumberStock, 0, len(serials))
	ids := make([]string, 0, len(serials))
	for _, sn := range serials {
		unit := &entity.SerialNumberStock{
			ID:           uuid.New().String(),
			ItemID:       m.item.ID,
			SerialNumber: sn,
			Location:     entity.LocationMainWarehouse,
			Status:       entity.SerialStatusAvailable,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		units = append(units, unit)
		ids = append(ids, unit.ID)
	}
	if err := m.serialRepo.CreateBatch(units); err != nil {
		return 0, nil, err
	}
	return len(units), ids, nil
}

// remove da de baja unidades desde bodega central: pasan a USED/LOST (terminal).
func (m *serializedMover) remove(in MovementInput) (int, []string, error) {
	units, err := m.resolveUnits(in)
	if err != nil {
		return 0, nil, err
	}
	for _, u := range units {
		if u.Location != entity.LocationMainWarehouse || u.Status != entity.SerialStatusAvailable {
			return 0, nil, domain.ErrUnitNotAvailable
		}
	}
	if err := m.serialRepo.UpdateState(in.SerialNumberIDs, entity.LocationUsed, entity.SerialStatusLost, ""); err != nil {
		return 0, nil, err
	}
	return len(units), in.SerialNumberIDs, nil
}

func (m *serializedMover) transferToTech(in MovementInput) (int, []string, error) {
	if in.ToUserID == "" {
		return 0, nil, domain.ErrInvalidInput
	}
	units, err := m.resolveUnits(in)
	if err != nil {
		return 0, nil, err
	}
	for _, u := range units {
		if u.Location != entity.LocationMainWarehouse || u.Status != entity.SerialStatusAvailable {
			return 0, nil, domain.ErrUnitNotAvailable
		}
	}
	if err := m.serialRepo.UpdateState(in.SerialNumberIDs, entity.LocationTechnician, entity.SerialStatusAvailable, in.ToUserID); err != nil {
		return 0, nil, err
	}
	if err := m.recomputeTechnicianStock(in.ToUserID); err != nil {
		return 0, nil, err
	}
	return len(units), in.SerialNumberIDs, nil
}

func (m *serializedMover) transferFromTech(in MovementInput) (int, []string, error) {
	if in.FromUserID == "" {
		return 0, nil, domain.ErrInvalidInput
	}
	units, err := m.resolveUnits(in)
	if err != nil {
		return 0, nil, err
	}
	for _, u := range units {
		if u.Location != entity.LocationTechnician || u.TechnicianID != in.FromUserID {
			return 0, nil, domain.ErrUnitNotAssigned
		}
	}
	if err := m.serialRepo.UpdateState(in.SerialNumberIDs, entity.LocationMainWarehouse, entity.SerialStatusAvailable, ""); err != nil {
		return 0, nil, err
	}
	if err := m.recomputeTechnicianStock(in.FromUserID); err != nil {
		return 0, nil, err
	}
	return len(units), in.SerialNumberIDs, nil
}

// use consume unidades definitivamente (USED/IN_USE). Las unidades pueden venir
// de cualquier tenedor actual (bodega o varios técnicos); el consumo ligado a una
// intervención restringe al técnico asignado antes de llegar aquí.
func (m *serializedMover) use(in MovementInput) (int, []string, error) {
	units, err := m.resolveUnits(in)
	if err != nil {
		return 0, nil, err
	}
	holders := make(map[string]struct{})
	for _, u := range units {
		if !u.InCirculation() {
			return 0, nil, domain.ErrUnitNotAvailable
		}
		if u.Location == entity.LocationTechnician && u.TechnicianID != "" {
			holders[u.TechnicianID] = struct{}{}
		}
	}
	if err := m.serialRepo.UpdateState(in.SerialNumberIDs, entity.LocationUsed, entity.SerialStatusInUse, ""); err != nil {
		return 0, nil, err
	}
	// Recalcula el contador de cada técnico que tenía alguna unidad consumida
	for technicianID := range holders {
		if err := m.recomputeTechnicianStock(technicianID); err != nil {
			return 0, nil, err
		}
	}
	return len(units), in.SerialNumberIDs, nil
}

// resolveUnits carga y bloquea las unidades pedidas validando que todas existan
// y pertenezcan al ítem; un conteo distinto al solicitado es NotFound, sin
// aplicación parcial. Si el caller declaró Quantity, debe coincidir con los IDs.
func (m *serializedMover) resolveUnits(in MovementInput) ([]*entity.SerialNumberStock, error) {
	if len(in.SerialNumberIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity > 0 && in.Quantity != len(in.SerialNumberIDs) {
		return nil, domain.ErrInvalidInput
	}
	units, err := m.serialRepo.GetByIDsForUpdate(m.item.ID, in.SerialNumberIDs)
	if err != nil {
		return nil, err
	}
	if len(units) != len(in.SerialNumberIDs) {
		return nil, domain.ErrNotFound
	}
	return units, nil
}

// recomputeTechnicianStock sincroniza el contador derivado con el conteo real de
// unidades del técnico (vista materializada, nunca ajuste incremental).
// En 0 la fila se elimina.
func (m *serializedMover) recomputeTechnicianStock(technicianID string) error {
	count, err := m.serialRepo.CountByTechnician(m.item.ID, technicianID)
	if err != nil {
		return err
	}
	if count == 0 {
		return m.techStockRepo.Delete(m.item.ID, technicianID)
	}
	return m.techStockRepo.Upsert(m.item.ID, technicianID, count)
}

// checkManualSerials normaliza y valida números de serie manuales: sin vacíos,
// sin repetidos en la petición y sin colisiones con los ya registrados del ítem.
func (m *serializedMover) checkManualSerials(raw []string) ([]string, error) {
	cleaned := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, sn := range raw {
		sn = strings.TrimSpace(sn)
		if sn == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, dup := seen[sn]; dup {
			return nil, &domain.DuplicateSerialNumberError{SerialNumbers: []string{sn}}
		}
		seen[sn] = struct{}{}
		cleaned = append(cleaned, sn)
	}
	existing, err := m.serialRepo.ListSerialsByItem(m.item.ID)
	if err != nil {
		return nil, err
	}
	var collisions []string
	existingSet := make(map[string]struct{}, len(existing))
	for _, sn := range existing {
		existingSet[sn] = struct{}{}
	}
	for _, sn := range cleaned {
		if _, ok := existingSet[sn]; ok {
			collisions = append(collisions, sn)
		}
	}
	if len(collisions) > 0 {
		return nil, &domain.DuplicateSerialNumberError{SerialNumbers: collisions}
	}
	return cleaned, nil
}

// generateSerials produce count números nuevos continuando la secuencia
// "prefijo-N". Escanea el máximo sufijo existente en lugar de llevar un contador
// aparte, para convivir con altas manuales y renumeraciones.
func (m *serializedMover) generateSerials(count int) ([]string, error) {
	if !m.item.AutoSn || m.item.SnPrefix == "" {
		return nil, domain.ErrNotConfigured
	}
	existing, err := m.serialRepo.ListSerialsByItem(m.item.ID)
	if err != nil {
		return nil, err
	}
	prefix := m.item.SnPrefix + "-"
	max := 0
	for _, sn := range existing {
		if !strings.HasPrefix(sn, prefix) {
			continue
		}
		n, err := strconv.Atoi(sn[len(prefix):])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	serials := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		serials = append(serials, fmt.Sprintf("%s%d", prefix, max+i))
	}
	return serials, nil
}
