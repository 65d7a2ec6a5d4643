package testutil

import (
	"sort"
	"time"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// ItemRepo fake de WarehouseItemRepository.
type ItemRepo struct{ S *Store }

func (r *ItemRepo) Create(item *entity.WarehouseItem) error {
	cp := *item
	r.S.Items[item.ID] = &cp
	return nil
}

func (r *ItemRepo) GetByID(id string) (*entity.WarehouseItem, error) {
	item, ok := r.S.Items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *ItemRepo) GetForUpdate(id string) (*entity.WarehouseItem, error) {
	return r.GetByID(id)
}

func (r *ItemRepo) Update(item *entity.WarehouseItem) error {
	cp := *item
	r.S.Items[item.ID] = &cp
	return nil
}

func (r *ItemRepo) UpdateStock(id string, mainWarehouse int) error {
	if item, ok := r.S.Items[id]; ok {
		item.MainWarehouse = mainWarehouse
		item.UpdatedAt = time.Now()
	}
	return nil
}

func (r *ItemRepo) List(limit, offset int) ([]*entity.WarehouseItem, error) {
	var all []*entity.WarehouseItem
	for _, it := range r.S.Items {
		cp := *it
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ItemName < all[j].ItemName })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *ItemRepo) Delete(id string) error {
	delete(r.S.Items, id)
	return nil
}

// SerialRepo fake de SerialNumberRepository.
type SerialRepo struct{ S *Store }

func (r *SerialRepo) CreateBatch(units []*entity.SerialNumberStock) error {
	for _, u := range units {
		cp := *u
		r.S.Serials[u.ID] = &cp
	}
	return nil
}

func (r *SerialRepo) ListByItem(itemID string, filter repository.SerialNumberFilter) ([]*entity.SerialNumberStock, error) {
	var out []*entity.SerialNumberStock
	for _, u := range r.S.Serials {
		if u.ItemID != itemID {
			continue
		}
		if filter.Location != "" && u.Location != filter.Location {
			continue
		}
		if filter.TechnicianID != "" && u.TechnicianID != filter.TechnicianID {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out, nil
}

func (r *SerialRepo) ListSerialsByItem(itemID string) ([]string, error) {
	var out []string
	for _, u := range r.S.Serials {
		if u.ItemID == itemID {
			out = append(out, u.SerialNumber)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *SerialRepo) GetByIDs(itemID string, ids []string) ([]*entity.SerialNumberStock, error) {
	var out []*entity.SerialNumberStock
	for _, id := range ids {
		if u, ok := r.S.Serials[id]; ok && u.ItemID == itemID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *SerialRepo) GetByIDsForUpdate(itemID string, ids []string) ([]*entity.SerialNumberStock, error) {
	return r.GetByIDs(itemID, ids)
}

func (r *SerialRepo) UpdateState(ids []string, location, status, technicianID string) error {
	for _, id := range ids {
		if u, ok := r.S.Serials[id]; ok {
			u.Location = location
			u.Status = status
			u.TechnicianID = technicianID
			u.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *SerialRepo) CountByTechnician(itemID, technicianID string) (int, error) {
	count := 0
	for _, u := range r.S.Serials {
		if u.ItemID == itemID && u.Location == entity.LocationTechnician && u.TechnicianID == technicianID {
			count++
		}
	}
	return count, nil
}

func (r *SerialRepo) CountByLocation(itemID, location string) (int, error) {
	count := 0
	for _, u := range r.S.Serials {
		if u.ItemID == itemID && u.Location == location {
			count++
		}
	}
	return count, nil
}

// TechStockRepo fake de TechnicianStockRepository.
type TechStockRepo struct{ S *Store }

func (r *TechStockRepo) Get(itemID, technicianID string) (*entity.TechnicianStock, error) {
	ts, ok := r.S.TechStocks[stockKey(itemID, technicianID)]
	if !ok {
		return nil, nil
	}
	cp := *ts
	return &cp, nil
}

func (r *TechStockRepo) GetForUpdate(itemID, technicianID string) (*entity.TechnicianStock, error) {
	return r.Get(itemID, technicianID)
}

func (r *TechStockRepo) Upsert(itemID, technicianID string, quantity int) error {
	key := stockKey(itemID, technicianID)
	if ts, ok := r.S.TechStocks[key]; ok {
		ts.Quantity = quantity
		ts.UpdatedAt = time.Now()
		return nil
	}
	r.S.TechStocks[key] = &entity.TechnicianStock{
		ID:           key,
		ItemID:       itemID,
		TechnicianID: technicianID,
		Quantity:     quantity,
		UpdatedAt:    time.Now(),
	}
	return nil
}

func (r *TechStockRepo) Delete(itemID, technicianID string) error {
	delete(r.S.TechStocks, stockKey(itemID, technicianID))
	return nil
}

func (r *TechStockRepo) ListByTechnician(technicianID string) ([]*entity.TechnicianStock, error) {
	var out []*entity.TechnicianStock
	for _, ts := range r.S.TechStocks {
		if ts.TechnicianID == technicianID {
			cp := *ts
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *TechStockRepo) ListByItem(itemID string) ([]*entity.TechnicianStock, error) {
	var out []*entity.TechnicianStock
	for _, ts := range r.S.TechStocks {
		if ts.ItemID == itemID {
			cp := *ts
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TechnicianID < out[j].TechnicianID })
	return out, nil
}

// MovementRepo fake de ItemMovementRepository.
type MovementRepo struct{ S *Store }

func (r *MovementRepo) Create(movement *entity.ItemMovement) error {
	cp := *movement
	cp.SerialNumberIDs = append([]string(nil), movement.SerialNumberIDs...)
	r.S.Movements = append(r.S.Movements, &cp)
	return nil
}

func (r *MovementRepo) LinkSerialNumbers(movementID string, serialNumberIDs []string) error {
	r.S.MovementLinks[movementID] = append(r.S.MovementLinks[movementID], serialNumberIDs...)
	return nil
}

func (r *MovementRepo) GetByID(id string) (*entity.ItemMovement, error) {
	for _, m := range r.S.Movements {
		if m.ID == id {
			cp := *m
			cp.SerialNumberIDs = append([]string(nil), r.S.MovementLinks[id]...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemMovement, error) {
	var out []*entity.ItemMovement
	for i := len(r.S.Movements) - 1; i >= 0; i-- { // más recientes primero
		m := r.S.Movements[i]
		if m.ItemID != itemID {
			continue
		}
		cp := *m
		cp.SerialNumberIDs = append([]string(nil), r.S.MovementLinks[m.ID]...)
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// UserRepo fake de UserRepository.
type UserRepo struct{ S *Store }

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.S.Users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.S.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ListTechnicians() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.S.Users {
		if u.Role == entity.RoleTechnician {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// InterventionRepo fake de InterventionRepository.
type InterventionRepo struct{ S *Store }

func (r *InterventionRepo) GetByID(id string) (*entity.Intervention, error) {
	itv, ok := r.S.Interventions[id]
	if !ok {
		return nil, nil
	}
	cp := *itv
	return &cp, nil
}

func (r *InterventionRepo) CreatePart(part *entity.InterventionPart) error {
	cp := *part
	cp.SerialNumberIDs = append([]string(nil), part.SerialNumberIDs...)
	r.S.InterventionParts = append(r.S.InterventionParts, &cp)
	return nil
}

func (r *InterventionRepo) ListParts(interventionID string) ([]*entity.InterventionPart, error) {
	var out []*entity.InterventionPart
	for _, p := range r.S.InterventionParts {
		if p.InterventionID == interventionID {
			cp := *p
			cp.SerialNumberIDs = append([]string(nil), p.SerialNumberIDs...)
			out = append(out, &cp)
		}
	}
	return out, nil
}
