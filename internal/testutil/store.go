// Package testutil implementa repositorios en memoria para pruebas de casos de
// uso, sin base de datos. El FakeTxRunner simula la atomicidad con
// snapshot/restore del estado completo.
package testutil

import (
	"sort"
	"sync"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
)

// Store estado compartido de los repositorios fake.
type Store struct {
	mu sync.Mutex

	Items             map[string]*entity.WarehouseItem
	Serials           map[string]*entity.SerialNumberStock
	TechStocks        map[string]*entity.TechnicianStock // clave itemID + "|" + technicianID
	Movements         []*entity.ItemMovement
	MovementLinks     map[string][]string // movementID -> serial IDs
	Users             map[string]*entity.User
	Interventions     map[string]*entity.Intervention
	InterventionParts []*entity.InterventionPart
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		Items:         make(map[string]*entity.WarehouseItem),
		Serials:       make(map[string]*entity.SerialNumberStock),
		TechStocks:    make(map[string]*entity.TechnicianStock),
		MovementLinks: make(map[string][]string),
		Users:         make(map[string]*entity.User),
		Interventions: make(map[string]*entity.Intervention),
	}
}

func stockKey(itemID, technicianID string) string {
	return itemID + "|" + technicianID
}

// snapshot copia profunda del estado, para restaurar ante rollback.
func (s *Store) snapshot() *Store {
	snap := NewStore()
	for k, v := range s.Items {
		cp := *v
		snap.Items[k] = &cp
	}
	for k, v := range s.Serials {
		cp := *v
		snap.Serials[k] = &cp
	}
	for k, v := range s.TechStocks {
		cp := *v
		snap.TechStocks[k] = &cp
	}
	for _, m := range s.Movements {
		cp := *m
		cp.SerialNumberIDs = append([]string(nil), m.SerialNumberIDs...)
		snap.Movements = append(snap.Movements, &cp)
	}
	for k, v := range s.MovementLinks {
		snap.MovementLinks[k] = append([]string(nil), v...)
	}
	for k, v := range s.Users {
		cp := *v
		snap.Users[k] = &cp
	}
	for k, v := range s.Interventions {
		cp := *v
		snap.Interventions[k] = &cp
	}
	for _, p := range s.InterventionParts {
		cp := *p
		cp.SerialNumberIDs = append([]string(nil), p.SerialNumberIDs...)
		snap.InterventionParts = append(snap.InterventionParts, &cp)
	}
	return snap
}

func (s *Store) restore(snap *Store) {
	s.Items = snap.Items
	s.Serials = snap.Serials
	s.TechStocks = snap.TechStocks
	s.Movements = snap.Movements
	s.MovementLinks = snap.MovementLinks
	s.Users = snap.Users
	s.Interventions = snap.Interventions
	s.InterventionParts = snap.InterventionParts
}

// SerialsOf unidades de un ítem ordenadas por número de serie (ayuda de aserción).
func (s *Store) SerialsOf(itemID string) []*entity.SerialNumberStock {
	var out []*entity.SerialNumberStock
	for _, u := range s.Serials {
		if u.ItemID == itemID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out
}
