package testutil

import (
	"context"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// FakeTxRunner simula transacciones sobre el Store: toma un snapshot antes de
// ejecutar fn y restaura el estado completo si fn falla (rollback).
type FakeTxRunner struct{ S *Store }

// Run implementa el TxRunner del motor de movimientos.
func (t *FakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	techStockRepo repository.TechnicianStockRepository,
	movRepo repository.ItemMovementRepository,
) error) error {
	t.S.mu.Lock()
	defer t.S.mu.Unlock()
	snap := t.S.snapshot()
	err := fn(&ItemRepo{S: t.S}, &SerialRepo{S: t.S}, &TechStockRepo{S: t.S}, &MovementRepo{S: t.S})
	if err != nil {
		t.S.restore(snap)
	}
	return err
}

// RunIntervention implementa el TxRunner del consumo en intervenciones.
func (t *FakeTxRunner) RunIntervention(ctx context.Context, fn func(
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	techStockRepo repository.TechnicianStockRepository,
	movRepo repository.ItemMovementRepository,
	interventionRepo repository.InterventionRepository,
) error) error {
	t.S.mu.Lock()
	defer t.S.mu.Unlock()
	snap := t.S.snapshot()
	err := fn(&ItemRepo{S: t.S}, &SerialRepo{S: t.S}, &TechStockRepo{S: t.S}, &MovementRepo{S: t.S}, &InterventionRepo{S: t.S})
	if err != nil {
		t.S.restore(snap)
	}
	return err
}
