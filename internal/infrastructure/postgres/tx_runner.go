package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Mantenimiento-api/internal/application/intervention"
	"github.com/jhoicas/Mantenimiento-api/internal/application/warehouse"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

// Ensure TxRunner implements warehouse.TxRunner and intervention.TxRunner.
var _ warehouse.TxRunner = (*TxRunner)(nil)
var _ intervention.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	techStockRepo repository.TechnicianStockRepository,
	movRepo repository.ItemMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewWarehouseItemRepository(tx)
	serialRepo := NewSerialNumberRepository(tx)
	techStockRepo := NewTechnicianStockRepository(tx)
	movRepo := NewItemMovementRepository(tx)

	if err := fn(itemRepo, serialRepo, techStockRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunIntervention inicia una transacción con los repos del motor de movimientos
// más el de intervenciones (para el consumo de repuestos).
func (r *TxRunner) RunIntervention(ctx context.Context, fn func(
	itemRepo repository.WarehouseItemRepository,
	serialRepo repository.SerialNumberRepository,
	techStockRepo repository.TechnicianStockRepository,
	movRepo repository.ItemMovementRepository,
	interventionRepo repository.InterventionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewWarehouseItemRepository(tx)
	serialRepo := NewSerialNumberRepository(tx)
	techStockRepo := NewTechnicianStockRepository(tx)
	movRepo := NewItemMovementRepository(tx)
	interventionRepo := NewInterventionRepository(tx)

	if err := fn(itemRepo, serialRepo, techStockRepo, movRepo, interventionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
