package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.TechnicianStockRepository = (*TechnicianStockRepo)(nil)

// TechnicianStockRepo implementación del stock por técnico sobre PostgreSQL
// (usable con pool o tx). Sin fila significa cantidad cero.
type TechnicianStockRepo struct {
	q Querier
}

// NewTechnicianStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTechnicianStockRepository(q Querier) *TechnicianStockRepo {
	return &TechnicianStockRepo{q: q}
}

const techStockColumns = `id, item_id, technician_id, quantity, updated_at`

// Get obtiene la fila de stock; nil si el técnico no tiene el ítem.
func (r *TechnicianStockRepo) Get(itemID, technicianID string) (*entity.TechnicianStock, error) {
	query := `SELECT ` + techStockColumns + ` FROM technician_stock WHERE item_id = $1 AND technician_id = $2`
	return r.scanOne(query, itemID, technicianID)
}

// GetForUpdate igual que Get pero bloquea la fila si existe.
func (r *TechnicianStockRepo) GetForUpdate(itemID, technicianID string) (*entity.TechnicianStock, error) {
	query := `SELECT ` + techStockColumns + ` FROM technician_stock WHERE item_id = $1 AND technician_id = $2 FOR UPDATE`
	return r.scanOne(query, itemID, technicianID)
}

func (r *TechnicianStockRepo) scanOne(query string, args ...any) (*entity.TechnicianStock, error) {
	var ts entity.TechnicianStock
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&ts.ID, &ts.ItemID, &ts.TechnicianID, &ts.Quantity, &ts.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get technician stock: %w", err)
	}
	return &ts, nil
}

// Upsert crea o actualiza la fila con la cantidad dada.
func (r *TechnicianStockRepo) Upsert(itemID, technicianID string, quantity int) error {
	query := `
		INSERT INTO technician_stock (id, item_id, technician_id, quantity, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, now())
		ON CONFLICT (item_id, technician_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, itemID, technicianID, quantity)
	if err != nil {
		return fmt.Errorf("upsert technician stock: %w", err)
	}
	return nil
}

// Delete elimina la fila (cantidad llegó a 0). No falla si no existe.
func (r *TechnicianStockRepo) Delete(itemID, technicianID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM technician_stock WHERE item_id = $1 AND technician_id = $2`, itemID, technicianID)
	if err != nil {
		return fmt.Errorf("delete technician stock: %w", err)
	}
	return nil
}

// ListByTechnician lista el stock de un técnico.
func (r *TechnicianStockRepo) ListByTechnician(technicianID string) ([]*entity.TechnicianStock, error) {
	query := `SELECT ` + techStockColumns + ` FROM technician_stock WHERE technician_id = $1 ORDER BY item_id`
	return r.scanMany(query, technicianID)
}

// ListByItem lista el stock de todos los técnicos sobre un ítem.
func (r *TechnicianStockRepo) ListByItem(itemID string) ([]*entity.TechnicianStock, error) {
	query := `SELECT ` + techStockColumns + ` FROM technician_stock WHERE item_id = $1 ORDER BY technician_id`
	return r.scanMany(query, itemID)
}

func (r *TechnicianStockRepo) scanMany(query string, args ...any) ([]*entity.TechnicianStock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query technician stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.TechnicianStock
	for rows.Next() {
		var ts entity.TechnicianStock
		if err := rows.Scan(&ts.ID, &ts.ItemID, &ts.TechnicianID, &ts.Quantity, &ts.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan technician stock: %w", err)
		}
		list = append(list, &ts)
	}
	return list, rows.Err()
}
