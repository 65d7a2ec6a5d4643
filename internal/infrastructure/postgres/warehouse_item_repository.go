package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.WarehouseItemRepository = (*WarehouseItemRepo)(nil)

// WarehouseItemRepo implementación del catálogo sobre PostgreSQL (usable con pool o tx).
type WarehouseItemRepo struct {
	q Querier
}

// NewWarehouseItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseItemRepository(q Querier) *WarehouseItemRepo {
	return &WarehouseItemRepo{q: q}
}

const itemColumns = `id, item_name, part_number, value, tracks_serial_numbers, auto_sn, sn_prefix, main_warehouse, created_at, updated_at`

// Create persiste un repuesto nuevo en el catálogo.
func (r *WarehouseItemRepo) Create(item *entity.WarehouseItem) error {
	query := `
		INSERT INTO warehouse_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.PartNumber, item.Value, item.TracksSerialNumbers,
		item.AutoSn, item.SnPrefix, item.MainWarehouse, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert warehouse item: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID. Devuelve nil si no existe.
func (r *WarehouseItemRepo) GetByID(id string) (*entity.WarehouseItem, error) {
	query := `SELECT ` + itemColumns + ` FROM warehouse_items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el repuesto y bloquea la fila (SELECT FOR UPDATE).
func (r *WarehouseItemRepo) GetForUpdate(id string) (*entity.WarehouseItem, error) {
	query := `SELECT ` + itemColumns + ` FROM warehouse_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *WarehouseItemRepo) scanOne(query string, args ...any) (*entity.WarehouseItem, error) {
	var it entity.WarehouseItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.ItemName, &it.PartNumber, &it.Value, &it.TracksSerialNumbers,
		&it.AutoSn, &it.SnPrefix, &it.MainWarehouse, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse item: %w", err)
	}
	return &it, nil
}

// Update actualiza los campos editables del repuesto.
func (r *WarehouseItemRepo) Update(item *entity.WarehouseItem) error {
	query := `
		UPDATE warehouse_items
		SET item_name = $2, part_number = $3, value = $4, auto_sn = $5, sn_prefix = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.PartNumber, item.Value, item.AutoSn, item.SnPrefix, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse item: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el contador de bodega central.
func (r *WarehouseItemRepo) UpdateStock(id string, mainWarehouse int) error {
	query := `UPDATE warehouse_items SET main_warehouse = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, mainWarehouse)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista el catálogo ordenado por nombre.
func (r *WarehouseItemRepo) List(limit, offset int) ([]*entity.WarehouseItem, error) {
	query := `SELECT ` + itemColumns + ` FROM warehouse_items ORDER BY item_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouse items: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseItem
	for rows.Next() {
		var it entity.WarehouseItem
		if err := rows.Scan(&it.ID, &it.ItemName, &it.PartNumber, &it.Value, &it.TracksSerialNumbers,
			&it.AutoSn, &it.SnPrefix, &it.MainWarehouse, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina un repuesto del catálogo.
func (r *WarehouseItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouse_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse item: %w", err)
	}
	return nil
}
