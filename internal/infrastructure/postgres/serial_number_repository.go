package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.SerialNumberRepository = (*SerialNumberRepo)(nil)

// SerialNumberRepo implementación del registro de números de serie sobre PostgreSQL
// (usable con pool o tx).
type SerialNumberRepo struct {
	q Querier
}

// NewSerialNumberRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSerialNumberRepository(q Querier) *SerialNumberRepo {
	return &SerialNumberRepo{q: q}
}

const serialColumns = `id, item_id, serial_number, location, status, technician_id, created_at, updated_at`

// CreateBatch inserta un lote de unidades serializadas.
func (r *SerialNumberRepo) CreateBatch(units []*entity.SerialNumberStock) error {
	query := `
		INSERT INTO serial_numbers (` + serialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, u := range units {
		technicianID := (*string)(nil)
		if u.TechnicianID != "" {
			technicianID = &u.TechnicianID
		}
		_, err := r.q.Exec(context.Background(), query,
			u.ID, u.ItemID, u.SerialNumber, u.Location, u.Status, technicianID,
			u.CreatedAt, u.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &domain.DuplicateSerialNumberError{SerialNumbers: []string{u.SerialNumber}}
			}
			return fmt.Errorf("insert serial number: %w", err)
		}
	}
	return nil
}

// ListByItem lista unidades de un ítem aplicando los filtros no vacíos.
func (r *SerialNumberRepo) ListByItem(itemID string, filter repository.SerialNumberFilter) ([]*entity.SerialNumberStock, error) {
	query := `SELECT ` + serialColumns + ` FROM serial_numbers WHERE item_id = $1`
	args := []any{itemID}
	pos := 2
	if filter.Location != "" {
		query += fmt.Sprintf(" AND location = $%d", pos)
		args = append(args, filter.Location)
		pos++
	}
	if filter.TechnicianID != "" {
		query += fmt.Sprintf(" AND technician_id = $%d", pos)
		args = append(args, filter.TechnicianID)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
	}
	query += " ORDER BY serial_number"
	return r.scanMany(query, args...)
}

// ListSerialsByItem devuelve solo los strings de serie del ítem.
func (r *SerialNumberRepo) ListSerialsByItem(itemID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT serial_number FROM serial_numbers WHERE item_id = $1 ORDER BY serial_number`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var sn string
		if err := rows.Scan(&sn); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}
		out = append(out, sn)
	}
	return out, rows.Err()
}

// GetByIDs resuelve unidades por ID dentro de un ítem, sin bloqueo.
func (r *SerialNumberRepo) GetByIDs(itemID string, ids []string) ([]*entity.SerialNumberStock, error) {
	query := `SELECT ` + serialColumns + ` FROM serial_numbers WHERE item_id = $1 AND id = ANY($2)`
	return r.scanMany(query, itemID, ids)
}

// GetByIDsForUpdate resuelve y bloquea (FOR UPDATE) las unidades indicadas del ítem.
// Bloqueo en orden de ID para evitar deadlocks entre operaciones concurrentes.
func (r *SerialNumberRepo) GetByIDsForUpdate(itemID string, ids []string) ([]*entity.SerialNumberStock, error) {
	query := `SELECT ` + serialColumns + ` FROM serial_numbers WHERE item_id = $1 AND id = ANY($2) ORDER BY id FOR UPDATE`
	return r.scanMany(query, itemID, ids)
}

// UpdateState cambia ubicación/estado/técnico de un conjunto de unidades.
func (r *SerialNumberRepo) UpdateState(ids []string, location, status, technicianID string) error {
	tech := (*string)(nil)
	if technicianID != "" {
		tech = &technicianID
	}
	query := `
		UPDATE serial_numbers
		SET location = $2, status = $3, technician_id = $4, updated_at = now()
		WHERE id = ANY($1)`
	_, err := r.q.Exec(context.Background(), query, ids, location, status, tech)
	if err != nil {
		return fmt.Errorf("update serial state: %w", err)
	}
	return nil
}

// CountByTechnician cuenta las unidades del ítem en poder del técnico.
func (r *SerialNumberRepo) CountByTechnician(itemID, technicianID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM serial_numbers WHERE item_id = $1 AND location = $2 AND technician_id = $3`,
		itemID, entity.LocationTechnician, technicianID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by technician: %w", err)
	}
	return count, nil
}

// CountByLocation cuenta unidades del ítem en una ubicación.
func (r *SerialNumberRepo) CountByLocation(itemID, location string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM serial_numbers WHERE item_id = $1 AND location = $2`,
		itemID, location,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by location: %w", err)
	}
	return count, nil
}

func (r *SerialNumberRepo) scanMany(query string, args ...any) ([]*entity.SerialNumberStock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query serial numbers: %w", err)
	}
	defer rows.Close()
	var list []*entity.SerialNumberStock
	for rows.Next() {
		var u entity.SerialNumberStock
		var technicianID *string
		if err := rows.Scan(&u.ID, &u.ItemID, &u.SerialNumber, &u.Location, &u.Status,
			&technicianID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan serial number: %w", err)
		}
		if technicianID != nil {
			u.TechnicianID = *technicianID
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
