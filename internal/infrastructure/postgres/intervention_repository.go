package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.InterventionRepository = (*InterventionRepo)(nil)

// InterventionRepo implementación del puerto de intervenciones sobre PostgreSQL
// (usable con pool o tx).
type InterventionRepo struct {
	q Querier
}

// NewInterventionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInterventionRepository(q Querier) *InterventionRepo {
	return &InterventionRepo{q: q}
}

// GetByID obtiene una intervención por ID. Devuelve nil si no existe.
func (r *InterventionRepo) GetByID(id string) (*entity.Intervention, error) {
	query := `
		SELECT id, client_id, assigned_to_id, status, description, scheduled_at, created_at, updated_at
		FROM interventions WHERE id = $1`
	var itv entity.Intervention
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&itv.ID, &itv.ClientID, &itv.AssignedToID, &itv.Status, &itv.Description,
		&itv.ScheduledAt, &itv.CreatedAt, &itv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intervention: %w", err)
	}
	return &itv, nil
}

// CreatePart registra un consumo de repuestos en la intervención.
func (r *InterventionRepo) CreatePart(part *entity.InterventionPart) error {
	query := `
		INSERT INTO intervention_parts (id, intervention_id, item_id, quantity, serial_number_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.InterventionID, part.ItemID, part.Quantity, part.SerialNumberIDs, part.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create intervention part: %w", err)
	}
	return nil
}

// ListParts lista los consumos de una intervención en orden de registro.
func (r *InterventionRepo) ListParts(interventionID string) ([]*entity.InterventionPart, error) {
	query := `
		SELECT id, intervention_id, item_id, quantity, serial_number_ids, created_at
		FROM intervention_parts WHERE intervention_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, interventionID)
	if err != nil {
		return nil, fmt.Errorf("list intervention parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.InterventionPart
	for rows.Next() {
		var p entity.InterventionPart
		if err := rows.Scan(&p.ID, &p.InterventionID, &p.ItemID, &p.Quantity,
			&p.SerialNumberIDs, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan intervention part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
