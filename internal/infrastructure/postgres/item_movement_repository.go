package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/repository"
)

var _ repository.ItemMovementRepository = (*ItemMovementRepo)(nil)

// ItemMovementRepo implementación del historial de movimientos sobre PostgreSQL
// (usable con pool o tx). Los movimientos son solo-append.
type ItemMovementRepo struct {
	q Querier
}

// NewItemMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemMovementRepository(q Querier) *ItemMovementRepo {
	return &ItemMovementRepo{q: q}
}

const movementColumns = `id, item_id, movement_type, quantity, from_user_id, to_user_id, notes, created_by_id, created_at`

// Create persiste un movimiento.
func (r *ItemMovementRepo) Create(movement *entity.ItemMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO item_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	fromUser := (*string)(nil)
	if movement.FromUserID != "" {
		fromUser = &movement.FromUserID
	}
	toUser := (*string)(nil)
	if movement.ToUserID != "" {
		toUser = &movement.ToUserID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.MovementType, movement.Quantity,
		fromUser, toUser, movement.Notes, movement.CreatedByID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create item movement: %w", err)
	}
	return nil
}

// LinkSerialNumbers crea las filas de join movimiento ↔ unidades serializadas.
func (r *ItemMovementRepo) LinkSerialNumbers(movementID string, serialNumberIDs []string) error {
	query := `INSERT INTO movement_serial_numbers (movement_id, serial_number_id) VALUES ($1, $2)`
	for _, snID := range serialNumberIDs {
		if _, err := r.q.Exec(context.Background(), query, movementID, snID); err != nil {
			return fmt.Errorf("link serial number: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un movimiento con sus unidades vinculadas.
func (r *ItemMovementRepo) GetByID(id string) (*entity.ItemMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM item_movements WHERE id = $1`
	var m entity.ItemMovement
	var fromUser, toUser *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ItemID, &m.MovementType, &m.Quantity,
		&fromUser, &toUser, &m.Notes, &m.CreatedByID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if fromUser != nil {
		m.FromUserID = *fromUser
	}
	if toUser != nil {
		m.ToUserID = *toUser
	}
	serials, err := r.serialIDsOf(id)
	if err != nil {
		return nil, err
	}
	m.SerialNumberIDs = serials
	return &m, nil
}

// ListByItem lista movimientos de un ítem, más recientes primero, con sus unidades vinculadas.
func (r *ItemMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM item_movements WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemMovement
	for rows.Next() {
		var m entity.ItemMovement
		var fromUser, toUser *string
		if err := rows.Scan(&m.ID, &m.ItemID, &m.MovementType, &m.Quantity,
			&fromUser, &toUser, &m.Notes, &m.CreatedByID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if fromUser != nil {
			m.FromUserID = *fromUser
		}
		if toUser != nil {
			m.ToUserID = *toUser
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range list {
		serials, err := r.serialIDsOf(m.ID)
		if err != nil {
			return nil, err
		}
		m.SerialNumberIDs = serials
	}
	return list, nil
}

func (r *ItemMovementRepo) serialIDsOf(movementID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT serial_number_id FROM movement_serial_numbers WHERE movement_id = $1`, movementID)
	if err != nil {
		return nil, fmt.Errorf("list movement serials: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan movement serial: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
