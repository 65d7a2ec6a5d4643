package dto

import "time"

// RegisterMovementRequest entrada del motor de movimientos (un solo endpoint
// para ítems a granel y serializados).
// Granel: Quantity > 0. Serializados: SerialNumberIDs con las unidades a mover,
// o para ADD_STOCK los sub-modos SerialNumbers (manual) / AutoCount (autogenerar).
type RegisterMovementRequest struct {
	ItemID          string   `json:"item_id" validate:"required"`
	MovementType    string   `json:"movement_type" validate:"required,oneof=ADD_STOCK REMOVE_STOCK TRANSFER_TO_TECH TRANSFER_FROM_TECH USE"`
	Quantity        int      `json:"quantity" validate:"min=0"`
	SerialNumberIDs []string `json:"serial_number_ids"`
	SerialNumbers   []string `json:"serial_numbers"`
	AutoCount       int      `json:"auto_count" validate:"min=0"`
	FromUserID      string   `json:"from_user_id"`
	ToUserID        string   `json:"to_user_id"`
	Notes           string   `json:"notes" validate:"max=500"`
}

// AddSerialNumbersRequest alta de números de serie para un ítem serializado.
// Exactamente uno de los dos modos: Manual con strings explícitos, o Auto con conteo.
type AddSerialNumbersRequest struct {
	Manual []string `json:"manual"`
	Auto   *struct {
		Count int `json:"count" validate:"min=1"`
	} `json:"auto"`
	Notes string `json:"notes" validate:"max=500"`
}

// SerialNumberResponse salida de una unidad serializada.
type SerialNumberResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	SerialNumber   string    `json:"serial_number"`
	Location       string    `json:"location"`
	Status         string    `json:"status"`
	TechnicianID   string    `json:"technician_id,omitempty"`
	TechnicianName string    `json:"technician_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	MovementType    string    `json:"movement_type"`
	Quantity        int       `json:"quantity"`
	Sign            int       `json:"sign"` // +1 ganancia, -1 pérdida, 0 traslado
	FromUserID      string    `json:"from_user_id,omitempty"`
	ToUserID        string    `json:"to_user_id,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedByID     string    `json:"created_by_id"`
	CreatedAt       time.Time `json:"created_at"`
	SerialNumberIDs []string  `json:"serial_number_ids,omitempty"`
}

// MovementListResponse historial de movimientos de un ítem.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
