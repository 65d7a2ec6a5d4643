package dto

import "time"

// AddInterventionPartRequest consumo de repuestos contra una intervención.
// Serializados: SerialNumberIDs con exactamente Quantity entradas.
type AddInterventionPartRequest struct {
	ItemID          string   `json:"item_id" validate:"required"`
	Quantity        int      `json:"quantity" validate:"required,min=1"`
	SerialNumberIDs []string `json:"serial_number_ids"`
}

// InterventionPartResponse salida de un repuesto consumido en una intervención.
type InterventionPartResponse struct {
	ID             string                 `json:"id"`
	InterventionID string                 `json:"intervention_id"`
	ItemID         string                 `json:"item_id"`
	ItemName       string                 `json:"item_name,omitempty"`
	PartNumber     string                 `json:"part_number,omitempty"`
	Quantity       int                    `json:"quantity"`
	SerialNumbers  []SerialNumberResponse `json:"serial_numbers,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}
