package entity

import "time"

// TechnicianStock cantidad de un ítem en poder de un técnico (una fila por ítem+técnico).
// Para ítems a granel es autoritativo; para ítems serializados es un contador derivado
// que debe recomputarse desde el registro de números de serie tras cada operación.
// Al llegar a 0 la fila se elimina: la existencia de la fila ES la señal de tenencia.
type TechnicianStock struct {
	ID           string
	ItemID       string
	TechnicianID string
	Quantity     int // > 0 siempre (fila eliminada al llegar a 0)
	UpdatedAt    time.Time
}
