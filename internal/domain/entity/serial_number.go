package entity

import "time"

// Ubicaciones de una unidad serializada.
const (
	LocationMainWarehouse = "MAIN_WAREHOUSE"
	LocationTechnician    = "TECHNICIAN"
	LocationUsed          = "USED" // terminal: consumida o dada de baja
)

// Estados de una unidad serializada.
const (
	SerialStatusAvailable = "AVAILABLE"
	SerialStatusInUse     = "IN_USE" // consumida en una intervención
	SerialStatusLost      = "LOST"   // dada de baja desde bodega
)

// SerialNumberStock representa una unidad física individual de un ítem serializado.
// Invariantes: Location=TECHNICIAN ⇔ TechnicianID != "" y Status=AVAILABLE;
// Location=USED ⇒ Status ∈ {IN_USE, LOST} y TechnicianID="";
// Location=MAIN_WAREHOUSE ⇒ Status=AVAILABLE y TechnicianID="".
// Las unidades nunca se borran: USED es estado terminal conservado para auditoría.
type SerialNumberStock struct {
	ID           string
	ItemID       string
	SerialNumber string // único dentro del ítem
	Location     string
	Status       string
	TechnicianID string // vacío salvo Location=TECHNICIAN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InCirculation indica si la unidad puede ser origen de un movimiento
// (no ha llegado a su estado terminal).
func (s *SerialNumberStock) InCirculation() bool {
	return s.Location != LocationUsed && s.Status == SerialStatusAvailable
}
