package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeAddStock         = "ADD_STOCK"          // entrada a bodega central
	MovementTypeRemoveStock      = "REMOVE_STOCK"       // baja desde bodega central
	MovementTypeTransferToTech   = "TRANSFER_TO_TECH"   // bodega -> técnico
	MovementTypeTransferFromTech = "TRANSFER_FROM_TECH" // técnico -> bodega
	MovementTypeUse              = "USE"                // consumo definitivo
)

// ItemMovement registro de auditoría inmutable de un movimiento de stock.
// Se crea al final de cada operación exitosa y nunca se modifica ni elimina.
// Una operación fallida no deja rastro en esta tabla.
type ItemMovement struct {
	ID           string
	ItemID       string
	MovementType string
	Quantity     int    // unidades movidas (len(SerialNumberIDs) en serializados)
	FromUserID   string // vacío si no aplica
	ToUserID     string // vacío si no aplica
	Notes        string
	CreatedByID  string // actor verificado, nunca tomado del body
	CreatedAt    time.Time

	// SerialNumberIDs unidades involucradas (join MovementSerialNumber), solo serializados.
	SerialNumberIDs []string
}

// Sign convención de signo para mostrar el movimiento: +1 ganancia, -1 pérdida, 0 neutral.
// No se almacena; los traslados solo cambian ubicación.
func (m *ItemMovement) Sign() int {
	switch m.MovementType {
	case MovementTypeAddStock:
		return 1
	case MovementTypeRemoveStock, MovementTypeUse:
		return -1
	default:
		return 0
	}
}
