package entity

import "time"

// Estados de una intervención.
const (
	InterventionStatusOpen              = "OPEN"
	InterventionStatusInProgress        = "IN_PROGRESS"
	InterventionStatusQualityAssessment = "QUALITY_ASSESSMENT"
	InterventionStatusCompleted         = "COMPLETED"
	InterventionStatusCanceled          = "CANCELED"
)

// Intervention representa una intervención de mantenimiento en campo.
// El CRUD completo vive fuera de este núcleo; aquí solo se necesita el
// técnico asignado y el estado para el consumo de repuestos.
type Intervention struct {
	ID           string
	ClientID     string
	AssignedToID string // técnico asignado
	Status       string
	Description  string
	ScheduledAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InterventionPart vincula un consumo de repuestos a una intervención (solo-append).
type InterventionPart struct {
	ID              string
	InterventionID  string
	ItemID          string
	Quantity        int
	SerialNumberIDs []string // unidades consumidas, solo ítems serializados
	CreatedAt       time.Time
}
