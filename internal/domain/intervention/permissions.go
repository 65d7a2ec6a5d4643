// Package intervention contiene la lógica pura de permisos sobre estados de
// intervención. Es el contrato que consume el flujo de consumo de repuestos;
// no consulta la base de datos.
package intervention

import "github.com/jhoicas/Mantenimiento-api/internal/domain/entity"

// IsTerminal indica si un estado es final (COMPLETED o CANCELED).
func IsTerminal(status string) bool {
	return status == entity.InterventionStatusCompleted || status == entity.InterventionStatusCanceled
}

// CanEdit indica si un rol puede modificar una intervención en el estado dado
// (incluye agregar repuestos). ADMIN siempre puede; los demás no tocan estados terminales.
func CanEdit(role, status string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	return !IsTerminal(status)
}

// CanChangeStatus indica si un rol puede pasar una intervención de currentStatus a newStatus.
func CanChangeStatus(role, currentStatus, newStatus string) bool {
	// ADMIN puede cualquier transición
	if role == entity.RoleAdmin {
		return true
	}
	// Nadie más sale de un estado terminal
	if IsTerminal(currentStatus) {
		return false
	}
	// SUPERVISOR puede cualquier destino desde estados no terminales
	if role == entity.RoleSupervisor {
		return true
	}
	// TECHNICIAN solo avanza a IN_PROGRESS o QUALITY_ASSESSMENT
	if role == entity.RoleTechnician {
		return newStatus == entity.InterventionStatusInProgress ||
			newStatus == entity.InterventionStatusQualityAssessment
	}
	return false
}

// AvailableStatuses devuelve los estados a los que el rol puede mover una
// intervención que está en currentStatus.
func AvailableStatuses(role, currentStatus string) []string {
	if IsTerminal(currentStatus) && role != entity.RoleAdmin {
		return []string{currentStatus}
	}
	if role == entity.RoleAdmin || role == entity.RoleSupervisor {
		return []string{
			entity.InterventionStatusOpen,
			entity.InterventionStatusInProgress,
			entity.InterventionStatusQualityAssessment,
			entity.InterventionStatusCompleted,
			entity.InterventionStatusCanceled,
		}
	}
	// TECHNICIAN
	return []string{
		entity.InterventionStatusOpen,
		entity.InterventionStatusInProgress,
		entity.InterventionStatusQualityAssessment,
	}
}
