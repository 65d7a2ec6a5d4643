package intervention_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/intervention"
)

func TestIsTerminal(t *testing.T) {
	assert.True(t, intervention.IsTerminal(entity.InterventionStatusCompleted))
	assert.True(t, intervention.IsTerminal(entity.InterventionStatusCanceled))
	assert.False(t, intervention.IsTerminal(entity.InterventionStatusOpen))
	assert.False(t, intervention.IsTerminal(entity.InterventionStatusInProgress))
	assert.False(t, intervention.IsTerminal(entity.InterventionStatusQualityAssessment))
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		status string
		want   bool
	}{
		{"admin edita estado terminal", entity.RoleAdmin, entity.InterventionStatusCompleted, true},
		{"admin edita estado abierto", entity.RoleAdmin, entity.InterventionStatusOpen, true},
		{"supervisor no edita completada", entity.RoleSupervisor, entity.InterventionStatusCompleted, false},
		{"supervisor no edita cancelada", entity.RoleSupervisor, entity.InterventionStatusCanceled, false},
		{"supervisor edita en progreso", entity.RoleSupervisor, entity.InterventionStatusInProgress, true},
		{"técnico no edita completada", entity.RoleTechnician, entity.InterventionStatusCompleted, false},
		{"técnico edita en evaluación", entity.RoleTechnician, entity.InterventionStatusQualityAssessment, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intervention.CanEdit(tt.role, tt.status))
		})
	}
}

func TestCanChangeStatus(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		current string
		next    string
		want    bool
	}{
		{"admin reabre completada", entity.RoleAdmin, entity.InterventionStatusCompleted, entity.InterventionStatusOpen, true},
		{"admin cancela abierta", entity.RoleAdmin, entity.InterventionStatusOpen, entity.InterventionStatusCanceled, true},
		{"supervisor no sale de terminal", entity.RoleSupervisor, entity.InterventionStatusCanceled, entity.InterventionStatusOpen, false},
		{"supervisor completa en evaluación", entity.RoleSupervisor, entity.InterventionStatusQualityAssessment, entity.InterventionStatusCompleted, true},
		{"técnico avanza a en progreso", entity.RoleTechnician, entity.InterventionStatusOpen, entity.InterventionStatusInProgress, true},
		{"técnico avanza a evaluación", entity.RoleTechnician, entity.InterventionStatusInProgress, entity.InterventionStatusQualityAssessment, true},
		{"técnico no completa", entity.RoleTechnician, entity.InterventionStatusQualityAssessment, entity.InterventionStatusCompleted, false},
		{"técnico no cancela", entity.RoleTechnician, entity.InterventionStatusOpen, entity.InterventionStatusCanceled, false},
		{"técnico no sale de terminal", entity.RoleTechnician, entity.InterventionStatusCompleted, entity.InterventionStatusInProgress, false},
		{"rol desconocido no transiciona", "INVITADO", entity.InterventionStatusOpen, entity.InterventionStatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intervention.CanChangeStatus(tt.role, tt.current, tt.next))
		})
	}
}

func TestAvailableStatuses(t *testing.T) {
	// Un no-admin en estado terminal solo puede quedarse donde está
	got := intervention.AvailableStatuses(entity.RoleSupervisor, entity.InterventionStatusCompleted)
	assert.Equal(t, []string{entity.InterventionStatusCompleted}, got)

	// Admin siempre tiene el abanico completo
	got = intervention.AvailableStatuses(entity.RoleAdmin, entity.InterventionStatusCanceled)
	assert.Len(t, got, 5)

	// Técnico en estado activo: solo sus destinos permitidos
	got = intervention.AvailableStatuses(entity.RoleTechnician, entity.InterventionStatusOpen)
	assert.NotContains(t, got, entity.InterventionStatusCompleted)
	assert.NotContains(t, got, entity.InterventionStatusCanceled)
	assert.Contains(t, got, entity.InterventionStatusInProgress)
}
