package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrUnitNotAvailable      = errors.New("unidad no disponible en la ubicación requerida")
	ErrUnitNotAssigned       = errors.New("unidad no asignada al técnico indicado")
	ErrDuplicateSerialNumber = errors.New("número de serie duplicado")
	ErrNotConfigured         = errors.New("generación automática no configurada")
)

// Actor identidad verificada del solicitante (userID + rol del token JWT).
// Se pasa explícitamente a cada operación; nunca se lee de estado global.
type Actor struct {
	UserID string
	Role   string
}

// InsufficientStockError indica stock insuficiente e incluye la cantidad disponible
// para que el caller pueda corregir la petición. errors.Is(err, ErrInsufficientStock) == true.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d", e.Available)
}

// Is hace que el error tipado matchee el sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// DuplicateSerialNumberError indica qué números de serie ya existen para el ítem.
// errors.Is(err, ErrDuplicateSerialNumber) == true.
type DuplicateSerialNumberError struct {
	SerialNumbers []string
}

func (e *DuplicateSerialNumberError) Error() string {
	return fmt.Sprintf("números de serie ya existentes: %s", strings.Join(e.SerialNumbers, ", "))
}

// Is hace que el error tipado matchee el sentinel ErrDuplicateSerialNumber.
func (e *DuplicateSerialNumberError) Is(target error) bool {
	return target == ErrDuplicateSerialNumber
}
