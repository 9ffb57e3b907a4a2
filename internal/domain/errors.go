package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrInactiveUser   = errors.New("cuenta inactiva")
	ErrSelfDeactivate = errors.New("un usuario no puede desactivarse a sí mismo")
)

// ValidationError señala un campo requerido ausente, un numérico fuera de
// rango o una fecha malformada. La operación nunca llega al store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Message)
}

// Is permite errors.Is(err, ErrInvalidInput) sobre cualquier ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError construye un error de validación para el campo dado.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
