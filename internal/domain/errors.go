package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrNotFound cubre también los registros fuera del alcance del usuario:
// el filtrado por rol ocurre a nivel de consulta, así que un registro ajeno
// simplemente no existe para quien pregunta.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrEmailExists  = errors.New("el email ya está registrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrTransaction  = errors.New("la operación no pudo completarse")
)

// ValidationError lleva errores por campo (ej. una FK elegida fuera del alcance
// del usuario). Envuelve ErrInvalidInput para que errors.Is siga funcionando.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError construye un error de validación con un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
