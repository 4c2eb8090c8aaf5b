package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los use cases los envuelven
// con fmt.Errorf("%w: ...") para añadir detalle; la capa HTTP los traduce a
// status + payload con errors.Is.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrGuideNotFound    = errors.New("guía no encontrada")
	ErrActiviteNotFound = errors.New("actividad no encontrada")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrRoleNotFound     = errors.New("rol no encontrado")

	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrReferenced         = errors.New("el recurso está referenciado por otros datos")

	ErrUnauthorized   = errors.New("credenciales inválidas")
	ErrForbidden      = errors.New("acceso denegado")
	ErrNoRoleAssigned = errors.New("el usuario no tiene roles asignados")
)
