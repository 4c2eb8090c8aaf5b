package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// Etiquetas cortas del payload de error, una por categoría de la taxonomía.
const (
	labelNotFound       = "Not Found"
	labelValidation     = "Validation Failed"
	labelConflict       = "Conflict"
	labelIntegrity      = "Data Integrity Violation"
	labelForbidden      = "Access Denied"
	labelUnauthorized   = "Unauthorized"
	labelNoRoleAssigned = "No Role Assigned"
	labelInternal       = "Internal Server Error"
)

// fail responde con el payload de error estándar.
func fail(c *fiber.Ctx, status int, label, message string, details ...string) error {
	return c.Status(status).JSON(dto.NewErrorResponse(status, label, message, c.Path(), details...))
}

// respondDomainError traduce un error de dominio a status + payload. Los
// errores no tipados se registran con detalle en el servidor y el cliente
// recibe un mensaje genérico.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrGuideNotFound),
		errors.Is(err, domain.ErrActiviteNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, labelNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusBadRequest, labelValidation, err.Error())
	case errors.Is(err, domain.ErrNoRoleAssigned):
		return fail(c, fiber.StatusBadRequest, labelNoRoleAssigned, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, labelConflict, err.Error())
	case errors.Is(err, domain.ErrReferenced):
		return fail(c, fiber.StatusConflict, labelIntegrity,
			"imposible eliminar el recurso: está referenciado por otros datos")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, labelUnauthorized,
			"credenciales inválidas, verifique su email y password")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, labelForbidden,
			"acceso denegado: no tiene permiso sobre este recurso")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error inesperado")
		return fail(c, fiber.StatusInternalServerError, labelInternal,
			"se produjo un error inesperado, intente más tarde")
	}
}

// parsePositiveID lee un parámetro de ruta que debe ser un entero positivo.
// El rechazo ocurre antes de llegar a la lógica de negocio.
func parsePositiveID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: el parámetro %s debe ser un entero positivo", domain.ErrInvalidInput, name)
	}
	return int64(id), nil
}
