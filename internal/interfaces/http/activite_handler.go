package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/application/usecase"
)

// ActiviteHandler maneja las peticiones HTTP para el catálogo de actividades.
type ActiviteHandler struct {
	uc *usecase.ActiviteUseCase
}

// NewActiviteHandler construye el handler.
func NewActiviteHandler(uc *usecase.ActiviteUseCase) *ActiviteHandler {
	return &ActiviteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear actividad
// @Tags         activites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActiviteRequest  true  "Datos de la actividad"
// @Success      201   {object}  dto.ActiviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/activites [post]
func (h *ActiviteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActiviteRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, labelValidation, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener actividad por ID
// @Tags         activites
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la actividad"
// @Success      200  {object}  dto.ActiviteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activites/{id} [get]
func (h *ActiviteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar actividades
// @Tags         activites
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ActiviteResponse
// @Router       /api/activites [get]
func (h *ActiviteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar actividad (los campos ausentes no se tocan)
// @Tags         activites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la actividad"
// @Param        body  body  dto.UpdateActiviteRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ActiviteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/activites/{id} [put]
func (h *ActiviteHandler) Update(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateActiviteRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, labelValidation, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar actividad
// @Tags         activites
// @Security     Bearer
// @Param        id  path  int  true  "ID de la actividad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/activites/{id} [delete]
func (h *ActiviteHandler) Delete(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
