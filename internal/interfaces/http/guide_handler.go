package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hws/travel-api/internal/application/dto"
	"github.com/hws/travel-api/internal/application/usecase"
)

// GuideHandler maneja las peticiones HTTP para Guide (protegido).
type GuideHandler struct {
	uc    *usecase.GuideUseCase
	users *usecase.UserUseCase
}

// NewGuideHandler construye el handler.
func NewGuideHandler(uc *usecase.GuideUseCase, users *usecase.UserUseCase) *GuideHandler {
	return &GuideHandler{uc: uc, users: users}
}

// callerID resuelve la identidad del usuario autenticado. El claim user_id
// manda; si falta, se busca el id por el email del subject.
func (h *GuideHandler) callerID(c *fiber.Ctx) (int64, error) {
	return h.users.ResolveCallerID(GetUserID(c), GetEmail(c))
}

// List godoc
// @Summary      Listar todos los guides
// @Tags         guides
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GuideResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/guides [get]
func (h *GuideHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar los guides a los que el usuario está invitado
// @Tags         guides
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GuideResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/guides/mes-guides [get]
func (h *GuideHandler) ListMine(c *fiber.Ctx) error {
	callerID, err := h.callerID(c)
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.ListForUser(callerID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener guide por ID
// @Tags         guides
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del guide"
// @Success      200  {object}  dto.GuideResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guides/{id} [get]
func (h *GuideHandler) GetByID(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	callerID, err := h.callerID(c)
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.GetByIDForUser(id, callerID, IsAdmin(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear guide
// @Tags         guides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGuideRequest  true  "Datos del guide"
// @Success      201   {object}  dto.GuideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guides [post]
func (h *GuideHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGuideRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, labelValidation, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar guide (los campos ausentes no se tocan)
// @Tags         guides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del guide"
// @Param        body  body  dto.UpdateGuideRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.GuideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guides/{id} [put]
func (h *GuideHandler) Update(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.UpdateGuideRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, labelValidation, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar guide
// @Tags         guides
// @Security     Bearer
// @Param        id  path  int  true  "ID del guide"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guides/{id} [delete]
func (h *GuideHandler) Delete(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddActivity godoc
// @Summary      Añadir una actividad al guide
// @Tags         guides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID del guide"
// @Param        body  body  dto.PlacementRequest  true  "activiteId, jour y ordre"
// @Success      200   {object}  dto.GuideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guides/{id}/activites [post]
func (h *GuideHandler) AddActivity(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.PlacementRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, labelValidation, "cuerpo inválido")
	}
	out, err := h.uc.AddActivity(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// AddActivities godoc
// @Summary      Añadir un lote de actividades al guide (todo o nada)
// @Tags         guides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del guide"
// @Param        body  body  []dto.PlacementRequest  true  "Lote de colocaciones"
// @Success      200   {object}  dto.GuideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guides/{id}/activites/batch [post]
func (h *GuideHandler) AddActivities(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in []dto.PlacementRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, labelValidation, "cuerpo inválido")
	}
	out, err := h.uc.AddActivities(c.Context(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RemoveActivity godoc
// @Summary      Quitar una colocación del guide
// @Tags         guides
// @Security     Bearer
// @Produce      json
// @Param        id           path  int  true  "ID del guide"
// @Param        placementId  path  int  true  "ID de la colocación"
// @Success      200  {object}  dto.GuideResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guides/{id}/activites/{placementId} [delete]
func (h *GuideHandler) RemoveActivity(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	placementID, err := parsePositiveID(c, "placementId")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.RemoveActivity(id, placementID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Invite godoc
// @Summary      Invitar un usuario al guide
// @Tags         guides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del guide"
// @Param        body  body  dto.InvitationRequest  true  "userId a invitar"
// @Success      200   {object}  dto.GuideResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guides/{id}/invitations [post]
func (h *GuideHandler) Invite(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	var in dto.InvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, labelValidation, "cuerpo inválido")
	}
	if in.UserID <= 0 {
		return fail(c, fiber.StatusBadRequest, labelValidation, "userId debe ser un entero positivo")
	}
	out, err := h.uc.InviteUser(id, in.UserID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Revoke godoc
// @Summary      Revocar la invitación de un usuario al guide
// @Tags         guides
// @Security     Bearer
// @Produce      json
// @Param        id      path  int  true  "ID del guide"
// @Param        userId  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.GuideResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guides/{id}/invitations/{userId} [delete]
func (h *GuideHandler) Revoke(c *fiber.Ctx) error {
	id, err := parsePositiveID(c, "id")
	if err != nil {
		return respondDomainError(c, err)
	}
	userID, err := parsePositiveID(c, "userId")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.RevokeUser(id, userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
