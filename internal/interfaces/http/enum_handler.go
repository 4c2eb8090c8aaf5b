package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hws/travel-api/internal/domain/entity"
)

// EnumHandler expone los valores aceptados de cada enumeración del dominio,
// para que los clientes no los codifiquen a mano.
type EnumHandler struct{}

// NewEnumHandler construye el handler.
func NewEnumHandler() *EnumHandler {
	return &EnumHandler{}
}

// Mobilites godoc
// @Summary      Valores aceptados de mobilité
// @Tags         enums
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/enums/mobilites [get]
func (h *EnumHandler) Mobilites(c *fiber.Ctx) error {
	return c.JSON(entity.Mobilites)
}

// Saisons godoc
// @Summary      Valores aceptados de saison
// @Tags         enums
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/enums/saisons [get]
func (h *EnumHandler) Saisons(c *fiber.Ctx) error {
	return c.JSON(entity.Saisons)
}

// PoursQui godoc
// @Summary      Valores aceptados de pour qui
// @Tags         enums
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/enums/pour-qui [get]
func (h *EnumHandler) PoursQui(c *fiber.Ctx) error {
	return c.JSON(entity.PoursQui)
}

// Categories godoc
// @Summary      Valores aceptados de catégorie de actividad
// @Tags         enums
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/enums/categories [get]
func (h *EnumHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(entity.Categories)
}
