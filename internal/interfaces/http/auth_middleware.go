package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hws/travel-api/pkg/jwt"
)

// Locals keys para la identidad extraída del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRoles  = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y deja user_id, email y roles en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, labelUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, labelUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, labelUnauthorized, "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, labelUnauthorized, "token inválido o expirado")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Subject)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// RequireRole exige que el token lleve al menos uno de los roles indicados.
// Un token sin roles es un 401; un token con roles insuficientes, un 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		have := GetRoles(c)
		if len(have) == 0 {
			return fail(c, fiber.StatusUnauthorized, labelNoRoleAssigned, "el usuario no tiene ningún rol asignado")
		}
		for _, want := range roles {
			for _, r := range have {
				if r == want {
					return c.Next()
				}
			}
		}
		return fail(c, fiber.StatusForbidden, labelForbidden, "rol insuficiente para esta operación")
	}
}

// GetUserID devuelve el user_id del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoles devuelve los roles del contexto (después del middleware de auth).
func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocalRoles)
	if v == nil {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}

// IsAdmin indica si el token del contexto lleva el rol ADMIN.
func IsAdmin(c *fiber.Ctx) bool {
	for _, r := range GetRoles(c) {
		if r == "ADMIN" {
			return true
		}
	}
	return false
}
