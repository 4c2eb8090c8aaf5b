package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hws/travel-api/internal/application/auth"
	"github.com/hws/travel-api/internal/application/usecase"
	"github.com/hws/travel-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GuideUC    *usecase.GuideUseCase
	ActiviteUC *usecase.ActiviteUseCase
	UserUC     *usecase.UserUseCase
	RoleUC     *usecase.RoleUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleUser)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Guides: la gestión del catálogo es de ADMIN; la consulta individual y
	// mes-guides están abiertas a cualquier usuario con rol (el caso de uso
	// decide según invitaciones).
	guides := protected.Group("/guides")
	guideHandler := NewGuideHandler(deps.GuideUC, deps.UserUC)
	guides.Get("/mes-guides", anyRole, guideHandler.ListMine)
	guides.Get("/", adminOnly, guideHandler.List)
	guides.Post("/", adminOnly, guideHandler.Create)
	guides.Get("/:id", anyRole, guideHandler.GetByID)
	guides.Put("/:id", adminOnly, guideHandler.Update)
	guides.Delete("/:id", adminOnly, guideHandler.Delete)
	guides.Post("/:id/activites", adminOnly, guideHandler.AddActivity)
	guides.Post("/:id/activites/batch", adminOnly, guideHandler.AddActivities)
	guides.Delete("/:id/activites/:placementId", adminOnly, guideHandler.RemoveActivity)
	guides.Post("/:id/invitations", adminOnly, guideHandler.Invite)
	guides.Delete("/:id/invitations/:userId", adminOnly, guideHandler.Revoke)

	// Activités (catálogo, solo ADMIN)
	activites := protected.Group("/activites", adminOnly)
	activiteHandler := NewActiviteHandler(deps.ActiviteUC)
	activites.Post("/", activiteHandler.Create)
	activites.Get("/", activiteHandler.List)
	activites.Get("/:id", activiteHandler.GetByID)
	activites.Put("/:id", activiteHandler.Update)
	activites.Delete("/:id", activiteHandler.Delete)

	// Users (solo ADMIN)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)

	// Roles (solo ADMIN)
	roles := protected.Group("/roles", adminOnly)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Delete("/:id", roleHandler.Delete)

	// Enums (cualquier usuario autenticado con rol)
	enums := protected.Group("/enums", anyRole)
	enumHandler := NewEnumHandler()
	enums.Get("/mobilites", enumHandler.Mobilites)
	enums.Get("/saisons", enumHandler.Saisons)
	enums.Get("/pour-qui", enumHandler.PoursQui)
	enums.Get("/categories", enumHandler.Categories)
}
