package v1

import (
	"skill-matrix/internal/delivery/http/handler"
	"skill-matrix/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Organisation *handler.OrganisationHandler
	Catalogue    *handler.CatalogueHandler
	SkillEntry   *handler.SkillEntryHandler
}

func Register(r fiber.Router, h Handlers, auth *middleware.AuthMiddleware) {
	if r == nil || auth == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r.Group("", auth.Middleware())

	RegisterUsers(protected.Group("/users"), h.User, h.SkillEntry)
	if h.Organisation != nil {
		h.Organisation.RegisterRoutes(protected)
	}
	if h.Catalogue != nil {
		h.Catalogue.RegisterRoutes(protected)
	}

	RegisterAdmin(protected.Group("/admin", middleware.RequireStaff()), h)
}
