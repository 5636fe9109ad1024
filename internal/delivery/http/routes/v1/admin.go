package v1

import "github.com/gofiber/fiber/v3"

func RegisterAdmin(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Catalogue != nil {
		h.Catalogue.RegisterAdminRoutes(r)
	}
	if h.SkillEntry != nil {
		h.SkillEntry.RegisterAdminRoutes(r)
	}
	if h.Organisation != nil {
		h.Organisation.RegisterAdminRoutes(r)
	}
}
