package v1

import (
	"skill-matrix/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, userHandler *handler.UserHandler, skillEntryHandler *handler.SkillEntryHandler) {
	if r == nil {
		return
	}
	if userHandler == nil {
		return
	}

	userHandler.RegisterRoutes(r)
	if skillEntryHandler != nil {
		skillEntryHandler.RegisterRoutes(r)
	}
}
