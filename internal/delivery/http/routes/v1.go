package routes

import (
	"skill-matrix/internal/delivery/http/middleware"
	v1 "skill-matrix/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h Handlers, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	v1.Register(r, v1.Handlers{
		Auth:         h.Auth,
		User:         h.User,
		Organisation: h.Organisation,
		Catalogue:    h.Catalogue,
		SkillEntry:   h.SkillEntry,
	}, auth)
}
