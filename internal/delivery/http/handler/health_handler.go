package handler

import (
	"context"
	"time"

	"skill-matrix/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is satisfied by the database pool and the Redis cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health fails only when the database is unreachable. Redis is optional and
// reported as degraded.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "ok", "cache": "ok"}
	code := fiber.StatusOK

	if h.db == nil || h.db.Ping(ctx) != nil {
		status["database"] = "unavailable"
		code = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		status["cache"] = "degraded"
	}

	if code != fiber.StatusOK {
		return response.Error(c, code, "unhealthy", status)
	}
	return response.Success(c, code, response.MessageOK, status)
}
