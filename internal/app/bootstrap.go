package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skill-matrix/internal/config"
	"skill-matrix/internal/delivery/http/handler"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/delivery/http/routes"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects dependencies, applies migrations and seeds, starts the
// websocket hub and builds the HTTP app. The returned cleanup stops the hub
// and closes every connection.
func Bootstrap(cfg config.Config, log *logger.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := c.Migrate(ctx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	if err := c.Seed(ctx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *logger.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(log)
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(log)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	ws.NewHandler(c.Hub).RegisterRoutes(app)

	routes.NewRegistry(routes.Handlers{
		Health:       handler.NewHealthHandler(c.DB, c.Cache),
		Auth:         handler.NewAuthHandler(c.Auth),
		User:         handler.NewUserHandler(c.User),
		Organisation: handler.NewOrganisationHandler(c.Organisation),
		Catalogue:    handler.NewCatalogueHandler(c.Catalogue),
		SkillEntry:   handler.NewSkillEntryHandler(c.SkillEntry),
	}, middleware.NewAuthMiddleware(c.JWT)).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
