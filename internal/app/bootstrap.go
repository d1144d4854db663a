package app

import (
	"fmt"
	"log"
	"strings"

	"freelance-desk/internal/delivery/http/middleware"
	"freelance-desk/internal/delivery/http/routes"
	"freelance-desk/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, c, logger)

	return &App{Fiber: f}
}

// Bootstrap connects the container's resources and assembles the HTTP app.
// The returned cleanup function releases them.
func Bootstrap(c *Container, logger *log.Logger) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	app := New(c, logger)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Get("/health", func(ctx fiber.Ctx) error {
		return response.Success(ctx, fiber.StatusOK, response.MessageOK, nil)
	})

	registry := routes.NewRegistry(c.Config, c.DB, logger)
	registry.Register(app)
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
