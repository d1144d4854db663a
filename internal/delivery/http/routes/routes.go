package routes

import (
	"log"

	"freelance-desk/internal/config"
	"freelance-desk/internal/database"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.logger)
}
