package routes

import (
	"log"

	"freelance-desk/internal/config"
	"freelance-desk/internal/database"
	v1 "freelance-desk/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, logger)
}
