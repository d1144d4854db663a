package v1

import (
	"freelance-desk/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterDocuments(r fiber.Router, documentHandler *handler.DocumentHandler) {
	if r == nil {
		return
	}
	if documentHandler == nil {
		return
	}

	documentHandler.RegisterRoutes(r)
}
