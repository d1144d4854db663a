package v1

import (
	"freelance-desk/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterCommunications(r fiber.Router, communicationHandler *handler.CommunicationHandler) {
	if r == nil {
		return
	}
	if communicationHandler == nil {
		return
	}

	communicationHandler.RegisterRoutes(r)
}
