package v1

import (
	"freelance-desk/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterNegotiations(r fiber.Router, negotiationHandler *handler.NegotiationHandler) {
	if r == nil {
		return
	}
	if negotiationHandler == nil {
		return
	}

	negotiationHandler.RegisterRoutes(r)
}
