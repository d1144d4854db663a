package v1

import (
	"freelance-desk/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterMatches(r fiber.Router, matchHandler *handler.MatchHandler) {
	if r == nil {
		return
	}
	if matchHandler == nil {
		return
	}

	matchHandler.RegisterRoutes(r)
}
