package handler

import (
	"freelance-desk/internal/delivery/http/middleware"
	"freelance-desk/internal/pkg/response"
	"freelance-desk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/dashboard", h.GetSummary)
}

func (h *DashboardHandler) GetSummary(c fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}
