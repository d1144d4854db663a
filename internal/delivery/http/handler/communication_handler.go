package handler

import (
	"errors"

	"freelance-desk/internal/delivery/http/dto"
	"freelance-desk/internal/delivery/http/middleware"
	"freelance-desk/internal/domain/communication"
	"freelance-desk/internal/pkg/response"
	"freelance-desk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CommunicationHandler struct {
	uc usecase.CommunicationUsecase
}

func NewCommunicationHandler(uc usecase.CommunicationUsecase) *CommunicationHandler {
	return &CommunicationHandler{uc: uc}
}

func (h *CommunicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/communications")
	grp.Post("/email", h.GenerateEmail)
	grp.Post("/analyze", h.AnalyzeEmail)
}

func (h *CommunicationHandler) GenerateEmail(c fiber.Ctx) error {
	var req dto.GenerateEmailRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.GenerateEmailInput{
		Kind:          req.MessageType,
		NegotiationID: req.NegotiationID,
		Params: communication.EmailParams{
			SenderName:      req.SenderName,
			RecipientName:   req.RecipientName,
			ProjectTitle:    req.ProjectTitle,
			Deadline:        req.Deadline,
			BudgetRange:     req.BudgetRange,
			ProposalSummary: req.ProposalSummary,
			Timeline:        req.Timeline,
			StartDate:       req.StartDate,
			Reason:          req.Reason,
		},
	}

	res, err := h.uc.GenerateEmail(c.Context(), in)
	if err != nil {
		return mapCommunicationUsecaseError(err)
	}

	out := dto.GenerateEmailResponse{
		CommunicationID: res.CommunicationID,
		Email:           res.Email,
		Tone:            res.Tone,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CommunicationHandler) AnalyzeEmail(c fiber.Ctx) error {
	var req dto.AnalyzeEmailRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.AnalyzeEmail(c.Context(), req.EmailContent)
	if err != nil {
		return mapCommunicationUsecaseError(err)
	}

	out := dto.AnalyzeEmailResponse{
		Tone: res.Tone,
		Priority: dto.PriorityResponse{
			Priority: res.Priority.Priority,
			Score:    res.Priority.Score,
			Keywords: res.Priority.Keywords,
		},
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapCommunicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrStorage):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
