package handler

import (
	"errors"

	"freelance-desk/internal/delivery/http/dto"
	"freelance-desk/internal/delivery/http/middleware"
	"freelance-desk/internal/domain/negotiation"
	"freelance-desk/internal/pkg/response"
	"freelance-desk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NegotiationHandler struct {
	uc usecase.NegotiationUsecase
}

func NewNegotiationHandler(uc usecase.NegotiationUsecase) *NegotiationHandler {
	return &NegotiationHandler{uc: uc}
}

func (h *NegotiationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/negotiations")
	grp.Get("/:project_id/:client_id", h.Negotiate)
}

func (h *NegotiationHandler) Negotiate(c fiber.Ctx) error {
	projectID, err := parseID(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	clientID, err := parseID(c.Params("client_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Negotiate(c.Context(), projectID, clientID)
	if err != nil {
		return mapNegotiationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toNegotiationResponse(res))
}

func toNegotiationResponse(res negotiation.Result) dto.NegotiationResponse {
	return dto.NegotiationResponse{
		ProjectID:     res.ProjectID,
		ClientID:      res.ClientID,
		ProjectName:   res.ProjectName,
		OverallStatus: string(res.OverallStatus),
		Budget:        toFieldVerdictResponse(res.Budget),
		Timeline:      toFieldVerdictResponse(res.Timeline),
		Deliverables: dto.DeliverablesVerdictResponse{
			Status:       string(res.Deliverables.Status),
			Expected:     res.Deliverables.Expected,
			Proposed:     res.Deliverables.Proposed,
			Counteroffer: res.Deliverables.Counteroffer,
		},
		Summary: res.Summary,
	}
}

func toFieldVerdictResponse(v negotiation.FieldVerdict) dto.FieldVerdictResponse {
	return dto.FieldVerdictResponse{
		Status:       string(v.Status),
		Expected:     v.Expected,
		Proposed:     v.Proposed,
		Counteroffer: v.Counteroffer,
	}
}

func mapNegotiationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Proposal not found", nil, err)
	case errors.Is(err, usecase.ErrStorage):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
