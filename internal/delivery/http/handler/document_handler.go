package handler

import (
	"errors"

	"freelance-desk/internal/delivery/http/dto"
	"freelance-desk/internal/delivery/http/middleware"
	"freelance-desk/internal/domain/document"
	"freelance-desk/internal/pkg/response"
	"freelance-desk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DocumentHandler struct {
	uc usecase.DocumentUsecase
}

func NewDocumentHandler(uc usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/documents", h.GenerateDocument)
}

func (h *DocumentHandler) GenerateDocument(c fiber.Ctx) error {
	var req dto.GenerateDocumentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.GenerateDocumentInput{
		DocType:       req.DocType,
		TemplateKind:  req.TemplateType,
		NegotiationID: req.NegotiationID,
		Data: document.Data{
			OrganizationName:   req.OrganizationName,
			ClientName:         req.ClientName,
			ProjectTitle:       req.ProjectTitle,
			ProjectDescription: req.ProjectDescription,
			Timeline:           req.Timeline,
			Budget:             req.Budget,
			SenderName:         req.SenderName,
			Date:               req.Date,
		},
	}

	res, err := h.uc.GenerateDocument(c.Context(), in)
	if err != nil {
		return mapDocumentUsecaseError(err)
	}

	out := dto.GenerateDocumentResponse{
		DocumentID: res.DocumentID,
		DocType:    res.DocType,
		Document:   res.Content,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapDocumentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnknownDocType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown document type", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrStorage):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
