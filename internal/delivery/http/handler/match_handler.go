package handler

import (
	"errors"
	"strconv"

	"freelance-desk/internal/delivery/http/dto"
	"freelance-desk/internal/delivery/http/middleware"
	"freelance-desk/internal/pkg/response"
	"freelance-desk/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc    usecase.MatchingUsecase
	batch usecase.BatchMatchUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase, batch usecase.BatchMatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc, batch: batch}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	users := r.Group("/users")
	users.Get("/:user_id/matches", h.GetMatches)
	users.Get("/:user_id/similar-matches", h.GetSimilarMatches)

	r.Post("/matches/batch", h.RunBatch)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID, err := parseID(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	results, err := h.uc.MatchProjectsForUser(c.Context(), userID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := make([]dto.MatchItemResponse, 0, len(results))
	for _, m := range results {
		out = append(out, dto.MatchItemResponse{
			ProjectID:            m.Project.ID,
			Title:                m.Project.Title,
			Description:          m.Project.Description,
			Tags:                 m.Project.Tags,
			ExpectedBudget:       m.Project.ExpectedBudget,
			ExpectedTimelineDays: m.Project.ExpectedTimelineDays,
			MatchCount:           m.MatchCount,
			MatchedSkills:        m.MatchedSkills,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) GetSimilarMatches(c fiber.Ctx) error {
	userID, err := parseID(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ranked, err := h.uc.SimilarProjectsForUser(c.Context(), userID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := make([]dto.SimilarProjectResponse, 0, len(ranked))
	for _, rp := range ranked {
		out = append(out, dto.SimilarProjectResponse{
			ProjectID: rp.Project.ID,
			Title:     rp.Project.Title,
			Tags:      rp.Project.Tags,
			Score:     rp.Score,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) RunBatch(c fiber.Ctx) error {
	report, err := h.batch.RunAll(c.Context())
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.BatchMatchResponse{
		UsersProcessed: report.UsersProcessed,
		MatchesStored:  report.MatchesStored,
		UsersFailed:    report.UsersFailed,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrScorerUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Similarity scorer not configured", nil, err)
	case errors.Is(err, usecase.ErrStorage):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
