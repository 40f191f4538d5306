package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OpportunityHandler struct {
	uc usecase.OpportunityUsecase
}

func NewOpportunityHandler(uc usecase.OpportunityUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

func (h *OpportunityHandler) RegisterRoutes(r fiber.Router) {
	r.Group("/opportunities").Get("/recommendations", h.Recommend)
}

func (h *OpportunityHandler) Recommend(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.Recommend(c.Context(), userID, parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		dto.FromOpportunities(rec.Explanation, rec.Opportunities, rec.TotalMatched, string(rec.Language)))
}
