package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/jobs")
	grp.Get("/recommendations", h.GetRecommendations)
	grp.Get("/recommendations/stats", h.GetStats)
}

// GetRecommendations accepts ?limit=; out of range values are clamped by the
// usecase.
func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	items, err := h.uc.GetRecommendations(c.Context(), userID, parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchResults(items))
}

func (h *RecommendationHandler) GetStats(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	s, err := h.uc.GetRecommendationStats(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommendationStatsResponse{
		TotalJobs:         s.Total,
		ExcellentMatches:  s.ExcellentCount,
		GoodMatches:       s.GoodCount,
		AverageMatchScore: s.AverageScore,
		TotalSkillGaps:    s.TotalGaps,
	})
}
