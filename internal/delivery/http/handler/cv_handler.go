package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CVAssistantHandler struct {
	uc usecase.CVAssistantUsecase
}

func NewCVAssistantHandler(uc usecase.CVAssistantUsecase) *CVAssistantHandler {
	return &CVAssistantHandler{uc: uc}
}

func (h *CVAssistantHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/cv-assistant")
	g.Get("/analysis", h.Analyze)
	g.Get("/keywords", h.Keywords)
	g.Post("/summary", h.Summary)
	g.Post("/bullets", h.ImproveBullets)
}

func (h *CVAssistantHandler) Analyze(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	result, err := h.uc.Analyze(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompleteness(result))
}

func (h *CVAssistantHandler) Keywords(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	role := c.Query("target_role")
	keywords, err := h.uc.Keywords(c.Context(), userID, role)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.CVKeywordsResponse{Keywords: keywords}
	if role != "" {
		out.TargetRole = &role
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CVAssistantHandler) Summary(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.Summary(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CVSummaryResponse{Summary: summary})
}

func (h *CVAssistantHandler) ImproveBullets(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	var req dto.ImproveBulletsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	got, err := h.uc.ImproveBullets(c.Context(), userID, req.ExperienceIndex, req.JobContext)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ImproveBulletsResponse{
		BulletPoints:    got.Bullets,
		ExperienceTitle: got.ExperienceTitle,
	})
}
