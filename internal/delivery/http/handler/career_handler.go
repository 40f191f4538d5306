package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/narrative"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	uc usecase.CareerUsecase
}

func NewCareerHandler(uc usecase.CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/careerbot/messages", h.Ask)
	r.Post("/roadmaps", h.Roadmap)
}

func (h *CareerHandler) Ask(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	var req dto.ChatMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	reply, err := h.uc.Ask(c.Context(), userID, req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ChatMessageResponse{
		Reply:    reply.Reply,
		Language: string(reply.Language),
		Blocked:  reply.Blocked,
	})
}

func (h *CareerHandler) Roadmap(c fiber.Ctx) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return err
	}

	var req dto.RoadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	rm, err := h.uc.Roadmap(c.Context(), userID, narrative.RoadmapRequest{
		TargetRole:  req.TargetRole,
		Timeframe:   req.Timeframe,
		WeeklyHours: req.WeeklyHours,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Roadmap generated", dto.RoadmapResponse{
		TargetRole:  req.TargetRole,
		Timeframe:   req.Timeframe,
		Visual:      rm.Visual,
		Description: rm.Description,
	})
}
