package handler

import (
	"context"
	"time"

	"career-guide/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the database as required and the cache as optional:
// only a failed database ping turns the check unhealthy.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{
		"database": probe(ctx, h.db),
		"cache":    probe(ctx, h.cache),
	}
	if checks["database"] != "up" {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
