package routes

import (
	"career-guide/internal/delivery/http/handler"
	v1 "career-guide/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health         *handler.HealthHandler
	Recommendation *handler.RecommendationHandler
	Opportunity    *handler.OpportunityHandler
	Career         *handler.CareerHandler
	CVAssistant    *handler.CVAssistantHandler

	Auth fiber.Handler
}

// Register mounts /health publicly and every API route under /api/v1 behind
// the auth middleware.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.Auth, r.Recommendation, r.Opportunity, r.Career, r.CVAssistant)
}
