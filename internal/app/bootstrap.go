package app

import (
	"fmt"
	"log/slog"
	"strings"

	"career-guide/internal/config"
	"career-guide/internal/delivery/http/handler"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/delivery/http/routes"
	"career-guide/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// New builds the HTTP app over an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)

	authMw := middleware.NewAuthMiddleware(jwt.NewHMACVerifier(c.Config.JWT.AccessSecret))
	reg := &routes.Registry{
		Health:         handler.NewHealthHandler(c.DB, c.Cache),
		Recommendation: handler.NewRecommendationHandler(c.Recommendations),
		Opportunity:    handler.NewOpportunityHandler(c.Opportunities),
		Career:         handler.NewCareerHandler(c.Career),
		CVAssistant:    handler.NewCVAssistantHandler(c.CVAssistant),
		Auth:           authMw.Middleware(),
	}
	reg.Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, logger *slog.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *slog.Logger) {
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
