package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/database"
	dbpostgres "career-guide/internal/database/postgres"
	"career-guide/internal/domain/profile"
	"career-guide/internal/infrastructure/cache"
	"career-guide/internal/narrative"
	"career-guide/internal/repository"
	"career-guide/internal/usecase"
)

// Container owns the long-lived dependencies and the usecases built on them.
type Container struct {
	Config config.Config
	Logger *slog.Logger
	DB     database.DB
	Cache  *cache.Redis

	Recommendations *usecase.Recommendation
	Opportunities   *usecase.Opportunity
	Career          *usecase.Career
	CVAssistant     *usecase.CVAssistant
}

func NewContainer(cfg config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.VerifySchema(ctx, db, database.RequiredColumns); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
	}

	generator, err := c.newGenerator(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.wireUsecases(generator)
	return c, nil
}

func (c *Container) newGenerator(ctx context.Context) (*narrative.Generator, error) {
	ncfg := narrative.Config{
		APIKey:        c.Config.Gemini.APIKey,
		PrimaryModel:  c.Config.Gemini.PrimaryModel,
		FallbackModel: c.Config.Gemini.FallbackModel,
		Timeout:       c.Config.Gemini.Timeout,
		Temperature:   c.Config.Gemini.Temperature,
		CacheTTL:      c.Config.Redis.TTL,
	}

	var client narrative.TextClient
	gemini, err := narrative.NewGeminiClient(ctx, ncfg)
	switch {
	case err == nil:
		client = gemini
	case errors.Is(err, narrative.ErrDisabled):
		c.Logger.Warn("GEMINI_API_KEY not set, narratives use fallback templates")
	default:
		return nil, err
	}

	return narrative.NewGenerator(ncfg, client, c.Cache, c.Logger), nil
}

func (c *Container) wireUsecases(generator *narrative.Generator) {
	skills := repository.NewPostgresSkillRepository(c.DB)
	courses := repository.NewPostgresCourseRepository(c.DB)
	profiles := profile.NewAggregator(repository.NewPostgresProfileRepository(c.DB), skills, c.Logger)

	opts := usecase.RecommendationOptions{
		DefaultLimit: c.Config.Recommendation.DefaultLimit,
		MaxLimit:     c.Config.Recommendation.MaxLimit,
		Workers:      c.Config.Recommendation.Workers,
		NarrativeRPS: c.Config.Recommendation.LLMRatePerSec,
	}

	c.Recommendations = usecase.NewRecommendationUsecase(
		profiles, skills, repository.NewPostgresJobRepository(c.DB), courses, generator, opts, c.Logger,
	)
	c.Opportunities = usecase.NewOpportunityUsecase(
		profiles, skills, repository.NewPostgresOpportunityRepository(c.DB), courses, generator, opts, c.Logger,
	)
	c.Career = usecase.NewCareerUsecase(profiles, generator, c.Logger)
	c.CVAssistant = usecase.NewCVAssistantUsecase(profiles, generator, c.Logger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
