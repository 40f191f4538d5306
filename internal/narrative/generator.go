package narrative

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
)

// Generator produces narrative text through a TextClient and falls back to
// deterministic templates whenever the client cannot deliver usable prose.
// Its methods return an error only when ctx is done.
type Generator struct {
	cfg    Config
	client TextClient
	cache  Cache
	logger *slog.Logger
}

// NewGenerator builds a generator. A nil client makes every call use the
// fallback templates; cache may be nil.
func NewGenerator(cfg Config, client TextClient, cache Cache, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{cfg: cfg.withDefaults(), client: client, cache: cache, logger: logger}
}

func (g *Generator) GenerateMatchNarrative(ctx context.Context, p profile.UserProfile, r matching.MatchResult) (string, error) {
	return g.narrate(ctx, "match", matchPrompt(p, r), Sanitize, func() string {
		return FallbackMatchNarrative(r)
	})
}

// GenerateOpportunityNarrative explains a ranked opportunity list in lang.
// An empty list yields NoOpportunitiesMessage without calling the model.
func (g *Generator) GenerateOpportunityNarrative(ctx context.Context, p profile.UserProfile, ranked []matching.MatchResult, lang Language) (string, error) {
	if len(ranked) == 0 {
		return NoOpportunitiesMessage, nil
	}
	return g.narrate(ctx, "opportunity", opportunityPrompt(p, ranked, lang), Sanitize, func() string {
		return FallbackOpportunityNarrative(p, ranked)
	})
}

// Reply answers a career question. The answer always ends with the advisory
// disclaimer.
func (g *Generator) Reply(ctx context.Context, p profile.UserProfile, message string, lang Language) (string, error) {
	text, err := g.narrate(ctx, "chat", chatPrompt(p, message, lang), Sanitize, func() string {
		return fallbackReply(p)
	})
	if err != nil {
		return "", err
	}
	if !strings.Contains(text, chatDisclaimer) {
		text += "\n\n" + chatDisclaimer
	}
	return text, nil
}

func (g *Generator) GenerateRoadmap(ctx context.Context, p profile.UserProfile, req RoadmapRequest) (Roadmap, error) {
	fallback := fallbackRoadmap(p, req)
	text, err := g.narrate(ctx, "roadmap", roadmapPrompt(p, req), SanitizeKeepingBlocks, func() string {
		return ""
	})
	if err != nil {
		return Roadmap{}, err
	}
	if text == "" {
		return fallback, nil
	}

	rm := splitRoadmap(text)
	if rm.Visual == "" {
		rm.Visual = fallback.Visual
	}
	if !strings.Contains(rm.Description, roadmapDisclaimer) {
		rm.Description = strings.TrimSpace(rm.Description + "\n\n" + roadmapDisclaimer)
	}
	return rm, nil
}

func (g *Generator) narrate(
	ctx context.Context,
	task, prompt string,
	sanitize func(string) (string, bool),
	fallback func() string,
) (string, error) {
	raw, err := g.complete(ctx, task, prompt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return fallback(), nil
	}
	text, ok := sanitize(raw)
	if !ok {
		g.logger.Warn("generative service returned no usable prose",
			slog.String("kind", "external_service_fatal"),
			slog.String("task", task),
		)
		return fallback(), nil
	}
	return text, nil
}

// complete runs the call protocol: primary model first, the fallback model
// only after a rate limit.
func (g *Generator) complete(ctx context.Context, task, prompt string) (string, error) {
	if g.client == nil {
		return "", ErrDisabled
	}

	var lastErr error
	for i, model := range g.cfg.models() {
		if i > 0 && !errors.Is(lastErr, ErrRateLimited) {
			break
		}

		key := CacheKey(model, prompt)
		if text, ok := g.cacheGet(ctx, key); ok {
			return text, nil
		}

		text, err := g.call(ctx, model, prompt)
		if err == nil {
			g.cacheSet(ctx, key, text)
			return text, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		lastErr = err
		g.logFailure(task, model, err)
	}
	return "", lastErr
}

func (g *Generator) call(ctx context.Context, model, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	text, err := g.client.GenerateText(callCtx, model, prompt)
	if err != nil {
		if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s after %s", ErrTimeout, model, g.cfg.Timeout)
		}
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response from %s", ErrServiceFatal, model)
	}
	return text, nil
}

func (g *Generator) logFailure(task, model string, err error) {
	kind := "external_service_fatal"
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout) {
		kind = "external_service_transient"
	}
	g.logger.Warn("generative service call failed",
		slog.String("kind", kind),
		slog.String("task", task),
		slog.String("model", model),
		slog.Any("error", err),
	)
}

func (g *Generator) cacheGet(ctx context.Context, key string) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	text, ok, err := g.cache.GetString(ctx, key)
	if err != nil || !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

func (g *Generator) cacheSet(ctx context.Context, key, text string) {
	if g.cache == nil {
		return
	}
	if err := g.cache.SetString(ctx, key, text, g.cfg.CacheTTL); err != nil {
		g.logger.Debug("narrative cache write failed", slog.Any("error", err))
	}
}
