package usecase

import (
	"context"
	"log/slog"
	"math"

	"career-guide/internal/domain/course"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
	"career-guide/internal/pkg/workerpool"

	"github.com/google/uuid"
)

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]matching.MatchResult, error)
	GetRecommendationStats(ctx context.Context, userID uuid.UUID) (Stats, error)
}

type RecommendationOptions struct {
	DefaultLimit int
	MaxLimit     int
	// Workers bounds concurrent narrative calls; NarrativeRPS spaces them.
	Workers      int
	NarrativeRPS float64
}

func (o RecommendationOptions) withDefaults() RecommendationOptions {
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = 10
	}
	if o.MaxLimit <= 0 {
		o.MaxLimit = 50
	}
	if o.DefaultLimit > o.MaxLimit {
		o.DefaultLimit = o.MaxLimit
	}
	if o.Workers <= 0 {
		o.Workers = 4
	}
	return o
}

// normalizeLimit maps a requested limit onto [1, MaxLimit]; zero or negative
// means the default.
func (o RecommendationOptions) normalizeLimit(limit int) int {
	if limit <= 0 {
		return o.DefaultLimit
	}
	if limit > o.MaxLimit {
		return o.MaxLimit
	}
	return limit
}

type Stats struct {
	Total          int
	ExcellentCount int
	GoodCount      int
	AverageScore   float64
	TotalGaps      int
}

type Recommendation struct {
	matcher
	candidates CandidateSource
	narrator   MatchNarrator
	opts       RecommendationOptions
}

// NewRecommendationUsecase wires the orchestrator. narrator may be nil, in
// which case every result carries the deterministic recommendation text.
func NewRecommendationUsecase(
	profiles ProfileBuilder,
	skills skill.Lister,
	candidates CandidateSource,
	courses course.Store,
	narrator MatchNarrator,
	opts RecommendationOptions,
	logger *slog.Logger,
) *Recommendation {
	return &Recommendation{
		matcher:    newMatcher(profiles, skills, courses, logger),
		candidates: candidates,
		narrator:   narrator,
		opts:       opts.withDefaults(),
	}
}

func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]matching.MatchResult, error) {
	limit = u.opts.normalizeLimit(limit)

	p, results, err := u.rank(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(results) > limit {
		results = results[:limit]
	}
	if err := u.attachNarratives(ctx, p, results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetRecommendationStats summarizes an unlimited run. Narratives are not
// generated for it.
func (u *Recommendation) GetRecommendationStats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	_, results, err := u.rank(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(results), nil
}

func (u *Recommendation) rank(ctx context.Context, userID uuid.UUID) (profile.UserProfile, []matching.MatchResult, error) {
	p, catalog, err := u.loadProfile(ctx, userID)
	if err != nil {
		return profile.UserProfile{}, nil, err
	}
	if !p.HasSkills() {
		return p, []matching.MatchResult{}, nil
	}

	candidates, err := u.activeCandidates(ctx, u.candidates)
	if err != nil {
		return profile.UserProfile{}, nil, err
	}
	results, err := u.scoreAll(ctx, p, catalog, candidates)
	if err != nil {
		return profile.UserProfile{}, nil, err
	}
	return p, results, nil
}

// attachNarratives replaces the fallback text of each result with generated
// prose. Narrative failures keep the fallback; only cancellation aborts.
func (u *Recommendation) attachNarratives(ctx context.Context, p profile.UserProfile, results []matching.MatchResult) error {
	if u.narrator == nil || len(results) == 0 {
		return nil
	}

	pool := workerpool.New(u.opts.Workers, len(results))
	pool.SetRateLimit(u.opts.NarrativeRPS)
	out := pool.Run(ctx)

	for i := range results {
		pool.Submit(func(ctx context.Context) error {
			text, err := u.narrator.GenerateMatchNarrative(ctx, p, results[i])
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				u.logger.Warn("match narrative failed, using fallback",
					slog.Int64("candidate_id", results[i].Candidate.ID),
					slog.Any("error", err),
				)
				return nil
			}
			if text != "" {
				results[i].Recommendation = text
			}
			return nil
		})
	}
	pool.Close()

	if err := workerpool.Drain(out); err != nil {
		return err
	}
	return ctx.Err()
}

// ComputeStats reduces a result list. Excellent is a score of at least 80,
// good is 60 to 79; the average is rounded to one decimal.
func ComputeStats(results []matching.MatchResult) Stats {
	s := Stats{Total: len(results)}
	if len(results) == 0 {
		return s
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
		switch {
		case r.Score >= 80:
			s.ExcellentCount++
		case r.Score >= 60:
			s.GoodCount++
		}
		s.TotalGaps += len(r.MissingSkills)
	}
	s.AverageScore = math.Round(float64(sum)/float64(len(results))*10) / 10
	return s
}
