package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"career-guide/internal/domain/course"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
	"career-guide/internal/narrative"

	"github.com/google/uuid"
)

// matcher holds the stages shared by every recommendation flow: profile
// loading, scoring, gap analysis and ordering.
type matcher struct {
	profiles ProfileBuilder
	skills   skill.Lister
	courses  course.Store
	scorer   *matching.Scorer
	logger   *slog.Logger
}

func newMatcher(profiles ProfileBuilder, skills skill.Lister, courses course.Store, logger *slog.Logger) matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return matcher{
		profiles: profiles,
		skills:   skills,
		courses:  courses,
		scorer:   matching.NewScorer(logger),
		logger:   logger,
	}
}

func (m matcher) loadProfile(ctx context.Context, userID uuid.UUID) (profile.UserProfile, *skill.Catalog, error) {
	if userID == uuid.Nil {
		return profile.UserProfile{}, nil, ErrUnauthorized
	}

	all, err := m.skills.ListAll(ctx)
	if err != nil {
		m.logger.Error("list skills failed", slog.Any("error", err))
		return profile.UserProfile{}, nil, ErrInternal
	}
	catalog := skill.NewCatalog(all)

	p, err := m.profiles.Build(ctx, userID, catalog)
	if err != nil {
		if errors.Is(err, profile.ErrUserNotFound) {
			return profile.UserProfile{}, nil, ErrUserNotFound
		}
		m.logger.Error("build profile failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return profile.UserProfile{}, nil, ErrInternal
	}
	return p, catalog, nil
}

func (m matcher) activeCandidates(ctx context.Context, src CandidateSource) ([]matching.Candidate, error) {
	all, err := src.ListActiveCandidates(ctx)
	if err != nil {
		m.logger.Error("list candidates failed", slog.Any("error", err))
		return nil, ErrInternal
	}
	out := make([]matching.Candidate, 0, len(all))
	for _, c := range all {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

// scoreAll scores every candidate, attaches gaps, courses and the fallback
// narrative, and orders the results by score with fetch order kept on ties.
func (m matcher) scoreAll(ctx context.Context, p profile.UserProfile, catalog *skill.Catalog, candidates []matching.Candidate) ([]matching.MatchResult, error) {
	if len(candidates) == 0 {
		return []matching.MatchResult{}, nil
	}

	courses, err := m.courses.ListActiveCourses(ctx)
	if err != nil {
		m.logger.Error("list courses failed", slog.Any("error", err))
		return nil, ErrInternal
	}

	gaps := matching.NewGapAnalyzer(catalog)
	results := make([]matching.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		r := m.scorer.Score(p, c, catalog)
		r.SkillGaps, r.RecommendedCourses = gaps.Analyze(r.MissingSkills, courses)
		r.Recommendation = narrative.FallbackMatchNarrative(r)
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}
