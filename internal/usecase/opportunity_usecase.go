package usecase

import (
	"context"
	"log/slog"
	"strings"

	"career-guide/internal/domain/course"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
	"career-guide/internal/narrative"

	"github.com/google/uuid"
)

type OpportunityRecommendation struct {
	Explanation   string
	Opportunities []matching.MatchResult
	TotalMatched  int
	Language      narrative.Language
}

type OpportunityUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int) (OpportunityRecommendation, error)
}

type Opportunity struct {
	matcher
	opportunities CandidateSource
	narrator      OpportunityNarrator
	opts          RecommendationOptions
}

func NewOpportunityUsecase(
	profiles ProfileBuilder,
	skills skill.Lister,
	opportunities CandidateSource,
	courses course.Store,
	narrator OpportunityNarrator,
	opts RecommendationOptions,
	logger *slog.Logger,
) *Opportunity {
	return &Opportunity{
		matcher:       newMatcher(profiles, skills, courses, logger),
		opportunities: opportunities,
		narrator:      narrator,
		opts:          opts.withDefaults(),
	}
}

// Recommend ranks the local opportunities relevant to the user and explains
// them in one narrative. Opportunities sharing the user's first career
// interest as track, or at least one skill, are relevant; when none are, every
// active opportunity is listed.
func (u *Opportunity) Recommend(ctx context.Context, userID uuid.UUID, limit int) (OpportunityRecommendation, error) {
	limit = u.opts.normalizeLimit(limit)

	p, catalog, err := u.loadProfile(ctx, userID)
	if err != nil {
		return OpportunityRecommendation{}, err
	}
	lang := profileLanguage(p)

	candidates, err := u.activeCandidates(ctx, u.opportunities)
	if err != nil {
		return OpportunityRecommendation{}, err
	}
	if len(candidates) == 0 {
		return OpportunityRecommendation{
			Explanation:   narrative.NoOpportunitiesMessage,
			Opportunities: []matching.MatchResult{},
			Language:      lang,
		}, nil
	}

	results, err := u.scoreAll(ctx, p, catalog, candidates)
	if err != nil {
		return OpportunityRecommendation{}, err
	}
	results = relevantOpportunities(p, results)
	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	explanation := narrative.FallbackOpportunityNarrative(p, results)
	if u.narrator != nil {
		text, err := u.narrator.GenerateOpportunityNarrative(ctx, p, results, lang)
		if err != nil {
			if ctx.Err() != nil {
				return OpportunityRecommendation{}, ctx.Err()
			}
			u.logger.Warn("opportunity narrative failed, using fallback", slog.Any("error", err))
		} else if text != "" {
			explanation = text
		}
	}

	return OpportunityRecommendation{
		Explanation:   explanation,
		Opportunities: results,
		TotalMatched:  total,
		Language:      lang,
	}, nil
}

func relevantOpportunities(p profile.UserProfile, results []matching.MatchResult) []matching.MatchResult {
	track := ""
	if len(p.CareerInterests) > 0 {
		track = strings.ToLower(strings.TrimSpace(p.CareerInterests[0]))
	}
	userKeys := normalizedNames(p.SkillNames)

	out := make([]matching.MatchResult, 0, len(results))
	for _, r := range results {
		target := strings.ToLower(strings.TrimSpace(r.Candidate.TargetTrack))
		trackMatch := track != "" && target != "" &&
			(strings.Contains(target, track) || strings.Contains(track, target))
		if trackMatch || sharesSkill(userKeys, r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return results
	}
	return out
}

// sharesSkill reports whether a user skill and a required skill contain one
// another, so "Python" is relevant to "Python Programming". Scoring still
// uses exact names.
func sharesSkill(userKeys []string, r matching.MatchResult) bool {
	if len(r.MatchingSkills) > 0 {
		return true
	}
	for _, req := range normalizedNames(r.MissingSkills) {
		for _, u := range userKeys {
			if strings.Contains(req, u) || strings.Contains(u, req) {
				return true
			}
		}
	}
	return false
}

func normalizedNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if k := skill.NormalizeName(n); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// profileLanguage guesses the reply language from the user's own writing.
func profileLanguage(p profile.UserProfile) narrative.Language {
	sample := p.ExperienceDescription
	if sample == "" && p.CV != nil {
		sample = p.CV.PersonalSummary
	}
	r := []rune(sample)
	if len(r) > 100 {
		r = r[:100]
	}
	return narrative.DetectLanguage(string(r))
}
