package usecase

import (
	"context"

	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
	"career-guide/internal/narrative"

	"github.com/google/uuid"
)

// CandidateSource lists the active jobs or opportunities in a stable order.
type CandidateSource interface {
	ListActiveCandidates(ctx context.Context) ([]matching.Candidate, error)
}

type ProfileBuilder interface {
	Build(ctx context.Context, userID uuid.UUID, catalog *skill.Catalog) (profile.UserProfile, error)
}

type MatchNarrator interface {
	GenerateMatchNarrative(ctx context.Context, p profile.UserProfile, r matching.MatchResult) (string, error)
}

type OpportunityNarrator interface {
	GenerateOpportunityNarrative(ctx context.Context, p profile.UserProfile, ranked []matching.MatchResult, lang narrative.Language) (string, error)
}

type CareerAdvisor interface {
	Reply(ctx context.Context, p profile.UserProfile, message string, lang narrative.Language) (string, error)
	GenerateRoadmap(ctx context.Context, p profile.UserProfile, req narrative.RoadmapRequest) (narrative.Roadmap, error)
}

type CVWriter interface {
	GenerateSummary(ctx context.Context, p profile.UserProfile) (string, error)
	ImproveBullets(ctx context.Context, exp profile.ExperienceEntry, targetRole string) ([]string, error)
	GenerateKeywords(ctx context.Context, p profile.UserProfile, targetRole string) ([]string, error)
}
