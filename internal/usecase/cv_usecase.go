package usecase

import (
	"context"
	"log/slog"
	"strings"

	"career-guide/internal/domain/cv"
	"career-guide/internal/narrative"

	"github.com/google/uuid"
)

type BulletSuggestion struct {
	ExperienceTitle string
	Bullets         []string
}

type CVAssistantUsecase interface {
	Analyze(ctx context.Context, userID uuid.UUID) (cv.Completeness, error)
	Keywords(ctx context.Context, userID uuid.UUID, targetRole string) ([]string, error)
	Summary(ctx context.Context, userID uuid.UUID) (string, error)
	ImproveBullets(ctx context.Context, userID uuid.UUID, experienceIndex int, targetRole string) (BulletSuggestion, error)
}

type CVAssistant struct {
	profiles ProfileBuilder
	writer   CVWriter
	logger   *slog.Logger
}

// NewCVAssistantUsecase builds the CV assistant. A nil writer serves the
// deterministic summary and keyword fallbacks through a client-less
// generator.
func NewCVAssistantUsecase(profiles ProfileBuilder, writer CVWriter, logger *slog.Logger) *CVAssistant {
	if logger == nil {
		logger = slog.Default()
	}
	if writer == nil {
		writer = narrative.NewGenerator(narrative.Config{}, nil, nil, logger)
	}
	return &CVAssistant{profiles: profiles, writer: writer, logger: logger}
}

// Analyze scores the completeness of the user's CV. Skills count from the
// profile, since the CV stores none of its own.
func (u *CVAssistant) Analyze(ctx context.Context, userID uuid.UUID) (cv.Completeness, error) {
	if userID == uuid.Nil {
		return cv.Completeness{}, ErrUnauthorized
	}
	p, err := buildProfile(ctx, u.profiles, u.logger, userID)
	if err != nil {
		return cv.Completeness{}, err
	}
	return cv.Analyze(p.CV, len(p.SkillNames)), nil
}

func (u *CVAssistant) Keywords(ctx context.Context, userID uuid.UUID, targetRole string) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	p, err := buildProfile(ctx, u.profiles, u.logger, userID)
	if err != nil {
		return nil, err
	}
	return u.writer.GenerateKeywords(ctx, p, strings.TrimSpace(targetRole))
}

func (u *CVAssistant) Summary(ctx context.Context, userID uuid.UUID) (string, error) {
	if userID == uuid.Nil {
		return "", ErrUnauthorized
	}
	p, err := buildProfile(ctx, u.profiles, u.logger, userID)
	if err != nil {
		return "", err
	}
	return u.writer.GenerateSummary(ctx, p)
}

// ImproveBullets rewrites the experience at experienceIndex of the user's
// CV. An index outside the stored experiences is invalid input.
func (u *CVAssistant) ImproveBullets(ctx context.Context, userID uuid.UUID, experienceIndex int, targetRole string) (BulletSuggestion, error) {
	if userID == uuid.Nil {
		return BulletSuggestion{}, ErrUnauthorized
	}
	p, err := buildProfile(ctx, u.profiles, u.logger, userID)
	if err != nil {
		return BulletSuggestion{}, err
	}
	if p.CV == nil || experienceIndex < 0 || experienceIndex >= len(p.CV.Experiences) {
		return BulletSuggestion{}, ErrInvalidInput
	}

	exp := p.CV.Experiences[experienceIndex]
	bullets, err := u.writer.ImproveBullets(ctx, exp, strings.TrimSpace(targetRole))
	if err != nil {
		return BulletSuggestion{}, err
	}
	title := exp.Title
	if strings.TrimSpace(title) == "" {
		title = "Position"
	}
	return BulletSuggestion{ExperienceTitle: title, Bullets: bullets}, nil
}
