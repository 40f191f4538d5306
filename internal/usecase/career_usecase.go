package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"career-guide/internal/domain/profile"
	"career-guide/internal/guardrail"
	"career-guide/internal/narrative"

	"github.com/google/uuid"
)

type ChatReply struct {
	Reply    string
	Language narrative.Language
	Blocked  bool
}

type CareerUsecase interface {
	Ask(ctx context.Context, userID uuid.UUID, message string) (ChatReply, error)
	Roadmap(ctx context.Context, userID uuid.UUID, req narrative.RoadmapRequest) (narrative.Roadmap, error)
}

type Career struct {
	profiles ProfileBuilder
	advisor  CareerAdvisor
	logger   *slog.Logger
}

func NewCareerUsecase(profiles ProfileBuilder, advisor CareerAdvisor, logger *slog.Logger) *Career {
	if logger == nil {
		logger = slog.Default()
	}
	return &Career{profiles: profiles, advisor: advisor, logger: logger}
}

// Ask answers a career question. Messages rejected by the guardrail get the
// safe fallback reply without touching the profile or the model.
func (u *Career) Ask(ctx context.Context, userID uuid.UUID, message string) (ChatReply, error) {
	if userID == uuid.Nil {
		return ChatReply{}, ErrUnauthorized
	}
	if strings.TrimSpace(message) == "" {
		return ChatReply{}, ErrInvalidInput
	}

	verdict := guardrail.Classify(message)
	if !verdict.Allowed {
		u.logger.Info("careerbot message blocked",
			slog.String("user_id", userID.String()),
			slog.String("reason", verdict.Reason),
		)
		return ChatReply{
			Reply:    guardrail.SafeFallbackResponse(),
			Language: narrative.LanguageEnglish,
			Blocked:  true,
		}, nil
	}

	p, err := u.profile(ctx, userID)
	if err != nil {
		return ChatReply{}, err
	}
	lang := narrative.DetectLanguage(verdict.Sanitized)
	reply, err := u.advisor.Reply(ctx, p, verdict.Sanitized, lang)
	if err != nil {
		return ChatReply{}, err
	}
	return ChatReply{Reply: reply, Language: lang}, nil
}

func (u *Career) Roadmap(ctx context.Context, userID uuid.UUID, req narrative.RoadmapRequest) (narrative.Roadmap, error) {
	if userID == uuid.Nil {
		return narrative.Roadmap{}, ErrUnauthorized
	}
	req.TargetRole = strings.TrimSpace(req.TargetRole)
	req.Timeframe = strings.TrimSpace(req.Timeframe)
	if req.TargetRole == "" || req.Timeframe == "" || req.WeeklyHours < 0 {
		return narrative.Roadmap{}, ErrInvalidInput
	}

	p, err := u.profile(ctx, userID)
	if err != nil {
		return narrative.Roadmap{}, err
	}
	return u.advisor.GenerateRoadmap(ctx, p, req)
}

func (u *Career) profile(ctx context.Context, userID uuid.UUID) (profile.UserProfile, error) {
	return buildProfile(ctx, u.profiles, u.logger, userID)
}

// buildProfile loads a profile without a skill catalog, mapping store
// failures to usecase errors.
func buildProfile(ctx context.Context, profiles ProfileBuilder, logger *slog.Logger, userID uuid.UUID) (profile.UserProfile, error) {
	p, err := profiles.Build(ctx, userID, nil)
	if err != nil {
		if errors.Is(err, profile.ErrUserNotFound) {
			return profile.UserProfile{}, ErrUserNotFound
		}
		logger.Error("build profile failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return profile.UserProfile{}, ErrInternal
	}
	return p, nil
}
