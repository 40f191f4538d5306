package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-guide/internal/domain/cv"
	"career-guide/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	bulletsFor []profile.ExperienceEntry
	roles      []string
}

func (f *fakeWriter) GenerateSummary(_ context.Context, p profile.UserProfile) (string, error) {
	return "summary for " + p.UserID.String(), nil
}

func (f *fakeWriter) ImproveBullets(_ context.Context, exp profile.ExperienceEntry, targetRole string) ([]string, error) {
	f.bulletsFor = append(f.bulletsFor, exp)
	f.roles = append(f.roles, targetRole)
	return []string{"Led " + exp.Title}, nil
}

func (f *fakeWriter) GenerateKeywords(_ context.Context, p profile.UserProfile, targetRole string) ([]string, error) {
	f.roles = append(f.roles, targetRole)
	return append([]string{}, p.SkillNames...), nil
}

func cvUser() profile.UserProfile {
	return profile.UserProfile{
		SkillNames: []string{"SQL", "Excel", "Python"},
		CV: &profile.CV{
			PersonalSummary: strings.Repeat("x", 60),
			Experiences: []profile.ExperienceEntry{
				{Title: "Intern", Company: "Acme"},
				{Company: "Shop"},
			},
		},
	}
}

func TestCVAnalyze(t *testing.T) {
	uc := NewCVAssistantUsecase(fakeProfiles{p: cvUser()}, &fakeWriter{}, quiet())

	got, err := uc.Analyze(context.Background(), uuid.New())
	require.NoError(t, err)
	// summary 20 + experience 25 + skills 15
	assert.Equal(t, 60, got.Score)
	assert.Equal(t, cv.MaxScore, got.MaxScore)
}

func TestCVKeywordsAndSummary(t *testing.T) {
	writer := &fakeWriter{}
	uc := NewCVAssistantUsecase(fakeProfiles{p: cvUser()}, writer, quiet())
	id := uuid.New()

	kw, err := uc.Keywords(context.Background(), id, "  Data Analyst ")
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL", "Excel", "Python"}, kw)
	assert.Equal(t, []string{"Data Analyst"}, writer.roles)

	summary, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "summary for "+id.String(), summary)
}

func TestCVImproveBullets(t *testing.T) {
	writer := &fakeWriter{}
	uc := NewCVAssistantUsecase(fakeProfiles{p: cvUser()}, writer, quiet())

	got, err := uc.ImproveBullets(context.Background(), uuid.New(), 0, "Analyst")
	require.NoError(t, err)
	assert.Equal(t, BulletSuggestion{ExperienceTitle: "Intern", Bullets: []string{"Led Intern"}}, got)

	got, err = uc.ImproveBullets(context.Background(), uuid.New(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, "Position", got.ExperienceTitle)
	assert.Len(t, writer.bulletsFor, 2)
}

func TestCVImproveBullets_InvalidIndex(t *testing.T) {
	writer := &fakeWriter{}
	uc := NewCVAssistantUsecase(fakeProfiles{p: cvUser()}, writer, quiet())
	for _, idx := range []int{-1, 2} {
		_, err := uc.ImproveBullets(context.Background(), uuid.New(), idx, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	noCV := NewCVAssistantUsecase(fakeProfiles{}, writer, quiet())
	_, err := noCV.ImproveBullets(context.Background(), uuid.New(), 0, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, writer.bulletsFor)
}

func TestCVAssistant_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewCVAssistantUsecase(fakeProfiles{}, &fakeWriter{}, quiet()).Analyze(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = NewCVAssistantUsecase(fakeProfiles{err: profile.ErrUserNotFound}, &fakeWriter{}, quiet()).Summary(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = NewCVAssistantUsecase(fakeProfiles{err: errors.New("db down")}, &fakeWriter{}, quiet()).Keywords(ctx, uuid.New(), "")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCVAssistant_NilWriterUsesFallbacks(t *testing.T) {
	uc := NewCVAssistantUsecase(fakeProfiles{p: cvUser()}, nil, quiet())

	kw, err := uc.Keywords(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL", "Excel", "Python"}, kw[:3])

	summary, err := uc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
}
