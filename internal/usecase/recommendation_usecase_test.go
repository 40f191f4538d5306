package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"career-guide/internal/domain/course"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
	"career-guide/internal/narrative"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	p   profile.UserProfile
	err error
}

func (f fakeProfiles) Build(_ context.Context, userID uuid.UUID, _ *skill.Catalog) (profile.UserProfile, error) {
	p := f.p
	p.UserID = userID
	return p, f.err
}

type fakeSkills struct {
	err error
}

func (f fakeSkills) ListAll(context.Context) ([]skill.Skill, error) {
	return []skill.Skill{{ID: 1, Name: "Python", Category: "Programming"}}, f.err
}

type fakeCandidates struct {
	items []matching.Candidate
	err   error
	calls atomic.Int32
}

func (f *fakeCandidates) ListActiveCandidates(context.Context) ([]matching.Candidate, error) {
	f.calls.Add(1)
	return f.items, f.err
}

type fakeCourses struct {
	items []course.Course
	err   error
}

func (f fakeCourses) ListActiveCourses(context.Context) ([]course.Course, error) {
	return f.items, f.err
}

type fakeNarrator struct {
	err   error
	calls atomic.Int32
}

func (f *fakeNarrator) GenerateMatchNarrative(_ context.Context, _ profile.UserProfile, r matching.MatchResult) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("narrative for %d", r.Candidate.ID), nil
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var userSkills = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

func candidate(id int64, required ...string) matching.Candidate {
	return matching.Candidate{
		ID:             id,
		Kind:           matching.KindJob,
		Title:          fmt.Sprintf("Job %d", id),
		Active:         true,
		RequiredSkills: matching.RequiredSkills{Names: required},
	}
}

func newRecommendation(candidates *fakeCandidates, narrator MatchNarrator, opts RecommendationOptions) *Recommendation {
	var n MatchNarrator
	if narrator != nil {
		n = narrator
	}
	return NewRecommendationUsecase(
		fakeProfiles{p: profile.UserProfile{SkillNames: userSkills}},
		fakeSkills{},
		candidates,
		fakeCourses{items: []course.Course{{ID: 1, Title: "Learn X1"}}},
		n,
		opts,
		quiet(),
	)
}

func scores(results []matching.MatchResult) []int {
	out := make([]int, 0, len(results))
	for _, r := range results {
		out = append(out, r.Score)
	}
	return out
}

func TestGetRecommendations_EmptySkillsReturnsEmpty(t *testing.T) {
	cands := &fakeCandidates{items: []matching.Candidate{candidate(1, "A")}}
	uc := NewRecommendationUsecase(fakeProfiles{}, fakeSkills{}, cands, fakeCourses{}, nil, RecommendationOptions{}, quiet())

	got, err := uc.GetRecommendations(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, int32(0), cands.calls.Load())
}

func TestGetRecommendations_OrdersByScore(t *testing.T) {
	cands := &fakeCandidates{items: []matching.Candidate{
		candidate(1, "A", "B", "X1", "X2", "X3"),
		candidate(2, "A", "B", "C", "D", "E", "F", "G", "H", "I", "X1"),
		candidate(3, "A", "B", "C", "X1", "X2"),
	}}
	got, err := newRecommendation(cands, nil, RecommendationOptions{}).GetRecommendations(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Equal(t, []int{90, 60, 40}, scores(got))
	assert.Equal(t, int64(2), got[0].Candidate.ID)
}

func TestGetRecommendations_TiesKeepFetchOrder(t *testing.T) {
	cands := &fakeCandidates{items: []matching.Candidate{
		candidate(7, "A", "B", "C", "D", "X1"),
		candidate(3, "E", "F", "G", "H", "X2"),
	}}
	got, err := newRecommendation(cands, nil, RecommendationOptions{}).GetRecommendations(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int{80, 80}, scores(got))
	assert.Equal(t, int64(7), got[0].Candidate.ID)
	assert.Equal(t, int64(3), got[1].Candidate.ID)
}

func TestGetRecommendations_SkipsInactiveAndHandlesNoCandidates(t *testing.T) {
	inactive := candidate(1, "A")
	inactive.Active = false
	cands := &fakeCandidates{items: []matching.Candidate{inactive}}

	got, err := newRecommendation(cands, nil, RecommendationOptions{}).GetRecommendations(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetRecommendations_NarrativeFailureUsesFallback(t *testing.T) {
	items := make([]matching.Candidate, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, candidate(int64(i+1), "A", "X1"))
	}
	narrator := &fakeNarrator{err: errors.New("model down")}
	uc := newRecommendation(&fakeCandidates{items: items}, narrator, RecommendationOptions{Workers: 3})

	got, err := uc.GetRecommendations(context.Background(), uuid.New(), 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for _, r := range got {
		assert.Equal(t, 50, r.Score)
		assert.NotEmpty(t, r.Recommendation)
		assert.Equal(t, narrative.FallbackMatchNarrative(r), r.Recommendation)
	}
	assert.Equal(t, int32(5), narrator.calls.Load())
}

func TestGetRecommendations_NarrativeAttached(t *testing.T) {
	narrator := &fakeNarrator{}
	cands := &fakeCandidates{items: []matching.Candidate{candidate(4, "A"), candidate(5, "X1")}}

	got, err := newRecommendation(cands, narrator, RecommendationOptions{}).GetRecommendations(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "narrative for 4", got[0].Recommendation)
	assert.Equal(t, "narrative for 5", got[1].Recommendation)
}

func TestGetRecommendations_Idempotent(t *testing.T) {
	cands := &fakeCandidates{items: []matching.Candidate{
		candidate(1, "A", "X1"),
		candidate(2, "A", "B", "X2"),
		candidate(3),
	}}
	uc := newRecommendation(cands, &fakeNarrator{err: errors.New("down")}, RecommendationOptions{})

	first, err := uc.GetRecommendations(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	second, err := uc.GetRecommendations(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetRecommendations_Limits(t *testing.T) {
	items := make([]matching.Candidate, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, candidate(int64(i+1), "A"))
	}
	uc := newRecommendation(&fakeCandidates{items: items}, nil, RecommendationOptions{DefaultLimit: 10, MaxLimit: 11})

	def, err := uc.GetRecommendations(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Len(t, def, 10)

	capped, err := uc.GetRecommendations(context.Background(), uuid.New(), 100)
	require.NoError(t, err)
	assert.Len(t, capped, 11)
}

func TestGetRecommendations_Errors(t *testing.T) {
	ctx := context.Background()
	cands := &fakeCandidates{items: []matching.Candidate{candidate(1, "A")}}

	_, err := newRecommendation(cands, nil, RecommendationOptions{}).GetRecommendations(ctx, uuid.Nil, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)

	notFound := NewRecommendationUsecase(fakeProfiles{err: profile.ErrUserNotFound}, fakeSkills{}, cands, fakeCourses{}, nil, RecommendationOptions{}, quiet())
	_, err = notFound.GetRecommendations(ctx, uuid.New(), 10)
	assert.ErrorIs(t, err, ErrUserNotFound)

	storeDown := newRecommendation(&fakeCandidates{err: errors.New("conn refused")}, nil, RecommendationOptions{})
	_, err = storeDown.GetRecommendations(ctx, uuid.New(), 10)
	assert.ErrorIs(t, err, ErrInternal)

	skillsDown := NewRecommendationUsecase(fakeProfiles{}, fakeSkills{err: errors.New("timeout")}, cands, fakeCourses{}, nil, RecommendationOptions{}, quiet())
	_, err = skillsDown.GetRecommendations(ctx, uuid.New(), 10)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetRecommendationStats(t *testing.T) {
	narrator := &fakeNarrator{}
	cands := &fakeCandidates{items: []matching.Candidate{
		candidate(1, "A", "B", "C", "D", "X1"),
		candidate(2, "A", "X1"),
	}}
	stats, err := newRecommendation(cands, narrator, RecommendationOptions{}).GetRecommendationStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, ExcellentCount: 1, AverageScore: 65, TotalGaps: 2}, stats)
	assert.Equal(t, int32(0), narrator.calls.Load())
}

func TestComputeStats(t *testing.T) {
	results := make([]matching.MatchResult, 0, 5)
	for _, s := range []int{85, 90, 55, 62, 30} {
		results = append(results, matching.MatchResult{Score: s, MissingSkills: []string{"x"}})
	}
	stats := ComputeStats(results)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.ExcellentCount)
	assert.Equal(t, 1, stats.GoodCount)
	assert.Equal(t, 64.4, stats.AverageScore)
	assert.Equal(t, 5, stats.TotalGaps)

	assert.Equal(t, Stats{}, ComputeStats(nil))
}
