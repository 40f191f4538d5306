package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"career-guide/internal/delivery/http/handler"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/delivery/http/routes"
	"career-guide/internal/domain/cv"
	"career-guide/internal/domain/matching"
	"career-guide/internal/narrative"
	"career-guide/internal/pkg/jwt"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-access-secret"

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fakeRecommendations struct {
	results   []matching.MatchResult
	stats     usecase.Stats
	err       error
	lastLimit int
}

func (f *fakeRecommendations) GetRecommendations(_ context.Context, _ uuid.UUID, limit int) ([]matching.MatchResult, error) {
	f.lastLimit = limit
	return f.results, f.err
}

func (f *fakeRecommendations) GetRecommendationStats(context.Context, uuid.UUID) (usecase.Stats, error) {
	return f.stats, f.err
}

type fakeOpportunities struct {
	rec usecase.OpportunityRecommendation
}

func (f fakeOpportunities) Recommend(context.Context, uuid.UUID, int) (usecase.OpportunityRecommendation, error) {
	return f.rec, nil
}

type fakeCareer struct{}

func (fakeCareer) Ask(_ context.Context, _ uuid.UUID, message string) (usecase.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return usecase.ChatReply{}, usecase.ErrInvalidInput
	}
	return usecase.ChatReply{Reply: "Learn SQL.", Language: narrative.LanguageEnglish}, nil
}

func (fakeCareer) Roadmap(_ context.Context, _ uuid.UUID, req narrative.RoadmapRequest) (narrative.Roadmap, error) {
	if req.TargetRole == "" {
		return narrative.Roadmap{}, usecase.ErrInvalidInput
	}
	return narrative.Roadmap{Visual: "ROADMAP: " + req.TargetRole, Description: "steps"}, nil
}

type fakeCV struct{}

func (fakeCV) Analyze(context.Context, uuid.UUID) (cv.Completeness, error) {
	return cv.Completeness{
		Score:      80,
		MaxScore:   cv.MaxScore,
		Percentage: 80,
		Assessment: "Excellent!",
		Suggestions: []cv.Suggestion{
			{Category: "Projects", Priority: cv.PriorityMedium, Suggestion: "Add more projects."},
		},
	}, nil
}

func (fakeCV) Keywords(_ context.Context, _ uuid.UUID, targetRole string) ([]string, error) {
	return []string{"SQL", targetRole}, nil
}

func (fakeCV) Summary(context.Context, uuid.UUID) (string, error) {
	return "Analyst with dashboard experience.", nil
}

func (fakeCV) ImproveBullets(_ context.Context, _ uuid.UUID, idx int, _ string) (usecase.BulletSuggestion, error) {
	if idx != 0 {
		return usecase.BulletSuggestion{}, usecase.ErrInvalidInput
	}
	return usecase.BulletSuggestion{ExperienceTitle: "Intern", Bullets: []string{"Built dashboards"}}, nil
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newApp(rec *fakeRecommendations, opp fakeOpportunities, dbErr error) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := fiber.New()
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	reg := &routes.Registry{
		Health:         handler.NewHealthHandler(pinger{err: dbErr}, nil),
		Recommendation: handler.NewRecommendationHandler(rec),
		Opportunity:    handler.NewOpportunityHandler(opp),
		Career:         handler.NewCareerHandler(fakeCareer{}),
		CVAssistant:    handler.NewCVAssistantHandler(fakeCV{}),
		Auth:           middleware.NewAuthMiddleware(jwt.NewHMACVerifier(secret)).Middleware(),
	}
	reg.Register(app)
	return app
}

func token(t *testing.T, typ string) string {
	t.Helper()
	id := uuid.New()
	s, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwt.Claims{
		UserID:    id,
		TokenType: typ,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   id.String(),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func do(t *testing.T, app *fiber.App, method, path, body, tok string) (int, semanticResponse) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, resp.StatusCode, out.Status)
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	status, body := do(t, newApp(&fakeRecommendations{}, fakeOpportunities{}, nil), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"database":"up","cache":"disabled"}`, string(body.Data))

	status, _ = do(t, newApp(&fakeRecommendations{}, fakeOpportunities{}, errors.New("down")), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestAuthRequired(t *testing.T) {
	app := newApp(&fakeRecommendations{}, fakeOpportunities{}, nil)

	status, body := do(t, app, http.MethodGet, "/api/v1/jobs/recommendations", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body.Message)

	status, body = do(t, app, http.MethodGet, "/api/v1/jobs/recommendations", "", token(t, jwt.TokenTypeRefresh))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body.Message)
}

func TestGetRecommendations(t *testing.T) {
	rec := &fakeRecommendations{results: []matching.MatchResult{{
		Candidate:      matching.Candidate{ID: 3, Kind: matching.KindJob, Title: "Data Analyst", Organization: "Acme"},
		Score:          67,
		Level:          matching.LevelGood,
		MatchingSkills: []string{"SQL", "Tableau"},
		MissingSkills:  []string{"Python"},
		Recommendation: "You match 2 out of 3 required skills.",
	}}}
	app := newApp(rec, fakeOpportunities{}, nil)

	status, body := do(t, app, http.MethodGet, "/api/v1/jobs/recommendations?limit=5", "", token(t, jwt.TokenTypeAccess))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, rec.lastLimit)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, float64(67), items[0]["match_score"])
	assert.Equal(t, "good", items[0]["match_level"])
	assert.Equal(t, []any{"SQL", "Tableau", "Python"}, items[0]["job"].(map[string]any)["required_skills"])
	assert.Equal(t, []any{}, items[0]["skill_gaps"])

	do(t, app, http.MethodGet, "/api/v1/jobs/recommendations?limit=abc", "", token(t, jwt.TokenTypeAccess))
	assert.Equal(t, 0, rec.lastLimit)
}

func TestGetRecommendations_ErrorMapping(t *testing.T) {
	tok := token(t, jwt.TokenTypeAccess)
	for _, tc := range []struct {
		err    error
		status int
	}{
		{usecase.ErrUserNotFound, http.StatusNotFound},
		{usecase.ErrInternal, http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	} {
		status, body := do(t, newApp(&fakeRecommendations{err: tc.err}, fakeOpportunities{}, nil), http.MethodGet, "/api/v1/jobs/recommendations", "", tok)
		assert.Equal(t, tc.status, status)
		if status == http.StatusInternalServerError {
			assert.Equal(t, "internal server error", body.Message)
		}
	}
}

func TestGetStats(t *testing.T) {
	rec := &fakeRecommendations{stats: usecase.Stats{Total: 5, ExcellentCount: 2, GoodCount: 1, AverageScore: 64.4, TotalGaps: 7}}
	status, body := do(t, newApp(rec, fakeOpportunities{}, nil), http.MethodGet, "/api/v1/jobs/recommendations/stats", "", token(t, jwt.TokenTypeAccess))
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"total_jobs":5,"excellent_matches":2,"good_matches":1,"average_match_score":64.4,"total_skill_gaps":7}`, string(body.Data))
}

func TestOpportunities(t *testing.T) {
	opp := fakeOpportunities{rec: usecase.OpportunityRecommendation{
		Explanation:   narrative.NoOpportunitiesMessage,
		Opportunities: []matching.MatchResult{},
		Language:      narrative.LanguageEnglish,
	}}
	status, body := do(t, newApp(&fakeRecommendations{}, opp, nil), http.MethodGet, "/api/v1/opportunities/recommendations", "", token(t, jwt.TokenTypeAccess))
	require.Equal(t, http.StatusOK, status)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &out))
	assert.Equal(t, narrative.NoOpportunitiesMessage, out["explanation"])
	assert.Equal(t, []any{}, out["opportunities"])
	assert.Equal(t, "en", out["language"])
}

func TestCareerbotAndRoadmap(t *testing.T) {
	app := newApp(&fakeRecommendations{}, fakeOpportunities{}, nil)
	tok := token(t, jwt.TokenTypeAccess)

	status, body := do(t, app, http.MethodPost, "/api/v1/careerbot/messages", `{"message":"what next?"}`, tok)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"reply":"Learn SQL.","language":"en","blocked":false}`, string(body.Data))

	status, _ = do(t, app, http.MethodPost, "/api/v1/careerbot/messages", `{"message":"  "}`, tok)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodPost, "/api/v1/roadmaps", `{"target_role":"Data Analyst","timeframe":"3 months","weekly_hours":8}`, tok)
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(body.Data), `"roadmap_visual":"ROADMAP: Data Analyst"`)

	status, _ = do(t, app, http.MethodPost, "/api/v1/roadmaps", `{"timeframe":"3 months"}`, tok)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCVAssistantRoutes(t *testing.T) {
	app := newApp(&fakeRecommendations{}, fakeOpportunities{}, nil)
	tok := token(t, jwt.TokenTypeAccess)

	status, body := do(t, app, http.MethodGet, "/api/v1/cv-assistant/analysis", "", tok)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"score":80,"max_score":100,"percentage":80,"assessment":"Excellent!",
		"suggestions":[{"category":"Projects","priority":"medium","suggestion":"Add more projects."}]}`, string(body.Data))

	status, body = do(t, app, http.MethodGet, "/api/v1/cv-assistant/keywords?target_role=Analyst", "", tok)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"keywords":["SQL","Analyst"],"target_role":"Analyst"}`, string(body.Data))

	status, body = do(t, app, http.MethodPost, "/api/v1/cv-assistant/summary", "", tok)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"summary":"Analyst with dashboard experience."}`, string(body.Data))

	status, body = do(t, app, http.MethodPost, "/api/v1/cv-assistant/bullets", `{"experience_index":0,"job_context":"Analyst"}`, tok)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"bullet_points":["Built dashboards"],"experience_title":"Intern"}`, string(body.Data))

	status, _ = do(t, app, http.MethodPost, "/api/v1/cv-assistant/bullets", `{"experience_index":3}`, tok)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/cv-assistant/analysis", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}
