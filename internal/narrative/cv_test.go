package narrative

import (
	"context"
	"testing"

	"career-guide/internal/domain/cv"
	"career-guide/internal/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func cvProfile() profile.UserProfile {
	return profile.UserProfile{
		ExperienceLevel: "junior",
		SkillNames:      []string{"SQL", "Excel"},
		CareerInterests: []string{"Data Science"},
		CV: &profile.CV{
			Experiences: []profile.ExperienceEntry{{Title: "Intern", Company: "Acme"}},
			Tools:       []string{"Tableau"},
		},
	}
}

func TestGenerateSummary(t *testing.T) {
	client := &stubClient{replies: map[string][]stubReply{"primary": {{text: "Junior analyst who ships dashboards."}}}}
	g := NewGenerator(testConfig(), client, nil, discard())

	text, err := g.GenerateSummary(context.Background(), cvProfile())
	require.NoError(t, err)
	assert.Equal(t, "Junior analyst who ships dashboards.", text)

	fb, err := NewGenerator(testConfig(), nil, nil, discard()).GenerateSummary(context.Background(), cvProfile())
	require.NoError(t, err)
	assert.Equal(t, "A junior professional skilled in SQL, Excel. Experience includes work as Intern at Acme. Looking to grow in Data Science.", fb)
}

func TestImproveBullets_ParsesListLines(t *testing.T) {
	reply := "Here you go:\n- Built 5 dashboards used by 40 staff\n\n* Cut report time by 30%\n• Automated weekly exports"
	client := &stubClient{replies: map[string][]stubReply{"primary": {{text: reply}}}}
	g := NewGenerator(testConfig(), client, nil, discard())

	got, err := g.ImproveBullets(context.Background(), profile.ExperienceEntry{Title: "Intern"}, "Data Analyst")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Built 5 dashboards used by 40 staff",
		"Cut report time by 30%",
		"Automated weekly exports",
	}, got)
}

func TestImproveBullets_PlainTextIsOneBullet(t *testing.T) {
	client := &stubClient{replies: map[string][]stubReply{"primary": {{text: "Led the migration to a new CRM."}}}}
	g := NewGenerator(testConfig(), client, nil, discard())

	got, err := g.ImproveBullets(context.Background(), profile.ExperienceEntry{}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Led the migration to a new CRM."}, got)
}

func TestImproveBullets_Fallback(t *testing.T) {
	g := NewGenerator(testConfig(), &stubClient{replies: map[string][]stubReply{"primary": {{err: ErrServiceFatal}}}}, nil, discard())

	got, err := g.ImproveBullets(context.Background(), profile.ExperienceEntry{
		Title:       "Intern",
		Description: strPtr("- Cleaned sales data. Built reports\nPresented findings"),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cleaned sales data.", "Built reports.", "Presented findings."}, got)

	got, err = g.ImproveBullets(context.Background(), profile.ExperienceEntry{Title: "Intern", Company: "Acme"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Contributed as Intern at Acme; add the results you achieved here."}, got)
}

func TestGenerateKeywords(t *testing.T) {
	client := &stubClient{replies: map[string][]stubReply{"primary": {{text: "SQL, Data Visualization , , Stakeholder Management."}}}}
	g := NewGenerator(testConfig(), client, nil, discard())

	got, err := g.GenerateKeywords(context.Background(), cvProfile(), "Data Analyst")
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL", "Data Visualization", "Stakeholder Management"}, got)

	fb, err := NewGenerator(testConfig(), nil, nil, discard()).GenerateKeywords(context.Background(), cvProfile(), "")
	require.NoError(t, err)
	assert.Equal(t, cv.Keywords(cvProfile()), fb)
}

func TestCVTasks_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGenerator(testConfig(), &stubClient{block: true}, nil, discard())

	_, err := g.GenerateSummary(ctx, cvProfile())
	assert.ErrorIs(t, err, context.Canceled)
	_, err = g.ImproveBullets(ctx, profile.ExperienceEntry{}, "")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = g.GenerateKeywords(ctx, cvProfile(), "")
	assert.ErrorIs(t, err, context.Canceled)
}
