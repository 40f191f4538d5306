package cv

import (
	"strings"
	"testing"

	"career-guide/internal/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(s []Suggestion) []string {
	out := make([]string, 0, len(s))
	for _, x := range s {
		out = append(out, x.Category)
	}
	return out
}

func TestAnalyze_CompleteCV(t *testing.T) {
	c := &profile.CV{
		PersonalSummary: strings.Repeat("a", 51),
		Experiences:     []profile.ExperienceEntry{{Title: "Analyst"}, {Title: "Intern"}},
		Education:       []profile.EducationEntry{{Degree: "BSc"}},
		Projects:        []profile.ProjectEntry{{Name: "Dashboard"}, {Name: "Scraper"}},
	}

	got := Analyze(c, 5)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, MaxScore, got.MaxScore)
	assert.Equal(t, 100.0, got.Percentage)
	assert.Equal(t, "Excellent! Your CV is comprehensive and well-structured.", got.Assessment)
	assert.Empty(t, got.Suggestions)
}

func TestAnalyze_PartialCredit(t *testing.T) {
	c := &profile.CV{
		PersonalSummary: strings.Repeat("a", 50),
		Experiences:     []profile.ExperienceEntry{{Title: "Analyst"}},
		Projects:        []profile.ProjectEntry{{Name: "Dashboard"}},
	}

	got := Analyze(c, 3)
	// experience 15 + skills 15 + projects 10
	assert.Equal(t, 40, got.Score)
	assert.Equal(t, 40.0, got.Percentage)
	assert.True(t, strings.HasPrefix(got.Assessment, "Fair."))
	assert.Equal(t, []string{"Personal Summary", "Work Experience", "Education", "Skills", "Projects"}, categories(got.Suggestions))
	assert.Equal(t, PriorityHigh, got.Suggestions[0].Priority)
	assert.Equal(t, PriorityMedium, got.Suggestions[1].Priority)
}

func TestAnalyze_SummaryCountsRunes(t *testing.T) {
	summary := strings.Repeat("ড", 50)
	got := Analyze(&profile.CV{PersonalSummary: summary}, 0)
	assert.Equal(t, 0, got.Score)

	got = Analyze(&profile.CV{PersonalSummary: summary + "ড"}, 0)
	assert.Equal(t, 20, got.Score)
}

func TestAnalyze_NilCV(t *testing.T) {
	got := Analyze(nil, 0)
	assert.Zero(t, got.Score)
	assert.Equal(t, "Needs work. Focus on adding core sections to build a strong CV.", got.Assessment)
	require.Len(t, got.Suggestions, 5)
	assert.Equal(t, PriorityMedium, got.Suggestions[4].Priority)
}

func TestKeywords(t *testing.T) {
	p := profile.UserProfile{
		SkillNames: []string{"Python", "communication", " "},
		CV:         &profile.CV{Tools: []string{"Excel", "PYTHON", "Tableau", "Git", "Jira", "Figma"}},
	}

	got := Keywords(p)
	assert.Equal(t, []string{
		"Python", "communication",
		"Excel", "Tableau", "Git", "Jira",
		"Problem Solving", "Team Collaboration", "Leadership", "Project Management", "Analytical Skills",
	}, got)
}

func TestKeywords_Capped(t *testing.T) {
	skills := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		skills = append(skills, strings.Repeat("s", i+1))
	}
	got := Keywords(profile.UserProfile{SkillNames: skills})
	assert.Len(t, got, MaxKeywords)
	assert.Equal(t, "s", got[0])
}

func TestKeywords_EmptyProfile(t *testing.T) {
	assert.Equal(t, commonKeywords, Keywords(profile.UserProfile{}))
}
