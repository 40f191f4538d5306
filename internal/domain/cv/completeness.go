package cv

import (
	"unicode/utf8"

	"career-guide/internal/domain/profile"
)

const MaxScore = 100

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

type Suggestion struct {
	Category   string
	Priority   Priority
	Suggestion string
}

// Completeness scores how much of a CV is filled in. Score is out of
// MaxScore and Suggestions lists every section that did not earn full points.
type Completeness struct {
	Score       int
	MaxScore    int
	Percentage  float64
	Assessment  string
	Suggestions []Suggestion
}

// summaryMinRunes is the length a personal summary must exceed to count.
const summaryMinRunes = 50

// Analyze scores c section by section: summary 20, experience 25, education
// 15, skills 20, projects 20. skillCount is the number of skills on the
// user's profile. A nil CV scores zero with a suggestion per section.
func Analyze(c *profile.CV, skillCount int) Completeness {
	if c == nil {
		c = &profile.CV{}
	}

	score := 0
	suggestions := make([]Suggestion, 0, 5)
	suggest := func(category string, p Priority, text string) {
		suggestions = append(suggestions, Suggestion{Category: category, Priority: p, Suggestion: text})
	}

	if utf8.RuneCountInString(c.PersonalSummary) > summaryMinRunes {
		score += 20
	} else {
		suggest("Personal Summary", PriorityHigh,
			"Add a compelling professional summary (3-4 sentences) highlighting your key skills and career goals.")
	}

	switch n := len(c.Experiences); {
	case n >= 2:
		score += 25
	case n == 1:
		score += 15
		suggest("Work Experience", PriorityMedium,
			"Add more work experiences or relevant internships to strengthen your profile.")
	default:
		suggest("Work Experience", PriorityHigh,
			"Add at least 1-2 work experiences, internships, or volunteer positions.")
	}

	if len(c.Education) >= 1 {
		score += 15
	} else {
		suggest("Education", PriorityHigh,
			"Add your educational background (degree, institution, graduation year).")
	}

	switch {
	case skillCount >= 5:
		score += 20
	case skillCount >= 3:
		score += 15
		suggest("Skills", PriorityMedium,
			"Add more skills to reach at least 5-7 relevant technical and soft skills.")
	default:
		suggest("Skills", PriorityHigh,
			"Add at least 5-7 relevant skills to make your profile more searchable.")
	}

	switch n := len(c.Projects); {
	case n >= 2:
		score += 20
	case n == 1:
		score += 10
		suggest("Projects", PriorityMedium,
			"Add more projects to showcase your practical skills and experience.")
	default:
		suggest("Projects", PriorityMedium,
			"Add 2-3 projects to demonstrate your skills in action.")
	}

	return Completeness{
		Score:       score,
		MaxScore:    MaxScore,
		Percentage:  float64(score*1000/MaxScore) / 10,
		Assessment:  assessmentFor(score),
		Suggestions: suggestions,
	}
}

func assessmentFor(score int) string {
	switch {
	case score >= 80:
		return "Excellent! Your CV is comprehensive and well-structured."
	case score >= 60:
		return "Good! Your CV has most essential sections. A few improvements will make it great."
	case score >= 40:
		return "Fair. Your CV needs several key sections to be competitive."
	default:
		return "Needs work. Focus on adding core sections to build a strong CV."
	}
}
