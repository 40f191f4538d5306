package dto

import "career-guide/internal/domain/cv"

type CVSuggestion struct {
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
}

type CVAnalysisResponse struct {
	Score       int            `json:"score"`
	MaxScore    int            `json:"max_score"`
	Percentage  float64        `json:"percentage"`
	Assessment  string         `json:"assessment"`
	Suggestions []CVSuggestion `json:"suggestions"`
}

func FromCompleteness(c cv.Completeness) CVAnalysisResponse {
	out := CVAnalysisResponse{
		Score:       c.Score,
		MaxScore:    c.MaxScore,
		Percentage:  c.Percentage,
		Assessment:  c.Assessment,
		Suggestions: make([]CVSuggestion, 0, len(c.Suggestions)),
	}
	for _, s := range c.Suggestions {
		out.Suggestions = append(out.Suggestions, CVSuggestion{
			Category:   s.Category,
			Priority:   string(s.Priority),
			Suggestion: s.Suggestion,
		})
	}
	return out
}

type CVKeywordsResponse struct {
	Keywords   []string `json:"keywords"`
	TargetRole *string  `json:"target_role"`
}

type CVSummaryResponse struct {
	Summary string `json:"summary"`
}

type ImproveBulletsRequest struct {
	ExperienceIndex int    `json:"experience_index"`
	JobContext      string `json:"job_context"`
}

type ImproveBulletsResponse struct {
	BulletPoints    []string `json:"bullet_points"`
	ExperienceTitle string   `json:"experience_title"`
}
