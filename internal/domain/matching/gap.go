package matching

import (
	"sort"
	"strings"

	"career-guide/internal/domain/course"
	"career-guide/internal/domain/skill"
)

type Importance string

const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice-to-have"
)

type Effort string

const (
	EffortEasy     Effort = "easy"
	EffortModerate Effort = "moderate"
	EffortAdvanced Effort = "advanced"
)

// MaxRecommendedCourses caps the course list of one result.
const MaxRecommendedCourses = 5

type SkillGap struct {
	Skill      string
	Importance Importance
	Effort     Effort
}

type CourseRelevance struct {
	Course    course.Course
	Relevance int
}

var effortByCategory = map[string]Effort{
	"programming":      EffortModerate,
	"analytics":        EffortModerate,
	"data":             EffortModerate,
	"soft skills":      EffortEasy,
	"marketing":        EffortEasy,
	"business":         EffortEasy,
	"cloud":            EffortAdvanced,
	"devops":           EffortAdvanced,
	"machine learning": EffortAdvanced,
	"security":         EffortAdvanced,
}

type GapAnalyzer struct {
	catalog *skill.Catalog
}

func NewGapAnalyzer(catalog *skill.Catalog) *GapAnalyzer {
	return &GapAnalyzer{catalog: catalog}
}

// Analyze classifies each missing skill and ranks courses by how many
// distinct missing skills they mention.
func (g *GapAnalyzer) Analyze(missing []string, courses []course.Course) ([]SkillGap, []CourseRelevance) {
	gaps := make([]SkillGap, 0, len(missing))
	if len(missing) == 0 {
		return gaps, []CourseRelevance{}
	}
	for i, m := range missing {
		gaps = append(gaps, SkillGap{
			Skill:      m,
			Importance: ImportanceAt(i),
			Effort:     EffortFor(g.catalog.Category(m)),
		})
	}
	return gaps, RankCourses(missing, courses)
}

func ImportanceAt(position int) Importance {
	switch {
	case position < 2:
		return ImportanceCritical
	case position < 5:
		return ImportanceImportant
	default:
		return ImportanceNiceToHave
	}
}

func EffortFor(category string) Effort {
	if e, ok := effortByCategory[skill.NormalizeName(category)]; ok {
		return e
	}
	return EffortModerate
}

// RankCourses keeps courses mentioning at least one missing skill, sorted by
// relevance descending with catalog order breaking ties, capped at
// MaxRecommendedCourses.
func RankCourses(missing []string, courses []course.Course) []CourseRelevance {
	needles := make([]string, 0, len(missing))
	seen := make(map[string]struct{}, len(missing))
	for _, m := range missing {
		k := skill.NormalizeName(m)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		needles = append(needles, k)
	}

	ranked := make([]CourseRelevance, 0)
	for _, c := range courses {
		title := strings.ToLower(c.Title)
		desc := strings.ToLower(c.Description)
		n := 0
		for _, needle := range needles {
			if strings.Contains(title, needle) || strings.Contains(desc, needle) {
				n++
			}
		}
		if n > 0 {
			ranked = append(ranked, CourseRelevance{Course: c, Relevance: n})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})
	if len(ranked) > MaxRecommendedCourses {
		ranked = ranked[:MaxRecommendedCourses]
	}
	return ranked
}
