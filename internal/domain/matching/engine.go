package matching

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
)

type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelPoor      Level = "poor"
)

// NeutralScore is assigned to candidates that list no required skills.
const NeutralScore = 50

const (
	ExperienceExceeds = "exceeds expectations"
	ExperienceMatches = "matches expectations"
	ExperienceBelow   = "below expectations"
)

const defaultConcern = "Consider gaining more experience"

type MatchResult struct {
	Candidate          Candidate
	Score              int
	Level              Level
	MatchingSkills     []string
	MissingSkills      []string
	SkillGaps          []SkillGap
	RecommendedCourses []CourseRelevance
	Recommendation     string

	Strengths       []string
	Concerns        []string
	ExperienceMatch string
	CareerAlignment int
}

func LevelFor(score int) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelPoor
	}
}

type Scorer struct {
	logger *slog.Logger
}

func NewScorer(logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{logger: logger}
}

// Score computes the deterministic match of p against c. Gaps, courses and the
// narrative are left empty for the caller to fill.
func (s *Scorer) Score(p profile.UserProfile, c Candidate, catalog *skill.Catalog) MatchResult {
	required, dropped := ToSkillNameSet(c.RequiredSkills, catalog)
	if len(dropped) > 0 {
		s.logger.Warn("data anomaly: unresolvable required skills",
			slog.String("kind", "data_anomaly"),
			slog.String("candidate_kind", string(c.Kind)),
			slog.Int64("candidate_id", c.ID),
			slog.String("dropped", strings.Join(dropped, ",")),
		)
	}

	userSkills := make(map[string]struct{}, len(p.SkillNames))
	for _, n := range p.SkillNames {
		userSkills[skill.NormalizeName(n)] = struct{}{}
	}

	matching := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, r := range required {
		if _, ok := userSkills[skill.NormalizeName(r)]; ok {
			matching = append(matching, r)
		} else {
			missing = append(missing, r)
		}
	}

	score := NeutralScore
	if len(required) > 0 {
		score = int(math.Round(100 * float64(len(matching)) / float64(len(required))))
	}

	return MatchResult{
		Candidate:          c,
		Score:              score,
		Level:              LevelFor(score),
		MatchingSkills:     matching,
		MissingSkills:      missing,
		SkillGaps:          []SkillGap{},
		RecommendedCourses: []CourseRelevance{},
		Strengths:          firstN(matching, 3),
		Concerns:           concerns(missing),
		ExperienceMatch:    ExperienceMatchFor(p.ExperienceLevel, c.ExperienceLevel),
		CareerAlignment:    CareerAlignment(p.CareerInterests, c),
	}
}

// SummaryLine is the short deterministic recommendation sentence.
func SummaryLine(r MatchResult) string {
	total := len(r.MatchingSkills) + len(r.MissingSkills)
	if total == 0 {
		return "This role lists no specific required skills, so your overall profile decides the fit."
	}
	line := "You match " + strconv.Itoa(len(r.MatchingSkills)) + " out of " + strconv.Itoa(total) + " required skills."
	if len(r.MissingSkills) > 0 {
		line += " Focus on learning: " + strings.Join(firstN(r.MissingSkills, 3), ", ") + "."
	}
	return line
}

var experienceRank = map[string]int{
	"fresher":      0,
	"entry":        0,
	"intern":       0,
	"junior":       1,
	"mid":          2,
	"intermediate": 2,
	"senior":       3,
	"lead":         3,
	"expert":       3,
}

// ExperienceMatchFor compares two experience levels. Unknown levels on either
// side are treated as a match.
func ExperienceMatchFor(userLevel, candidateLevel string) string {
	u, uok := experienceRank[strings.ToLower(strings.TrimSpace(userLevel))]
	c, cok := experienceRank[strings.ToLower(strings.TrimSpace(candidateLevel))]
	if !uok || !cok {
		return ExperienceMatches
	}
	switch {
	case u > c:
		return ExperienceExceeds
	case u < c:
		return ExperienceBelow
	default:
		return ExperienceMatches
	}
}

// CareerAlignment is the share (0-100) of interests that appear in the
// candidate's title, category, track or description.
func CareerAlignment(interests []string, c Candidate) int {
	if len(interests) == 0 {
		return 0
	}
	haystack := strings.ToLower(strings.Join([]string{c.Title, c.Category, c.TargetTrack, c.Description}, " "))
	hits := 0
	for _, in := range interests {
		in = strings.ToLower(strings.TrimSpace(in))
		if in != "" && strings.Contains(haystack, in) {
			hits++
		}
	}
	return int(math.Round(100 * float64(hits) / float64(len(interests))))
}

func concerns(missing []string) []string {
	if len(missing) == 0 {
		return []string{defaultConcern}
	}
	return firstN(missing, 2)
}

func firstN(in []string, n int) []string {
	if len(in) < n {
		n = len(in)
	}
	out := make([]string, n)
	copy(out, in[:n])
	return out
}
