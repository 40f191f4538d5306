package dto

import "career-guide/internal/domain/matching"

type JobResponse struct {
	ID              int64    `json:"id"`
	Kind            string   `json:"kind"`
	Title           string   `json:"title"`
	CompanyName     string   `json:"company_name"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	RequiredSkills  []string `json:"required_skills"`
	Requirements    string   `json:"requirements,omitempty"`
	Description     string   `json:"description"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	TargetTrack     string   `json:"target_track,omitempty"`
	PriorityGroup   string   `json:"priority_group,omitempty"`
	Link            string   `json:"link,omitempty"`
}

type SkillGapItem struct {
	Skill          string `json:"skill"`
	Importance     string `json:"importance"`
	LearningEffort string `json:"learning_effort"`
}

type CourseItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Platform       string `json:"platform"`
	URL            string `json:"url"`
	CostType       string `json:"cost_type"`
	RelevanceScore int    `json:"relevance_score"`
}

type MatchResultResponse struct {
	Job                JobResponse    `json:"job"`
	MatchScore         int            `json:"match_score"`
	MatchLevel         string         `json:"match_level"`
	MatchingSkills     []string       `json:"matching_skills"`
	MissingSkills      []string       `json:"missing_skills"`
	SkillGaps          []SkillGapItem `json:"skill_gaps"`
	RecommendedCourses []CourseItem   `json:"recommended_courses"`
	Recommendation     string         `json:"recommendation"`
	Strengths          []string       `json:"strengths"`
	Concerns           []string       `json:"concerns"`
	ExperienceMatch    string         `json:"experience_match"`
	CareerAlignment    int            `json:"career_alignment"`
}

type RecommendationStatsResponse struct {
	TotalJobs         int     `json:"total_jobs"`
	ExcellentMatches  int     `json:"excellent_matches"`
	GoodMatches       int     `json:"good_matches"`
	AverageMatchScore float64 `json:"average_match_score"`
	TotalSkillGaps    int     `json:"total_skill_gaps"`
}

func FromMatchResults(results []matching.MatchResult) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, FromMatchResult(r))
	}
	return out
}

func FromMatchResult(r matching.MatchResult) MatchResultResponse {
	c := r.Candidate
	gaps := make([]SkillGapItem, 0, len(r.SkillGaps))
	for _, g := range r.SkillGaps {
		gaps = append(gaps, SkillGapItem{Skill: g.Skill, Importance: string(g.Importance), LearningEffort: string(g.Effort)})
	}
	courses := make([]CourseItem, 0, len(r.RecommendedCourses))
	for _, cr := range r.RecommendedCourses {
		courses = append(courses, CourseItem{
			ID:             cr.Course.ID,
			Title:          cr.Course.Title,
			Platform:       cr.Course.Platform,
			URL:            cr.Course.URL,
			CostType:       cr.Course.CostType,
			RelevanceScore: cr.Relevance,
		})
	}

	return MatchResultResponse{
		Job: JobResponse{
			ID:              c.ID,
			Kind:            string(c.Kind),
			Title:           c.Title,
			CompanyName:     c.Organization,
			Location:        c.Location,
			JobType:         c.Category,
			ExperienceLevel: c.ExperienceLevel,
			RequiredSkills:  append(append([]string{}, r.MatchingSkills...), r.MissingSkills...),
			Requirements:    c.Requirements,
			Description:     c.Description,
			SalaryRange:     c.SalaryRange,
			TargetTrack:     c.TargetTrack,
			PriorityGroup:   c.PriorityGroup,
			Link:            c.Link,
		},
		MatchScore:         r.Score,
		MatchLevel:         string(r.Level),
		MatchingSkills:     nonNil(r.MatchingSkills),
		MissingSkills:      nonNil(r.MissingSkills),
		SkillGaps:          gaps,
		RecommendedCourses: courses,
		Recommendation:     r.Recommendation,
		Strengths:          nonNil(r.Strengths),
		Concerns:           nonNil(r.Concerns),
		ExperienceMatch:    r.ExperienceMatch,
		CareerAlignment:    r.CareerAlignment,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
