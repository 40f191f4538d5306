package dto

import "career-guide/internal/domain/matching"

type OpportunityRecommendationResponse struct {
	Explanation   string                `json:"explanation"`
	Opportunities []MatchResultResponse `json:"opportunities"`
	TotalMatched  int                   `json:"total_matched"`
	Language      string                `json:"language"`
}

func FromOpportunities(explanation string, results []matching.MatchResult, total int, lang string) OpportunityRecommendationResponse {
	return OpportunityRecommendationResponse{
		Explanation:   explanation,
		Opportunities: FromMatchResults(results),
		TotalMatched:  total,
		Language:      lang,
	}
}

type ChatMessageRequest struct {
	Message string `json:"message"`
}

type ChatMessageResponse struct {
	Reply    string `json:"reply"`
	Language string `json:"language"`
	Blocked  bool   `json:"blocked"`
}

type RoadmapRequest struct {
	TargetRole  string `json:"target_role"`
	Timeframe   string `json:"timeframe"`
	WeeklyHours int    `json:"weekly_hours"`
}

type RoadmapResponse struct {
	TargetRole  string `json:"target_role"`
	Timeframe   string `json:"timeframe"`
	Visual      string `json:"roadmap_visual"`
	Description string `json:"roadmap_description"`
}
