package models

import "time"

type KeywordPerformance struct {
	ID         string   `json:"id"`
	Term       string   `json:"term"`
	Operator   Operator `json:"operator"`
	MatchCount int64    `json:"match_count"`
}

type ProfilePerformance struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Platform    Platform `json:"platform"`
	Comments    int      `json:"comments"`
}

// Report aggregates an owner's drafts over a time window.
type Report struct {
	Since         time.Time             `json:"since"`
	TotalComments int                   `json:"total_comments"`
	ByStatus      map[CommentStatus]int `json:"by_status"`
	ByPlatform    map[Platform]int      `json:"by_platform"`
	TopKeywords   []KeywordPerformance  `json:"top_keywords"`
	Profiles      []ProfilePerformance  `json:"profiles"`
}
