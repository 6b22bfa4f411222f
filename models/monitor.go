package models

import "time"

// SampledPost is one new post observed on a monitored profile.
// URL may be empty when the source cannot resolve a permalink.
type SampledPost struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// ActivitySample is what an activity sampler returns for one profile.
type ActivitySample struct {
	Posts     []SampledPost `json:"posts"`
	SampledAt time.Time     `json:"sampled_at"`
}

// MatchResult is the verdict of evaluating a rule set against one text.
type MatchResult struct {
	IsMatch        bool     `json:"is_match"`
	MatchedTerms   []string `json:"matched_terms"`
	ExcludedBy     []string `json:"excluded_by,omitempty"`
	MatchedRuleIDs []string `json:"-"`
}

// ProfileActivity is the per-profile line of a run summary.
type ProfileActivity struct {
	ProfileID         string   `json:"profile_id"`
	ProfileName       string   `json:"profile_name"`
	Platform          Platform `json:"platform"`
	NewPosts          int      `json:"new_posts"`
	KeywordMatches    []string `json:"keyword_matches"`
	MatchedPosts      int      `json:"matched_posts"`
	DraftsCreated     int      `json:"drafts_created"`
	DuplicatesSkipped int      `json:"duplicates_skipped"`
	SkippedByLimit    int      `json:"skipped_by_limit"`
}

// RunError is a non-fatal failure recorded during a run.
// ProfileID is empty for run-level problems such as the counter flush.
type RunError struct {
	ProfileID string `json:"profile_id"`
	Message   string `json:"message"`
}

// MonitorSummary is the response of one monitoring run.
type MonitorSummary struct {
	MonitoredProfiles int               `json:"monitored_profiles"`
	ActivitySummary   []ProfileActivity `json:"activity_summary"`
	DraftsCreated     int               `json:"drafts_created"`
	Errors            []RunError        `json:"errors"`
	StartedAt         time.Time         `json:"started_at"`
	FinishedAt        time.Time         `json:"finished_at"`
}
