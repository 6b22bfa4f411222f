package models

import "time"

type CommentStatus string

const (
	CommentPending CommentStatus = "pending"
	CommentPosted  CommentStatus = "posted"
	CommentFailed  CommentStatus = "failed"
)

func (s CommentStatus) Valid() bool {
	return s == CommentPending || s == CommentPosted || s == CommentFailed
}

// CanTransition reports whether a draft may move from s to next.
// Only pending drafts move, and only forward to posted or failed.
func (s CommentStatus) CanTransition(next CommentStatus) bool {
	return s == CommentPending && (next == CommentPosted || next == CommentFailed)
}

// CommentDraft is a generated comment waiting for the external publisher.
type CommentDraft struct {
	ID           string        `db:"id" json:"id"`
	OwnerID      string        `db:"user_id" json:"owner_id"`
	ProfileID    string        `db:"profile_id" json:"profile_id"`
	Content      string        `db:"content" json:"content"`
	PostURL      string        `db:"post_url" json:"post_url"`
	MatchedTerms []string      `db:"matched_terms" json:"matched_terms"`
	Status       CommentStatus `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// CommentView joins a draft with the profile it targets, for listings and exports.
type CommentView struct {
	CommentDraft
	ProfileName   string   `json:"profile_name"`
	ProfileHandle string   `json:"profile_handle"`
	Platform      Platform `json:"platform"`
}
