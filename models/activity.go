package models

import "time"

type ActivityAction string

const (
	ActionRunCompleted         ActivityAction = "run_completed"
	ActionProfileAdded         ActivityAction = "profile_added"
	ActionProfileRemoved       ActivityAction = "profile_removed"
	ActionKeywordAdded         ActivityAction = "keyword_added"
	ActionKeywordRemoved       ActivityAction = "keyword_removed"
	ActionCommentStatusChanged ActivityAction = "comment_status_changed"
)

const (
	ActivitySuccess = "success"
	ActivityError   = "error"
)

// ActivityEntry is one line of the owner's history page.
type ActivityEntry struct {
	ID        string         `db:"id" json:"id"`
	OwnerID   string         `db:"user_id" json:"owner_id"`
	Action    ActivityAction `db:"action" json:"action"`
	Platform  Platform       `db:"platform" json:"platform,omitempty"`
	Target    string         `db:"target" json:"target"`
	Details   string         `db:"details" json:"details"`
	Status    string         `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
