package services

import (
	"context"
	"time"

	"comment_monitor/models"
	"comment_monitor/repository"
)

// ActivitySampler yields the new posts of one monitored profile.
// Implementations must honor ctx; the orchestrator bounds each call with a timeout.
type ActivitySampler interface {
	Sample(ctx context.Context, profile models.MonitoredProfile) (models.ActivitySample, error)
}

// Composer writes comment text for a matched post.
type Composer interface {
	Compose(ctx context.Context, req CompositionRequest) (string, error)
}

// CompositionRequest is everything a Composer may use to write a comment.
type CompositionRequest struct {
	Profile      models.MonitoredProfile
	PostText     string
	MatchedTerms []string
	Settings     models.OwnerSettings
}

// Notifier tells an owner that a run produced drafts.
type Notifier interface {
	NotifyRun(ctx context.Context, chatID int64, summary *models.MonitorSummary) error
}

// Authenticator turns a bearer token into an owner id, or ErrUnauthorized.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// MonitorStore is the persistence a monitoring run needs.
type MonitorStore interface {
	ListActiveProfiles(ctx context.Context, ownerID string) ([]models.MonitoredProfile, error)
	ListActiveKeywords(ctx context.Context, ownerID string) ([]models.KeywordRule, error)
	GetSettings(ctx context.Context, ownerID string) (*models.OwnerSettings, error)
	CountCommentsSince(ctx context.Context, ownerID string, since time.Time) (int, error)
	InsertDrafts(ctx context.Context, ownerID, profileID string, drafts []models.CommentDraft) ([]models.CommentDraft, int, error)
	IncrementMatchCounts(ctx context.Context, ownerID string, deltas map[string]int) error
	AddActivity(ctx context.Context, e *models.ActivityEntry) error
}

var _ MonitorStore = (*repository.Store)(nil)
