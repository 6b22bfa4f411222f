package services

import (
	"context"
	"time"

	"comment_monitor/models"
	"comment_monitor/repository"
)

const topKeywordCount = 10

// ReportWindows are the report periods offered by the dashboard, in days.
var ReportWindows = []int{7, 30, 90}

type ReportService struct {
	store *repository.Store
	now   func() time.Time
}

func NewReportService(store *repository.Store) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// Build aggregates the owner's drafts of the last days days.
func (s *ReportService) Build(ctx context.Context, ownerID string, days int) (*models.Report, error) {
	if !validWindow(days) {
		return nil, invalid("days", "must be one of 7, 30 or 90")
	}
	since := s.now().UTC().AddDate(0, 0, -days)

	byStatus, err := s.store.CommentsByStatus(ctx, ownerID, since)
	if err != nil {
		return nil, err
	}
	byPlatform, err := s.store.CommentsByPlatform(ctx, ownerID, since)
	if err != nil {
		return nil, err
	}
	top, err := s.store.TopKeywords(ctx, ownerID, topKeywordCount)
	if err != nil {
		return nil, err
	}
	profiles, err := s.store.ProfilePerformance(ctx, ownerID, since)
	if err != nil {
		return nil, err
	}

	r := &models.Report{
		Since:       since,
		ByStatus:    byStatus,
		ByPlatform:  byPlatform,
		TopKeywords: make([]models.KeywordPerformance, 0, len(top)),
		Profiles:    profiles,
	}
	for _, n := range byStatus {
		r.TotalComments += n
	}
	for _, k := range top {
		r.TopKeywords = append(r.TopKeywords, models.KeywordPerformance{
			ID: k.ID, Term: k.Term, Operator: k.Operator, MatchCount: k.MatchCount,
		})
	}
	if r.Profiles == nil {
		r.Profiles = []models.ProfilePerformance{}
	}
	return r, nil
}

func validWindow(days int) bool {
	for _, d := range ReportWindows {
		if d == days {
			return true
		}
	}
	return false
}

// HistoryService lists the owner's activity log.
type HistoryService struct {
	store *repository.Store
}

func NewHistoryService(store *repository.Store) *HistoryService {
	return &HistoryService{store: store}
}

func (s *HistoryService) List(ctx context.Context, ownerID string, f repository.ActivityFilter) ([]models.ActivityEntry, error) {
	if f.Status != "" && f.Status != models.ActivitySuccess && f.Status != models.ActivityError {
		return nil, invalid("status", "must be success or error")
	}
	entries, err := s.store.ListActivity(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	return entries, nil
}
