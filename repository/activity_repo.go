package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"comment_monitor/models"
)

var activityColumns = []string{"id", "user_id", "action", "platform", "target", "details", "status", "created_at"}

// ActivityFilter narrows ListActivity. Limit 0 means no limit.
type ActivityFilter struct {
	Action models.ActivityAction
	Status string
	Search string
	Since  time.Time
	Limit  uint64
	Offset uint64
}

// AddActivity appends one entry to the owner's history.
func (s *Store) AddActivity(ctx context.Context, e *models.ActivityEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = s.now()

	_, err := s.exec(ctx, s.db, s.sb.Insert("activity_log").
		Columns(activityColumns...).
		Values(e.ID, e.OwnerID, e.Action, e.Platform, e.Target, e.Details, e.Status, e.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListActivity returns history entries, newest first.
func (s *Store) ListActivity(ctx context.Context, ownerID string, f ActivityFilter) ([]models.ActivityEntry, error) {
	b := s.sb.Select(activityColumns...).From("activity_log").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id")
	if f.Action != "" {
		b = b.Where(sq.Eq{"action": f.Action})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}
	if f.Search != "" {
		b = b.Where(s.contains(f.Search, "target", "details"))
	}
	if !f.Since.IsZero() {
		b = b.Where(sq.GtOrEq{"created_at": f.Since.UTC()})
	}
	if f.Limit > 0 {
		b = b.Limit(f.Limit).Offset(f.Offset)
	}

	rows, err := s.query(ctx, s.db, b)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []models.ActivityEntry
	for rows.Next() {
		var e models.ActivityEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Action, &e.Platform, &e.Target, &e.Details, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
