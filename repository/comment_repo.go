package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"comment_monitor/models"
	"comment_monitor/utils"
)

var commentColumns = []string{"id", "user_id", "profile_id", "content", "post_url", "matched_terms", "status", "created_at", "updated_at"}

// CommentFilter narrows ListComments. Limit 0 means no limit.
type CommentFilter struct {
	Status    models.CommentStatus
	Platform  models.Platform
	ProfileID string
	Search    string
	Since     time.Time
	Limit     uint64
	Offset    uint64
}

// InsertDrafts stores drafts for one profile, skipping any post the profile
// already has a draft for. Duplicates inside the batch are collapsed too.
// It returns the drafts actually written and how many were skipped.
func (s *Store) InsertDrafts(ctx context.Context, ownerID, profileID string, drafts []models.CommentDraft) ([]models.CommentDraft, int, error) {
	if len(drafts) == 0 {
		return nil, 0, nil
	}

	urls := make([]string, 0, len(drafts))
	for _, d := range drafts {
		urls = append(urls, d.PostURL)
	}

	var inserted []models.CommentDraft
	skipped := 0
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		inserted, skipped = nil, 0

		seen, err := s.existingPostURLs(ctx, tx, profileID, urls)
		if err != nil {
			return err
		}

		now := s.now()
		for _, d := range drafts {
			if seen[d.PostURL] {
				skipped++
				continue
			}
			seen[d.PostURL] = true

			d.ID = uuid.NewString()
			d.OwnerID = ownerID
			d.ProfileID = profileID
			if d.Status == "" {
				d.Status = models.CommentPending
			}
			d.CreatedAt, d.UpdatedAt = now, now

			ok, err := s.insertDraft(ctx, tx, d)
			if err != nil {
				return err
			}
			if !ok {
				// written by a concurrent run after the lookup above
				skipped++
				continue
			}
			inserted = append(inserted, d)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return inserted, skipped, nil
}

// insertDraft writes one draft and reports false when the profile already
// has a draft for the same post url.
func (s *Store) insertDraft(ctx context.Context, q querier, d models.CommentDraft) (bool, error) {
	terms, err := json.Marshal(nonNil(d.MatchedTerms))
	if err != nil {
		return false, fmt.Errorf("encode matched terms: %w", err)
	}
	res, err := s.exec(ctx, q, s.insertIgnoringConflicts("comments", "profile_id", "post_url").
		Columns(commentColumns...).
		Values(d.ID, d.OwnerID, d.ProfileID, d.Content, d.PostURL, string(terms), d.Status, d.CreatedAt, d.UpdatedAt))
	if err != nil {
		return false, fmt.Errorf("insert comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *Store) existingPostURLs(ctx context.Context, q querier, profileID string, urls []string) (map[string]bool, error) {
	rows, err := s.query(ctx, q, s.sb.Select("post_url").From("comments").
		Where(sq.Eq{"profile_id": profileID, "post_url": urls}))
	if err != nil {
		return nil, fmt.Errorf("query existing drafts: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool, len(urls))
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan post url: %w", err)
		}
		seen[u] = true
	}
	return seen, rows.Err()
}

func (s *Store) commentViewQuery(ownerID string) sq.SelectBuilder {
	return s.sb.Select(
		"c.id", "c.user_id", "c.profile_id", "c.content", "c.post_url", "c.matched_terms",
		"c.status", "c.created_at", "c.updated_at", "p.name", "p.handle", "p.platform",
	).
		From("comments c").
		Join("profiles p ON p.id = c.profile_id").
		Where(sq.Eq{"c.user_id": ownerID})
}

func scanCommentView(row interface{ Scan(...any) error }) (models.CommentView, error) {
	var (
		v     models.CommentView
		terms string
	)
	err := row.Scan(&v.ID, &v.OwnerID, &v.ProfileID, &v.Content, &v.PostURL, &terms,
		&v.Status, &v.CreatedAt, &v.UpdatedAt, &v.ProfileName, &v.ProfileHandle, &v.Platform)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal([]byte(terms), &v.MatchedTerms); err != nil {
		return v, fmt.Errorf("decode matched terms: %w", err)
	}
	return v, nil
}

// ListComments returns drafts joined with their profile, newest first.
func (s *Store) ListComments(ctx context.Context, ownerID string, f CommentFilter) ([]models.CommentView, error) {
	b := s.commentViewQuery(ownerID).OrderBy("c.created_at DESC", "c.id")
	if f.Status != "" {
		b = b.Where(sq.Eq{"c.status": f.Status})
	}
	if f.Platform != "" {
		b = b.Where(sq.Eq{"p.platform": f.Platform})
	}
	if f.ProfileID != "" {
		b = b.Where(sq.Eq{"c.profile_id": f.ProfileID})
	}
	if f.Search != "" {
		b = b.Where(s.contains(f.Search, "c.content", "p.name"))
	}
	if !f.Since.IsZero() {
		b = b.Where(sq.GtOrEq{"c.created_at": f.Since.UTC()})
	}
	if f.Limit > 0 {
		b = b.Limit(f.Limit).Offset(f.Offset)
	}

	rows, err := s.query(ctx, s.db, b)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var out []models.CommentView
	for rows.Next() {
		v, err := scanCommentView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetComment loads one draft owned by ownerID.
func (s *Store) GetComment(ctx context.Context, ownerID, id string) (*models.CommentView, error) {
	row, err := s.queryRow(ctx, s.db, s.commentViewQuery(ownerID).Where(sq.Eq{"c.id": id}))
	if err != nil {
		return nil, err
	}
	v, err := scanCommentView(row)
	if utils.IsSQLNoRowsError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &v, nil
}

// UpdateCommentStatus moves a draft from one status to another. The update
// only applies while the row still has status from, so two callers racing
// on the same draft cannot both win. ErrNotFound covers both a missing row
// and a row whose status already changed.
func (s *Store) UpdateCommentStatus(ctx context.Context, ownerID, id string, from, to models.CommentStatus) error {
	res, err := s.exec(ctx, s.db, s.sb.Update("comments").
		Set("status", to).
		Set("updated_at", s.now()).
		Where(sq.Eq{"user_id": ownerID, "id": id, "status": from}))
	if err != nil {
		return fmt.Errorf("update comment status: %w", err)
	}
	return affectedOne(res)
}

// CountCommentsSince counts drafts created at or after since.
func (s *Store) CountCommentsSince(ctx context.Context, ownerID string, since time.Time) (int, error) {
	n, err := s.count(ctx, s.db, s.sb.Select("COUNT(1)").From("comments").
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.GtOrEq{"created_at": since.UTC()}))
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

// CommentsByStatus groups drafts created since the given time by status.
func (s *Store) CommentsByStatus(ctx context.Context, ownerID string, since time.Time) (map[models.CommentStatus]int, error) {
	out := map[models.CommentStatus]int{}
	err := s.groupCount(ctx, s.sb.Select("c.status", "COUNT(1)").From("comments c").
		Where(sq.Eq{"c.user_id": ownerID}).
		Where(sq.GtOrEq{"c.created_at": since.UTC()}).
		GroupBy("c.status"),
		func(key string, n int) { out[models.CommentStatus(key)] = n })
	return out, err
}

// CommentsByPlatform groups drafts created since the given time by platform.
func (s *Store) CommentsByPlatform(ctx context.Context, ownerID string, since time.Time) (map[models.Platform]int, error) {
	out := map[models.Platform]int{}
	err := s.groupCount(ctx, s.sb.Select("p.platform", "COUNT(1)").From("comments c").
		Join("profiles p ON p.id = c.profile_id").
		Where(sq.Eq{"c.user_id": ownerID}).
		Where(sq.GtOrEq{"c.created_at": since.UTC()}).
		GroupBy("p.platform"),
		func(key string, n int) { out[models.Platform(key)] = n })
	return out, err
}

// ProfilePerformance counts drafts per profile since the given time,
// including profiles that have none, busiest first.
func (s *Store) ProfilePerformance(ctx context.Context, ownerID string, since time.Time) ([]models.ProfilePerformance, error) {
	rows, err := s.query(ctx, s.db, s.sb.Select("p.id", "p.name", "p.platform", "COUNT(c.id)").
		From("profiles p").
		LeftJoin("comments c ON c.profile_id = p.id AND c.created_at >= ?", since.UTC()).
		Where(sq.Eq{"p.user_id": ownerID}).
		GroupBy("p.id", "p.name", "p.platform").
		OrderBy("COUNT(c.id) DESC", "p.name"))
	if err != nil {
		return nil, fmt.Errorf("query profile performance: %w", err)
	}
	defer rows.Close()

	var out []models.ProfilePerformance
	for rows.Next() {
		var p models.ProfilePerformance
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Platform, &p.Comments); err != nil {
			return nil, fmt.Errorf("scan profile performance: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) groupCount(ctx context.Context, b sq.SelectBuilder, add func(key string, n int)) error {
	rows, err := s.query(ctx, s.db, b)
	if err != nil {
		return fmt.Errorf("group count: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scan group count: %w", err)
		}
		add(key, n)
	}
	return rows.Err()
}

func nonNil(terms []string) []string {
	if terms == nil {
		return []string{}
	}
	return terms
}
