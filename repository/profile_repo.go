package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"comment_monitor/models"
	"comment_monitor/utils"
)

var profileColumns = []string{"id", "user_id", "name", "handle", "platform", "status", "created_at", "updated_at"}

// ProfileFilter narrows ListProfiles. Zero values match everything.
type ProfileFilter struct {
	Platform models.Platform
	Status   models.ProfileStatus
	Search   string
}

func scanProfile(row interface{ Scan(...any) error }) (models.MonitoredProfile, error) {
	var p models.MonitoredProfile
	err := row.Scan(&p.ID, &p.OwnerID, &p.DisplayName, &p.Handle, &p.Platform, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateProfile stores a new profile and fills in its id and timestamps.
func (s *Store) CreateProfile(ctx context.Context, p *models.MonitoredProfile) error {
	now := s.now()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = models.ProfileActive
	}
	p.CreatedAt, p.UpdatedAt = now, now

	_, err := s.exec(ctx, s.db, s.sb.Insert("profiles").
		Columns(profileColumns...).
		Values(p.ID, p.OwnerID, p.DisplayName, p.Handle, p.Platform, p.Status, p.CreatedAt, p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// CountProfiles returns how many profiles the owner has, whatever their status.
func (s *Store) CountProfiles(ctx context.Context, ownerID string) (int, error) {
	n, err := s.count(ctx, s.db, s.sb.Select("COUNT(1)").From("profiles").Where(sq.Eq{"user_id": ownerID}))
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}

// ProfileExists reports whether the owner already monitors handle on platform.
func (s *Store) ProfileExists(ctx context.Context, ownerID string, platform models.Platform, handle string) (bool, error) {
	n, err := s.count(ctx, s.db, s.sb.Select("COUNT(1)").From("profiles").
		Where(sq.Eq{"user_id": ownerID, "platform": platform, "handle": handle}))
	if err != nil {
		return false, fmt.Errorf("check profile: %w", err)
	}
	return n > 0, nil
}

// ListProfiles returns the owner's profiles, newest first.
func (s *Store) ListProfiles(ctx context.Context, ownerID string, f ProfileFilter) ([]models.MonitoredProfile, error) {
	b := s.sb.Select(profileColumns...).From("profiles").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id")
	if f.Platform != "" {
		b = b.Where(sq.Eq{"platform": f.Platform})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}
	if f.Search != "" {
		b = b.Where(s.contains(f.Search, "name", "handle"))
	}
	return s.listProfiles(ctx, b)
}

// ListActiveProfiles returns the profiles a monitoring run should visit,
// in a stable order so summaries are reproducible.
func (s *Store) ListActiveProfiles(ctx context.Context, ownerID string) ([]models.MonitoredProfile, error) {
	return s.listProfiles(ctx, s.sb.Select(profileColumns...).From("profiles").
		Where(sq.Eq{"user_id": ownerID, "status": models.ProfileActive}).
		OrderBy("created_at", "id"))
}

func (s *Store) listProfiles(ctx context.Context, b sq.SelectBuilder) ([]models.MonitoredProfile, error) {
	rows, err := s.query(ctx, s.db, b)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var out []models.MonitoredProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetProfile loads one profile owned by ownerID.
func (s *Store) GetProfile(ctx context.Context, ownerID, id string) (*models.MonitoredProfile, error) {
	row, err := s.queryRow(ctx, s.db, s.sb.Select(profileColumns...).From("profiles").
		Where(sq.Eq{"user_id": ownerID, "id": id}))
	if err != nil {
		return nil, err
	}
	p, err := scanProfile(row)
	if utils.IsSQLNoRowsError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfileStatus pauses, resumes or deactivates a profile.
func (s *Store) UpdateProfileStatus(ctx context.Context, ownerID, id string, status models.ProfileStatus) error {
	res, err := s.exec(ctx, s.db, s.sb.Update("profiles").
		Set("status", status).
		Set("updated_at", s.now()).
		Where(sq.Eq{"user_id": ownerID, "id": id}))
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return affectedOne(res)
}

// DeleteProfile removes a profile together with its drafts.
func (s *Store) DeleteProfile(ctx context.Context, ownerID, id string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		// drafts first: sqlite only cascades when foreign_keys is on
		if _, err := s.exec(ctx, tx, s.sb.Delete("comments").
			Where(sq.Eq{"user_id": ownerID, "profile_id": id})); err != nil {
			return fmt.Errorf("delete profile comments: %w", err)
		}
		res, err := s.exec(ctx, tx, s.sb.Delete("profiles").Where(sq.Eq{"user_id": ownerID, "id": id}))
		if err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		return affectedOne(res)
	})
}
