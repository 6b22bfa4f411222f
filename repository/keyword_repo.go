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

var keywordColumns = []string{"id", "user_id", "keyword", "operator", "active", "match_count", "created_at"}

// KeywordFilter narrows ListKeywords.
type KeywordFilter struct {
	Operator models.Operator
	Search   string
}

func scanKeyword(row interface{ Scan(...any) error }) (models.KeywordRule, error) {
	var k models.KeywordRule
	err := row.Scan(&k.ID, &k.OwnerID, &k.Term, &k.Operator, &k.Active, &k.MatchCount, &k.CreatedAt)
	return k, err
}

// CreateKeyword stores a new rule with a zero match count.
func (s *Store) CreateKeyword(ctx context.Context, k *models.KeywordRule) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	k.MatchCount = 0
	k.CreatedAt = s.now()

	_, err := s.exec(ctx, s.db, s.sb.Insert("keywords").
		Columns(keywordColumns...).
		Values(k.ID, k.OwnerID, k.Term, k.Operator, k.Active, k.MatchCount, k.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert keyword: %w", err)
	}
	return nil
}

// ListKeywords returns the owner's rules, newest first.
func (s *Store) ListKeywords(ctx context.Context, ownerID string, f KeywordFilter) ([]models.KeywordRule, error) {
	b := s.sb.Select(keywordColumns...).From("keywords").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id")
	if f.Operator != "" {
		b = b.Where(sq.Eq{"operator": f.Operator})
	}
	if f.Search != "" {
		b = b.Where(s.contains(f.Search, "keyword"))
	}
	return s.listKeywords(ctx, b)
}

// ListActiveKeywords returns the rule set used by a monitoring run.
func (s *Store) ListActiveKeywords(ctx context.Context, ownerID string) ([]models.KeywordRule, error) {
	return s.listKeywords(ctx, s.sb.Select(keywordColumns...).From("keywords").
		Where(sq.Eq{"user_id": ownerID, "active": true}).
		OrderBy("created_at", "id"))
}

// TopKeywords returns the owner's rules with the highest match counts.
func (s *Store) TopKeywords(ctx context.Context, ownerID string, limit int) ([]models.KeywordRule, error) {
	return s.listKeywords(ctx, s.sb.Select(keywordColumns...).From("keywords").
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.Gt{"match_count": 0}).
		OrderBy("match_count DESC", "keyword").
		Limit(uint64(limit)))
}

func (s *Store) listKeywords(ctx context.Context, b sq.SelectBuilder) ([]models.KeywordRule, error) {
	rows, err := s.query(ctx, s.db, b)
	if err != nil {
		return nil, fmt.Errorf("query keywords: %w", err)
	}
	defer rows.Close()

	var out []models.KeywordRule
	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, fmt.Errorf("scan keyword: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// GetKeyword loads one rule owned by ownerID.
func (s *Store) GetKeyword(ctx context.Context, ownerID, id string) (*models.KeywordRule, error) {
	row, err := s.queryRow(ctx, s.db, s.sb.Select(keywordColumns...).From("keywords").
		Where(sq.Eq{"user_id": ownerID, "id": id}))
	if err != nil {
		return nil, err
	}
	k, err := scanKeyword(row)
	if utils.IsSQLNoRowsError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get keyword: %w", err)
	}
	return &k, nil
}

// SetKeywordActive toggles whether a rule takes part in runs.
func (s *Store) SetKeywordActive(ctx context.Context, ownerID, id string, active bool) error {
	res, err := s.exec(ctx, s.db, s.sb.Update("keywords").
		Set("active", active).
		Where(sq.Eq{"user_id": ownerID, "id": id}))
	if err != nil {
		return fmt.Errorf("update keyword: %w", err)
	}
	return affectedOne(res)
}

// DeleteKeyword removes a rule.
func (s *Store) DeleteKeyword(ctx context.Context, ownerID, id string) error {
	res, err := s.exec(ctx, s.db, s.sb.Delete("keywords").Where(sq.Eq{"user_id": ownerID, "id": id}))
	if err != nil {
		return fmt.Errorf("delete keyword: %w", err)
	}
	return affectedOne(res)
}

// IncrementMatchCounts adds each delta to the rule's counter in one transaction.
// Each statement is a relative update so concurrent runs never lose increments.
// Rules deleted since the run loaded them are skipped.
func (s *Store) IncrementMatchCounts(ctx context.Context, ownerID string, deltas map[string]int) error {
	if len(deltas) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for id, delta := range deltas {
			if delta <= 0 {
				continue
			}
			if _, err := s.exec(ctx, tx, s.sb.Update("keywords").
				Set("match_count", sq.Expr("match_count + ?", delta)).
				Where(sq.Eq{"user_id": ownerID, "id": id})); err != nil {
				return fmt.Errorf("increment keyword %s: %w", id, err)
			}
		}
		return nil
	})
}
