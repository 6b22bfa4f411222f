package services

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/repository"
)

const maxTermLength = 200

type KeywordService struct {
	store *repository.Store
	log   *slog.Logger
}

func NewKeywordService(store *repository.Store) *KeywordService {
	return &KeywordService{store: store, log: logger.With("component", "keywords")}
}

// Create validates and stores a new active rule.
func (s *KeywordService) Create(ctx context.Context, ownerID, term, operator string) (*models.KeywordRule, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid("term", "must not be empty")
	}
	if utf8.RuneCountInString(term) > maxTermLength {
		return nil, invalid("term", "must be at most %d characters", maxTermLength)
	}
	op, ok := models.ParseOperator(operator)
	if !ok {
		return nil, invalid("operator", "must be one of AND, OR, NOT")
	}

	k := &models.KeywordRule{OwnerID: ownerID, Term: term, Operator: op, Active: true}
	if err := s.store.CreateKeyword(ctx, k); err != nil {
		return nil, err
	}
	recordActivity(ctx, s.store, s.log, &models.ActivityEntry{
		OwnerID: ownerID,
		Action:  models.ActionKeywordAdded,
		Target:  term,
		Details: string(op),
		Status:  models.ActivitySuccess,
	})
	return k, nil
}

func (s *KeywordService) List(ctx context.Context, ownerID string, f repository.KeywordFilter) ([]models.KeywordRule, error) {
	if f.Operator != "" {
		op, ok := models.ParseOperator(string(f.Operator))
		if !ok {
			return nil, invalid("operator", "must be one of AND, OR, NOT")
		}
		f.Operator = op
	}
	rules, err := s.store.ListKeywords(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []models.KeywordRule{}
	}
	return rules, nil
}

// SetActive toggles a rule and returns its new state.
func (s *KeywordService) SetActive(ctx context.Context, ownerID, id string, active bool) (*models.KeywordRule, error) {
	if err := s.store.SetKeywordActive(ctx, ownerID, id, active); err != nil {
		return nil, err
	}
	return s.store.GetKeyword(ctx, ownerID, id)
}

// Delete removes a rule for good.
func (s *KeywordService) Delete(ctx context.Context, ownerID, id string) error {
	k, err := s.store.GetKeyword(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteKeyword(ctx, ownerID, id); err != nil {
		return err
	}
	recordActivity(ctx, s.store, s.log, &models.ActivityEntry{
		OwnerID: ownerID,
		Action:  models.ActionKeywordRemoved,
		Target:  k.Term,
		Status:  models.ActivitySuccess,
	})
	return nil
}

// recordActivity writes a history entry; failures are only logged.
func recordActivity(ctx context.Context, store *repository.Store, log *slog.Logger, e *models.ActivityEntry) {
	if err := store.AddActivity(ctx, e); err != nil {
		log.Warn("recording activity failed", "action", e.Action, "owner_id", e.OwnerID, "error", err)
	}
}
