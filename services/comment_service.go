package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/repository"
)

type CommentService struct {
	store *repository.Store
	log   *slog.Logger
}

func NewCommentService(store *repository.Store) *CommentService {
	return &CommentService{store: store, log: logger.With("component", "comments")}
}

func (s *CommentService) List(ctx context.Context, ownerID string, f repository.CommentFilter) ([]models.CommentView, error) {
	if err := validateCommentFilter(f); err != nil {
		return nil, err
	}
	comments, err := s.store.ListComments(ctx, ownerID, f)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.CommentView{}
	}
	return comments, nil
}

func validateCommentFilter(f repository.CommentFilter) error {
	if f.Status != "" && !f.Status.Valid() {
		return invalid("status", "must be pending, posted or failed")
	}
	if f.Platform != "" && !f.Platform.Valid() {
		return invalid("platform", "must be linkedin or twitter")
	}
	return nil
}

// UpdateStatus records the outcome of the external publishing step.
// Only pending drafts move, and only to posted or failed.
func (s *CommentService) UpdateStatus(ctx context.Context, ownerID, id, status string) (*models.CommentView, error) {
	next := models.CommentStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.Valid() {
		return nil, invalid("status", "must be pending, posted or failed")
	}

	current, err := s.store.GetComment(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	err = s.store.UpdateCommentStatus(ctx, ownerID, id, current.Status, next)
	if errors.Is(err, repository.ErrNotFound) {
		// someone else moved it first
		return nil, fmt.Errorf("%w: draft is no longer %s", ErrInvalidTransition, current.Status)
	}
	if err != nil {
		return nil, err
	}

	outcome := models.ActivitySuccess
	if next == models.CommentFailed {
		outcome = models.ActivityError
	}
	recordActivity(ctx, s.store, s.log, &models.ActivityEntry{
		OwnerID:  ownerID,
		Action:   models.ActionCommentStatusChanged,
		Platform: current.Platform,
		Target:   current.PostURL,
		Details:  fmt.Sprintf("%s -> %s", current.Status, next),
		Status:   outcome,
	})
	return s.store.GetComment(ctx, ownerID, id)
}

var csvHeader = []string{"id", "profile", "handle", "platform", "post_url", "status", "matched_terms", "content", "created_at"}

// ExportCSV writes the filtered drafts as CSV, header first.
func (s *CommentService) ExportCSV(ctx context.Context, ownerID string, f repository.CommentFilter, w io.Writer) error {
	f.Limit, f.Offset = 0, 0
	comments, err := s.List(ctx, ownerID, f)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range comments {
		if err := cw.Write([]string{
			c.ID,
			csvCell(c.ProfileName),
			csvCell(c.ProfileHandle),
			string(c.Platform),
			csvCell(c.PostURL),
			string(c.Status),
			csvCell(strings.Join(c.MatchedTerms, "; ")),
			csvCell(c.Content),
			c.CreatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvCell quotes values a spreadsheet would otherwise evaluate as a formula.
func csvCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}
