package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment_monitor/db"
	"comment_monitor/models"
	"comment_monitor/repository"
)

func newSQLiteStore(t *testing.T) *repository.Store {
	t.Helper()
	conn, err := db.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(context.Background(), conn, "sqlite"))
	return repository.New(conn, "sqlite")
}

func TestKeywordServiceValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewKeywordService(newSQLiteStore(t))

	k, err := svc.Create(ctx, "owner", "  machine learning ", "or")
	require.NoError(t, err)
	assert.Equal(t, "machine learning", k.Term)
	assert.Equal(t, models.OperatorOr, k.Operator)
	assert.True(t, k.Active)

	var verr *ValidationError
	_, err = svc.Create(ctx, "owner", "   ", "AND")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "term", verr.Field)

	_, err = svc.Create(ctx, "owner", "ai", "XOR")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "operator", verr.Field)

	toggled, err := svc.SetActive(ctx, "owner", k.ID, false)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	require.NoError(t, svc.Delete(ctx, "owner", k.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "owner", k.ID), ErrNotFound)

	rules, err := svc.List(ctx, "owner", repository.KeywordFilter{})
	require.NoError(t, err)
	assert.Empty(t, rules)
	assert.NotNil(t, rules)
}

func TestProfileServiceLimitAndDuplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newSQLiteStore(t)
	svc := NewProfileService(store, 2)

	p, err := svc.Create(ctx, "owner", ProfileInput{DisplayName: "Ana Lima", Handle: "@analima", Platform: "LinkedIn"})
	require.NoError(t, err)
	assert.Equal(t, "analima", p.Handle)
	assert.Equal(t, models.PlatformLinkedIn, p.Platform)
	assert.Equal(t, models.ProfileActive, p.Status)

	_, err = svc.Create(ctx, "owner", ProfileInput{DisplayName: "Ana again", Handle: "analima", Platform: "linkedin"})
	assert.ErrorIs(t, err, ErrDuplicateProfile)

	_, err = svc.Create(ctx, "owner", ProfileInput{DisplayName: "Bob", Handle: "bob", Platform: "twitter", Status: "paused"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "owner", ProfileInput{DisplayName: "Carl", Handle: "carl", Platform: "twitter"})
	assert.ErrorIs(t, err, ErrLimitReached)

	var verr *ValidationError
	_, err = svc.Create(ctx, "other", ProfileInput{DisplayName: "X", Handle: "x", Platform: "myspace"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "platform", verr.Field)

	updated, err := svc.UpdateStatus(ctx, "owner", p.ID, "inactive")
	require.NoError(t, err)
	assert.Equal(t, models.ProfileInactive, updated.Status)

	require.NoError(t, svc.Delete(ctx, "owner", p.ID))
	history, err := store.ListActivity(ctx, "owner", repository.ActivityFilter{Action: models.ActionProfileRemoved})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "@analima", history[0].Target)
}

func TestCommentServiceTransitionsAndExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newSQLiteStore(t)
	profiles := NewProfileService(store, 50)
	svc := NewCommentService(store)

	p, err := profiles.Create(ctx, "owner", ProfileInput{DisplayName: "Ana", Handle: "ana", Platform: "linkedin"})
	require.NoError(t, err)
	inserted, _, err := store.InsertDrafts(ctx, "owner", p.ID, []models.CommentDraft{
		{Content: "ai: great, Ana", PostURL: "https://linkedin.com/ana/posts/1", MatchedTerms: []string{"ai", "ml"}},
		{Content: "second", PostURL: "https://linkedin.com/ana/posts/2"},
	})
	require.NoError(t, err)
	id := inserted[0].ID

	posted, err := svc.UpdateStatus(ctx, "owner", id, "posted")
	require.NoError(t, err)
	assert.Equal(t, models.CommentPosted, posted.Status)

	_, err = svc.UpdateStatus(ctx, "owner", id, "failed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateStatus(ctx, "owner", inserted[1].ID, "pending")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateStatus(ctx, "owner", "missing", "posted")
	assert.ErrorIs(t, err, ErrNotFound)

	pending, err := svc.List(ctx, "owner", repository.CommentFilter{Status: models.CommentPending})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, "owner", repository.CommentFilter{Status: models.CommentPosted}, &buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{id, "Ana", "ana", "linkedin", "https://linkedin.com/ana/posts/1", "posted", "ai; ml", "ai: great, Ana"}, records[1][:8])
}

func TestExportCSVNeutralizesFormulas(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newSQLiteStore(t)
	profiles := NewProfileService(store, 50)
	svc := NewCommentService(store)

	p, err := profiles.Create(ctx, "owner", ProfileInput{DisplayName: "=HYPERLINK(\"http://x\")", Handle: "ana", Platform: "linkedin"})
	require.NoError(t, err)
	_, _, err = store.InsertDrafts(ctx, "owner", p.ID, []models.CommentDraft{
		{Content: "+1 on this", PostURL: "https://linkedin.com/ana/posts/1", MatchedTerms: []string{"-ai"}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, "owner", repository.CommentFilter{}, &buf))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, `'=HYPERLINK("http://x")`, row[1])
	assert.Equal(t, "'-ai", row[6])
	assert.Equal(t, "'+1 on this", row[7])
}

func TestCSVCell(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":         "",
		"plain":    "plain",
		"=1+1":     "'=1+1",
		"+cmd":     "'+cmd",
		"-2":       "'-2",
		"@SUM(A1)": "'@SUM(A1)",
		"\tindent": "'\tindent",
		"mid=dle":  "mid=dle",
	}
	for in, want := range cases {
		assert.Equal(t, want, csvCell(in), in)
	}
}

func TestSettingsServiceDefaultsAndValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewSettingsService(newSQLiteStore(t), 40)

	st, err := svc.Get(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings("owner", 40), *st)

	st.Tone = "Friendly"
	st.MaxLength = 500
	saved, err := svc.Save(ctx, "owner", *st)
	require.NoError(t, err)
	assert.Equal(t, models.ToneFriendly, saved.Tone)

	got, err := svc.Get(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, 500, got.MaxLength)

	bad := []func(s *models.OwnerSettings){
		func(s *models.OwnerSettings) { s.Tone = "sarcastic" },
		func(s *models.OwnerSettings) { s.Language = "fr-FR" },
		func(s *models.OwnerSettings) { s.MaxLength = 10 },
		func(s *models.OwnerSettings) { s.Creativity = 101 },
		func(s *models.OwnerSettings) { s.DailyLimit = 0 },
		func(s *models.OwnerSettings) { s.Timezone = "Mars/Olympus" },
		func(s *models.OwnerSettings) { s.Notifications = true; s.TelegramChatID = 0 },
	}
	for i, mutate := range bad {
		candidate := *got
		mutate(&candidate)
		_, err := svc.Save(ctx, "owner", candidate)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "case %d", i)
	}
}

func TestReportService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newSQLiteStore(t)
	reports := NewReportService(store)
	keywords := NewKeywordService(store)
	profiles := NewProfileService(store, 50)

	p, err := profiles.Create(ctx, "owner", ProfileInput{DisplayName: "Ana", Handle: "ana", Platform: "twitter"})
	require.NoError(t, err)
	k, err := keywords.Create(ctx, "owner", "ai", "OR")
	require.NoError(t, err)
	_, err = keywords.Create(ctx, "owner", "never", "OR")
	require.NoError(t, err)
	require.NoError(t, store.IncrementMatchCounts(ctx, "owner", map[string]int{k.ID: 4}))
	_, _, err = store.InsertDrafts(ctx, "owner", p.ID, []models.CommentDraft{{Content: "a", PostURL: "1"}, {Content: "b", PostURL: "2"}})
	require.NoError(t, err)

	r, err := reports.Build(ctx, "owner", 7)
	require.NoError(t, err)
	assert.Equal(t, 2, r.TotalComments)
	assert.Equal(t, 2, r.ByPlatform[models.PlatformTwitter])
	require.Len(t, r.TopKeywords, 1)
	assert.EqualValues(t, 4, r.TopKeywords[0].MatchCount)
	require.Len(t, r.Profiles, 1)
	assert.Equal(t, 2, r.Profiles[0].Comments)

	_, err = reports.Build(ctx, "owner", 14)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestHistoryService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newSQLiteStore(t)
	_, err := NewKeywordService(store).Create(ctx, "owner", "golang", "AND")
	require.NoError(t, err)

	svc := NewHistoryService(store)
	entries, err := svc.List(ctx, "owner", repository.ActivityFilter{Search: "gol"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionKeywordAdded, entries[0].Action)

	_, err = svc.List(ctx, "owner", repository.ActivityFilter{Status: "weird"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
