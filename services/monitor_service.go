package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"comment_monitor/config"
	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/utils"
)

const (
	flushTimeout  = 10 * time.Second
	notifyTimeout = 10 * time.Second

	msgCancelled = "run cancelled before profile was processed"
)

// MonitorOptions tunes a MonitorService. Zero values take the defaults
// of the monitor config section.
type MonitorOptions struct {
	Concurrency       int
	SampleTimeout     time.Duration
	MaxPostsPerRun    int
	DefaultDailyLimit int
}

// MonitorOptionsFromConfig reads the monitor and limits sections.
func MonitorOptionsFromConfig(cfg *config.Config) MonitorOptions {
	return MonitorOptions{
		Concurrency:       cfg.Monitor.Concurrency,
		SampleTimeout:     cfg.SampleTimeout(),
		MaxPostsPerRun:    cfg.Monitor.MaxPostsPerRun,
		DefaultDailyLimit: cfg.Limits.DefaultDailyLimit,
	}
}

// MonitorService runs monitoring for one owner: load, sample, evaluate,
// draft, persist and report.
type MonitorService struct {
	store    MonitorStore
	sampler  ActivitySampler
	drafter  *Drafter
	notifier Notifier
	opts     MonitorOptions
	now      func() time.Time
	log      *slog.Logger

	slotsMu sync.Mutex
	slots   map[string]chan struct{} // one run per owner at a time
}

func NewMonitorService(store MonitorStore, sampler ActivitySampler, drafter *Drafter, opts MonitorOptions) *MonitorService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.SampleTimeout <= 0 {
		opts.SampleTimeout = 10 * time.Second
	}
	if drafter == nil {
		drafter = NewDrafter(nil)
	}
	return &MonitorService{
		store:   store,
		sampler: sampler,
		drafter: drafter,
		opts:    opts,
		now:     time.Now,
		log:     logger.With("component", "monitor"),
		slots:   make(map[string]chan struct{}),
	}
}

// acquireSlot waits until no other run of ownerID is in progress in this
// process, so each run sees the drafts of the previous one when it reads
// the daily usage.
func (m *MonitorService) acquireSlot(ctx context.Context, ownerID string) (func(), error) {
	m.slotsMu.Lock()
	slot, ok := m.slots[ownerID]
	if !ok {
		slot = make(chan struct{}, 1)
		m.slots[ownerID] = slot
	}
	m.slotsMu.Unlock()

	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SetNotifier enables run notifications.
func (m *MonitorService) SetNotifier(n Notifier) {
	m.notifier = n
}

// runState is shared by the profile workers of one run.
type runState struct {
	ownerID  string
	rules    []models.KeywordRule
	settings models.OwnerSettings
	quota    *dailyQuota

	mu     sync.Mutex
	deltas map[string]int
}

func (rs *runState) merge(local map[string]int) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for id, n := range local {
		rs.deltas[id] += n
	}
}

// profileOutcome is what one worker reports back. err is nil on success.
type profileOutcome struct {
	activity models.ProfileActivity
	err      error
}

// Run executes one monitoring run for ownerID.
//
// A returned error means the run did not start: ErrUnauthorized or a
// *LoadError, and nothing was written. Otherwise the summary is always
// returned and per-profile failures are listed in its Errors. Cancelling
// ctx stops further sampler, drafter and persist calls; profiles already
// committed stay committed.
func (m *MonitorService) Run(ctx context.Context, ownerID string) (*models.MonitorSummary, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	log := m.log.With("owner_id", ownerID)

	release, err := m.acquireSlot(ctx, ownerID)
	if err != nil {
		log.Warn("monitoring run not started, another run is still in progress", "error", err)
		return nil, &LoadError{What: "run slot", Err: err}
	}
	defer release()
	started := m.now().UTC()

	profiles, rs, err := m.load(ctx, ownerID)
	if err != nil {
		log.Error("monitoring run aborted", "error", err)
		return nil, err
	}
	log.Info("monitoring run started", "profiles", len(profiles), "rules", len(rs.rules))

	outcomes := make([]profileOutcome, len(profiles))
	for i, p := range profiles {
		outcomes[i].activity = models.ProfileActivity{
			ProfileID:      p.ID,
			ProfileName:    p.DisplayName,
			Platform:       p.Platform,
			KeywordMatches: []string{},
		}
	}

	var g errgroup.Group
	g.SetLimit(m.opts.Concurrency)
	for i := range profiles {
		if ctx.Err() != nil {
			for j := i; j < len(profiles); j++ {
				outcomes[j].err = errors.New(msgCancelled)
			}
			break
		}
		g.Go(func() error {
			outcomes[i].err = m.processProfile(ctx, rs, profiles[i], &outcomes[i].activity)
			return nil
		})
	}
	_ = g.Wait()

	summary := &models.MonitorSummary{
		MonitoredProfiles: len(profiles),
		ActivitySummary:   make([]models.ProfileActivity, 0, len(profiles)),
		Errors:            []models.RunError{},
		StartedAt:         started,
	}
	for _, o := range outcomes {
		summary.ActivitySummary = append(summary.ActivitySummary, o.activity)
		summary.DraftsCreated += o.activity.DraftsCreated
		if o.err != nil {
			summary.Errors = append(summary.Errors, models.RunError{ProfileID: o.activity.ProfileID, Message: o.err.Error()})
		}
	}

	// committed drafts keep their counters even if the caller is gone
	bg := context.WithoutCancel(ctx)
	if err := m.flushCounters(bg, rs); err != nil {
		log.Error("match count update failed", "error", err)
		summary.Errors = append(summary.Errors, models.RunError{Message: err.Error()})
	}
	summary.FinishedAt = m.now().UTC()

	m.recordRun(bg, ownerID, summary)
	m.notify(bg, rs.settings, summary)

	log.Info("monitoring run finished",
		"profiles", summary.MonitoredProfiles,
		"drafts", summary.DraftsCreated,
		"errors", len(summary.Errors),
		"cost", summary.FinishedAt.Sub(started).String())
	return summary, nil
}

func (m *MonitorService) load(ctx context.Context, ownerID string) ([]models.MonitoredProfile, *runState, error) {
	profiles, err := m.store.ListActiveProfiles(ctx, ownerID)
	if err != nil {
		return nil, nil, &LoadError{What: "profiles", Err: err}
	}
	rules, err := m.store.ListActiveKeywords(ctx, ownerID)
	if err != nil {
		return nil, nil, &LoadError{What: "keyword rules", Err: err}
	}

	settings := models.DefaultSettings(ownerID, m.opts.DefaultDailyLimit)
	stored, err := m.store.GetSettings(ctx, ownerID)
	switch {
	case err == nil:
		settings = *stored
	case !errors.Is(err, ErrNotFound):
		return nil, nil, &LoadError{What: "settings", Err: err}
	}

	used, err := m.store.CountCommentsSince(ctx, ownerID, startOfDay(m.now(), settings.Location()))
	if err != nil {
		return nil, nil, &LoadError{What: "daily usage", Err: err}
	}

	return profiles, &runState{
		ownerID:  ownerID,
		rules:    rules,
		settings: settings,
		quota:    newDailyQuota(settings.DailyLimit, used),
		deltas:   make(map[string]int),
	}, nil
}

// processProfile samples, evaluates, drafts and persists one profile.
// Its counter increments reach rs only after the batch is committed.
func (m *MonitorService) processProfile(ctx context.Context, rs *runState, p models.MonitoredProfile, act *models.ProfileActivity) error {
	if ctx.Err() != nil {
		return errors.New(msgCancelled)
	}
	log := m.log.With("owner_id", rs.ownerID, "profile_id", p.ID)

	sctx, cancel := context.WithTimeout(ctx, m.opts.SampleTimeout)
	sample, err := m.sampler.Sample(sctx, p)
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("timed out after %s: %w", m.opts.SampleTimeout, err)
		}
		log.Warn("sampling failed, skipping profile", "error", err)
		return &SampleError{ProfileID: p.ID, Err: err}
	}

	posts := sample.Posts
	if m.opts.MaxPostsPerRun > 0 && len(posts) > m.opts.MaxPostsPerRun {
		posts = posts[:m.opts.MaxPostsPerRun]
	}
	act.NewPosts = len(posts)

	var (
		drafts   []models.CommentDraft
		ruleIDs  = make(map[string][]string) // post url -> rules that matched it
		reserved int
		matched  []string
	)
	for _, post := range posts {
		if ctx.Err() != nil {
			rs.quota.release(reserved)
			return fmt.Errorf("run cancelled while drafting: %w", ctx.Err())
		}

		result := Evaluate(rs.rules, post.Text)
		if !result.IsMatch {
			continue
		}
		act.MatchedPosts++
		matched = append(matched, result.MatchedTerms...)

		if !rs.quota.reserve() {
			act.SkippedByLimit++
			continue
		}
		draft := m.drafter.Draft(ctx, p, post, result.MatchedTerms, rs.settings)
		if draft == nil {
			rs.quota.release(1)
			continue
		}
		reserved++
		drafts = append(drafts, *draft)
		if _, ok := ruleIDs[draft.PostURL]; !ok {
			ruleIDs[draft.PostURL] = result.MatchedRuleIDs
		}
	}
	act.KeywordMatches = utils.DeduplicateFold(matched)

	if len(drafts) == 0 {
		return nil
	}
	if ctx.Err() != nil {
		rs.quota.release(reserved)
		return fmt.Errorf("run cancelled before persisting: %w", ctx.Err())
	}

	inserted, skipped, err := m.store.InsertDrafts(ctx, rs.ownerID, p.ID, drafts)
	if err != nil {
		rs.quota.release(reserved)
		log.Error("persisting drafts failed, batch dropped", "drafts", len(drafts), "error", err)
		return &PersistError{ProfileID: p.ID, Err: err}
	}
	rs.quota.release(reserved - len(inserted))

	local := make(map[string]int)
	for _, d := range inserted {
		for _, id := range ruleIDs[d.PostURL] {
			local[id]++
		}
	}
	rs.merge(local)

	act.DraftsCreated = len(inserted)
	act.DuplicatesSkipped = skipped
	log.Debug("profile processed", "posts", act.NewPosts, "drafts", act.DraftsCreated, "duplicates", skipped)
	return nil
}

func (m *MonitorService) flushCounters(ctx context.Context, rs *runState) error {
	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()
	if err := m.store.IncrementMatchCounts(ctx, rs.ownerID, rs.deltas); err != nil {
		return fmt.Errorf("update match counts: %w", err)
	}
	return nil
}

func (m *MonitorService) recordRun(ctx context.Context, ownerID string, summary *models.MonitorSummary) {
	details, _ := json.Marshal(map[string]int{
		"monitored_profiles": summary.MonitoredProfiles,
		"drafts_created":     summary.DraftsCreated,
		"errors":             len(summary.Errors),
	})
	status := models.ActivitySuccess
	if len(summary.Errors) > 0 {
		status = models.ActivityError
	}

	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()
	if err := m.store.AddActivity(ctx, &models.ActivityEntry{
		OwnerID: ownerID,
		Action:  models.ActionRunCompleted,
		Target:  fmt.Sprintf("%d profiles", summary.MonitoredProfiles),
		Details: string(details),
		Status:  status,
	}); err != nil {
		m.log.Warn("recording run history failed", "owner_id", ownerID, "error", err)
	}
}

func (m *MonitorService) notify(ctx context.Context, st models.OwnerSettings, summary *models.MonitorSummary) {
	if m.notifier == nil || summary.DraftsCreated == 0 || !st.Notifications || st.TelegramChatID == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := m.notifier.NotifyRun(ctx, st.TelegramChatID, summary); err != nil {
		m.log.Warn("run notification failed", "owner_id", st.OwnerID, "error", err)
	}
}

func startOfDay(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	y, mo, d := local.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, loc)
}
