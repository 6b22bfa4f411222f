package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"comment_monitor/models"
	"comment_monitor/repository"
)

type fakeStore struct {
	mu sync.Mutex

	profiles []models.MonitoredProfile
	rules    []models.KeywordRule
	settings *models.OwnerSettings
	used     int

	loadErr      error
	insertErr    map[string]error
	incrementErr error

	drafts     map[string]map[string]models.CommentDraft // profile -> post url -> draft
	counts     map[string]int
	increments int
	activity   []models.ActivityEntry
}

func newFakeStore(profiles ...models.MonitoredProfile) *fakeStore {
	return &fakeStore{
		profiles:  profiles,
		insertErr: map[string]error{},
		drafts:    map[string]map[string]models.CommentDraft{},
		counts:    map[string]int{},
	}
}

func (f *fakeStore) ListActiveProfiles(context.Context, string) ([]models.MonitoredProfile, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.profiles, nil
}

func (f *fakeStore) ListActiveKeywords(context.Context, string) ([]models.KeywordRule, error) {
	return f.rules, nil
}

func (f *fakeStore) GetSettings(context.Context, string) (*models.OwnerSettings, error) {
	if f.settings == nil {
		return nil, repository.ErrNotFound
	}
	st := *f.settings
	return &st, nil
}

func (f *fakeStore) CountCommentsSince(context.Context, string, time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.used
	for _, byURL := range f.drafts {
		n += len(byURL)
	}
	return n, nil
}

func (f *fakeStore) InsertDrafts(_ context.Context, ownerID, profileID string, drafts []models.CommentDraft) ([]models.CommentDraft, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.insertErr[profileID]; err != nil {
		return nil, 0, err
	}
	if f.drafts[profileID] == nil {
		f.drafts[profileID] = map[string]models.CommentDraft{}
	}
	var inserted []models.CommentDraft
	skipped := 0
	for _, d := range drafts {
		if _, ok := f.drafts[profileID][d.PostURL]; ok {
			skipped++
			continue
		}
		d.OwnerID, d.ProfileID = ownerID, profileID
		f.drafts[profileID][d.PostURL] = d
		inserted = append(inserted, d)
	}
	return inserted, skipped, nil
}

func (f *fakeStore) IncrementMatchCounts(_ context.Context, _ string, deltas map[string]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.increments++
	for id, n := range deltas {
		f.counts[id] += n
	}
	return nil
}

func (f *fakeStore) AddActivity(_ context.Context, e *models.ActivityEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activity = append(f.activity, *e)
	return nil
}

func (f *fakeStore) draftCount(profileID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.drafts[profileID])
}

type sampleFunc func(ctx context.Context, p models.MonitoredProfile) (models.ActivitySample, error)

// fakeSampler answers per profile id; unknown profiles have no posts.
type fakeSampler struct {
	byProfile map[string]sampleFunc
	calls     atomic.Int32
}

func (s *fakeSampler) Sample(ctx context.Context, p models.MonitoredProfile) (models.ActivitySample, error) {
	s.calls.Add(1)
	if fn, ok := s.byProfile[p.ID]; ok {
		return fn(ctx, p)
	}
	return models.ActivitySample{}, nil
}

func posts(texts ...string) sampleFunc {
	return func(context.Context, models.MonitoredProfile) (models.ActivitySample, error) {
		out := make([]models.SampledPost, 0, len(texts))
		for _, t := range texts {
			out = append(out, models.SampledPost{Text: t})
		}
		return models.ActivitySample{Posts: out, SampledAt: time.Now()}, nil
	}
}

func profile(id string) models.MonitoredProfile {
	return models.MonitoredProfile{
		ID: id, OwnerID: "owner", DisplayName: "Person " + id, Handle: "handle" + id,
		Platform: models.PlatformLinkedIn, Status: models.ProfileActive,
	}
}

type recordingNotifier struct {
	mu    sync.Mutex
	chats []int64
}

func (n *recordingNotifier) NotifyRun(_ context.Context, chatID int64, _ *models.MonitorSummary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chats = append(n.chats, chatID)
	return nil
}

func newTestMonitor(store MonitorStore, sampler ActivitySampler, concurrency int) *MonitorService {
	return NewMonitorService(store, sampler, NewDrafter(nil), MonitorOptions{
		Concurrency:       concurrency,
		SampleTimeout:     time.Second,
		DefaultDailyLimit: 100,
	})
}

func errorFor(summary *models.MonitorSummary, profileID string) string {
	for _, e := range summary.Errors {
		if e.ProfileID == profileID {
			return e.Message
		}
	}
	return ""
}

func TestRunSamplerFailureSkipsOnlyThatProfile(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"), profile("p2"), profile("p3"))
	store.rules = []models.KeywordRule{rule("k1", "ia", models.OperatorAnd)}
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"p1": posts("Adoramos IA aplicada"),
		"p2": func(context.Context, models.MonitoredProfile) (models.ActivitySample, error) {
			return models.ActivitySample{}, errors.New("feed unavailable")
		},
		"p3": posts("IA generativa", "nada a ver"),
	}}

	summary, err := newTestMonitor(store, sampler, 3).Run(context.Background(), "owner")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.MonitoredProfiles)
	assert.Equal(t, 2, summary.DraftsCreated)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "p2", summary.Errors[0].ProfileID)
	assert.Contains(t, summary.Errors[0].Message, "feed unavailable")

	require.Len(t, summary.ActivitySummary, 3)
	assert.Equal(t, "p1", summary.ActivitySummary[0].ProfileID)
	assert.Equal(t, []string{"ia"}, summary.ActivitySummary[0].KeywordMatches)
	assert.Equal(t, 2, summary.ActivitySummary[2].NewPosts)
	assert.Empty(t, summary.ActivitySummary[1].KeywordMatches)

	assert.Equal(t, 1, store.draftCount("p1"))
	assert.Equal(t, 0, store.draftCount("p2"))
	assert.Equal(t, 1, store.draftCount("p3"))
	assert.Equal(t, 2, store.counts["k1"])
	assert.Equal(t, 1, store.increments, "counters are flushed once per run")
}

func TestRunPersistFailureDropsOnlyThatBatch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"), profile("p2"), profile("p3"))
	store.rules = []models.KeywordRule{rule("k1", "cloud", models.OperatorOr)}
	store.insertErr["p3"] = errors.New("disk full")
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"p1": posts("cloud costs"),
		"p2": posts("multi-cloud strategy"),
		"p3": posts("cloud native"),
	}}

	summary, err := newTestMonitor(store, sampler, 2).Run(context.Background(), "owner")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.DraftsCreated)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "p3", summary.Errors[0].ProfileID)
	assert.Contains(t, summary.Errors[0].Message, "disk full")
	assert.Equal(t, 0, summary.ActivitySummary[2].DraftsCreated)
	assert.Equal(t, 2, store.counts["k1"], "the dropped batch does not count")
}

func TestRunDoesNotDuplicateDrafts(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	store.rules = []models.KeywordRule{rule("k1", "golang", models.OperatorOr)}
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"p1": posts("Golang generics", "golang generics", "Golang 1.24 is out"),
	}}
	m := newTestMonitor(store, sampler, 1)

	first, err := m.Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, 3, first.DraftsCreated)

	second, err := m.Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Zero(t, second.DraftsCreated)
	assert.Equal(t, 3, second.ActivitySummary[0].DuplicatesSkipped)
	assert.Equal(t, 3, store.draftCount("p1"))
	assert.Equal(t, 3, store.counts["k1"], "duplicates do not count twice")
}

func TestRunLoadFailureAbortsWithoutWrites(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	store.loadErr = errors.New("connection refused")
	sampler := &fakeSampler{}

	summary, err := newTestMonitor(store, sampler, 1).Run(context.Background(), "owner")
	require.Error(t, err)
	assert.Nil(t, summary)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "profiles", loadErr.What)
	assert.Zero(t, sampler.calls.Load())
	assert.Empty(t, store.activity)
	assert.Zero(t, store.increments)
}

func TestRunRequiresOwner(t *testing.T) {
	_, err := newTestMonitor(newFakeStore(), &fakeSampler{}, 1).Run(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRunSamplerTimeout(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("slow"), profile("fast"))
	store.rules = []models.KeywordRule{rule("k1", "ai", models.OperatorOr)}
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"slow": func(ctx context.Context, _ models.MonitoredProfile) (models.ActivitySample, error) {
			<-ctx.Done()
			return models.ActivitySample{}, ctx.Err()
		},
		"fast": posts("AI news"),
	}}
	m := NewMonitorService(store, sampler, nil, MonitorOptions{Concurrency: 2, SampleTimeout: 50 * time.Millisecond})

	summary, err := m.Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DraftsCreated)
	assert.Contains(t, errorFor(summary, "slow"), "timed out")
}

func TestRunCancellationStopsFurtherWork(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newFakeStore(profile("p1"), profile("p2"), profile("p3"))
	store.rules = []models.KeywordRule{rule("k1", "ai", models.OperatorOr)}
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"p1": func(context.Context, models.MonitoredProfile) (models.ActivitySample, error) {
			cancel()
			return posts("AI post")(ctx, models.MonitoredProfile{})
		},
		"p2": posts("AI post"),
		"p3": posts("AI post"),
	}}

	summary, err := newTestMonitor(store, sampler, 1).Run(ctx, "owner")
	require.NoError(t, err)

	assert.Zero(t, summary.DraftsCreated)
	assert.Len(t, summary.Errors, 3)
	for _, id := range []string{"p1", "p2", "p3"} {
		assert.Contains(t, errorFor(summary, id), "cancelled", id)
		assert.Zero(t, store.draftCount(id))
	}
	assert.EqualValues(t, 1, sampler.calls.Load(), "no sampling after cancellation")
}

func TestRunRespectsDailyLimit(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	st := models.DefaultSettings("owner", 3)
	store.settings = &st
	store.used = 1
	store.rules = []models.KeywordRule{rule("k1", "ai", models.OperatorOr)}
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"p1": posts("AI one", "AI two", "AI three", "AI four"),
	}}

	summary, err := newTestMonitor(store, sampler, 1).Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.DraftsCreated)
	assert.Equal(t, 2, summary.ActivitySummary[0].SkippedByLimit)
	assert.Equal(t, 4, summary.ActivitySummary[0].MatchedPosts)
}

func TestConcurrentRunsShareDailyLimit(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	st := models.DefaultSettings("owner", 1)
	store.settings = &st
	store.rules = []models.KeywordRule{rule("k1", "ai", models.OperatorOr)}

	var seq atomic.Int32
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"p1": func(context.Context, models.MonitoredProfile) (models.ActivitySample, error) {
			n := seq.Add(1)
			time.Sleep(20 * time.Millisecond)
			return models.ActivitySample{Posts: []models.SampledPost{
				{Text: "AI update", URL: fmt.Sprintf("https://linkedin.com/p/%d", n)},
			}}, nil
		},
	}}
	m := newTestMonitor(store, sampler, 1)

	summaries := make([]*models.MonitorSummary, 2)
	var wg sync.WaitGroup
	for i := range summaries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			summary, err := m.Run(context.Background(), "owner")
			assert.NoError(t, err)
			summaries[i] = summary
		}()
	}
	wg.Wait()

	require.NotNil(t, summaries[0])
	require.NotNil(t, summaries[1])
	assert.Equal(t, 1, store.draftCount("p1"))
	assert.Equal(t, 1, summaries[0].DraftsCreated+summaries[1].DraftsCreated)
	assert.Equal(t, 1, summaries[0].ActivitySummary[0].SkippedByLimit+summaries[1].ActivitySummary[0].SkippedByLimit)
}

func TestRunWaitingForSlotHonoursDeadline(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	entered := make(chan struct{})
	unblock := make(chan struct{})
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{
		"p1": func(context.Context, models.MonitoredProfile) (models.ActivitySample, error) {
			close(entered)
			<-unblock
			return models.ActivitySample{}, nil
		},
	}}
	m := NewMonitorService(store, sampler, nil, MonitorOptions{Concurrency: 1, SampleTimeout: 5 * time.Second})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := m.Run(context.Background(), "owner")
		assert.NoError(t, err)
	}()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := m.Run(ctx, "owner")
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(unblock)
	<-done
}

func TestAcquireSlotIsPerOwner(t *testing.T) {
	t.Parallel()

	m := newTestMonitor(newFakeStore(), &fakeSampler{}, 1)
	releaseA, err := m.acquireSlot(context.Background(), "a")
	require.NoError(t, err)

	releaseB, err := m.acquireSlot(context.Background(), "b")
	require.NoError(t, err)
	releaseB()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.acquireSlot(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)

	releaseA()
	again, err := m.acquireSlot(context.Background(), "a")
	require.NoError(t, err)
	again()
}

func TestRunBoundsConcurrency(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var inFlight, peak atomic.Int32
	slow := func(context.Context, models.MonitoredProfile) (models.ActivitySample, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		return models.ActivitySample{}, nil
	}

	var profiles []models.MonitoredProfile
	byProfile := map[string]sampleFunc{}
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		profiles = append(profiles, profile(id))
		byProfile[id] = slow
	}
	store := newFakeStore(profiles...)

	summary, err := newTestMonitor(store, &fakeSampler{byProfile: byProfile}, 2).Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, 6, summary.MonitoredProfiles)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunWithEmptyRuleSetDraftsNothing(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{"p1": posts("anything", "else")}}

	summary, err := newTestMonitor(store, sampler, 1).Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Zero(t, summary.DraftsCreated)
	assert.Equal(t, 2, summary.ActivitySummary[0].NewPosts)
	assert.Empty(t, summary.Errors)
}

func TestRunCounterFlushFailureIsReported(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	store.rules = []models.KeywordRule{rule("k1", "ai", models.OperatorOr)}
	store.incrementErr = errors.New("deadlock")
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{"p1": posts("AI")}}

	summary, err := newTestMonitor(store, sampler, 1).Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DraftsCreated)
	require.Len(t, summary.Errors, 1)
	assert.Empty(t, summary.Errors[0].ProfileID)
	assert.True(t, strings.HasPrefix(summary.Errors[0].Message, "update match counts"))

	require.Len(t, store.activity, 1)
	assert.Equal(t, models.ActionRunCompleted, store.activity[0].Action)
	assert.Equal(t, models.ActivityError, store.activity[0].Status)
}

func TestRunNotifiesOwner(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newFakeStore(profile("p1"))
	st := models.DefaultSettings("owner", 10)
	st.Notifications = true
	st.TelegramChatID = 777
	store.settings = &st
	store.rules = []models.KeywordRule{rule("k1", "ai", models.OperatorOr)}
	sampler := &fakeSampler{byProfile: map[string]sampleFunc{"p1": posts("AI")}}

	notifier := &recordingNotifier{}
	m := newTestMonitor(store, sampler, 1)
	m.SetNotifier(notifier)

	_, err := m.Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, []int64{777}, notifier.chats)

	// nothing new, nothing sent
	_, err = m.Run(context.Background(), "owner")
	require.NoError(t, err)
	assert.Len(t, notifier.chats, 1)
}
