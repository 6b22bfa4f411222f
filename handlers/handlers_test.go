package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment_monitor/db"
	"comment_monitor/models"
	"comment_monitor/repository"
	"comment_monitor/services"
)

const testToken = "secret-token"

type samplerFunc func(ctx context.Context, p models.MonitoredProfile) (models.ActivitySample, error)

func (f samplerFunc) Sample(ctx context.Context, p models.MonitoredProfile) (models.ActivitySample, error) {
	return f(ctx, p)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testAPI struct {
	t   *testing.T
	srv *httptest.Server
}

func newTestAPI(t *testing.T, sampler services.ActivitySampler) *testAPI {
	t.Helper()
	conn, err := db.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(context.Background(), conn, "sqlite"))

	store := repository.New(conn, "sqlite")
	h := &Handler{
		Monitor: services.NewMonitorService(store, sampler, services.NewDrafter(nil), services.MonitorOptions{
			Concurrency:       2,
			SampleTimeout:     time.Second,
			DefaultDailyLimit: 100,
		}),
		Keywords:   services.NewKeywordService(store),
		Profiles:   services.NewProfileService(store, 2),
		Comments:   services.NewCommentService(store),
		Settings:   services.NewSettingsService(store, 100),
		Reports:    services.NewReportService(store),
		History:    services.NewHistoryService(store),
		Auth:       services.NewStaticAuthenticator(map[string]string{testToken: "owner-1"}),
		CORSOrigin: "https://app.example.com",
		RunTimeout: 5 * time.Second,
	}
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return &testAPI{t: t, srv: srv}
}

func (a *testAPI) do(method, path string, body any) (*http.Response, envelope) {
	a.t.Helper()
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, a.srv.URL+path, rd)
	require.NoError(a.t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.srv.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func (a *testAPI) mustOK(method, path string, body, out any) {
	a.t.Helper()
	resp, env := a.do(method, path, body)
	require.Equal(a.t, http.StatusOK, resp.StatusCode, "%s %s: %s", method, path, env.Message)
	require.Equal(a.t, models.CodeSuccess, env.Code)
	if out != nil {
		require.NoError(a.t, json.Unmarshal(env.Data, out))
	}
}

func staticPosts(posts ...models.SampledPost) services.ActivitySampler {
	return samplerFunc(func(context.Context, models.MonitoredProfile) (models.ActivitySample, error) {
		return models.ActivitySample{Posts: posts, SampledAt: time.Now()}, nil
	})
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, staticPosts())

	for _, header := range []string{"", "Bearer ", "Bearer wrong", "Basic " + testToken} {
		req, err := http.NewRequest(http.MethodPost, api.srv.URL+"/api/monitor/run", nil)
		require.NoError(t, err)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := api.srv.Client().Do(req)
		require.NoError(t, err)

		var env envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
		assert.Equal(t, models.CodeUnauthorized, env.Code, header)
	}
}

func TestHealthAndPreflight(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, staticPosts())

	resp, err := api.srv.Client().Get(api.srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, api.srv.URL+"/api/monitor/run", nil)
	require.NoError(t, err)
	resp, err = api.srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "authorization")
}

func TestMonitorRunFlow(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, staticPosts(
		models.SampledPost{Text: "Como a IA muda o marketing digital", URL: "https://linkedin.com/posts/1"},
		models.SampledPost{Text: "Vaga aberta para marketing digital", URL: "https://linkedin.com/posts/2"},
		models.SampledPost{Text: "Fotos das férias", URL: "https://linkedin.com/posts/3"},
	))

	var rule models.KeywordRule
	api.mustOK(http.MethodPost, "/api/keywords", models.CreateKeywordRequest{Term: "marketing digital", Operator: "or"}, &rule)
	api.mustOK(http.MethodPost, "/api/keywords", models.CreateKeywordRequest{Term: "vaga", Operator: "NOT"}, nil)

	var profile models.MonitoredProfile
	api.mustOK(http.MethodPost, "/api/profiles", models.CreateProfileRequest{DisplayName: "Ana Lima", Handle: "analima", Platform: "linkedin"}, &profile)

	var first models.MonitorSummary
	api.mustOK(http.MethodPost, "/api/monitor/run", nil, &first)
	assert.Equal(t, 1, first.MonitoredProfiles)
	assert.Equal(t, 1, first.DraftsCreated)
	assert.Empty(t, first.Errors)
	require.Len(t, first.ActivitySummary, 1)
	assert.Equal(t, profile.ID, first.ActivitySummary[0].ProfileID)
	assert.Equal(t, 3, first.ActivitySummary[0].NewPosts)
	assert.Equal(t, []string{"marketing digital"}, first.ActivitySummary[0].KeywordMatches)

	var second models.MonitorSummary
	api.mustOK(http.MethodPost, "/api/monitor/run", nil, &second)
	assert.Zero(t, second.DraftsCreated)
	require.Len(t, second.ActivitySummary, 1)
	assert.Equal(t, 1, second.ActivitySummary[0].DuplicatesSkipped)

	var comments []models.CommentView
	api.mustOK(http.MethodGet, "/api/comments?status=pending", nil, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "https://linkedin.com/posts/1", comments[0].PostURL)
	assert.Equal(t, "Ana Lima", comments[0].ProfileName)
	assert.Contains(t, strings.ToLower(comments[0].Content), "marketing digital")

	var rules []models.KeywordRule
	api.mustOK(http.MethodGet, "/api/keywords?operator=or", nil, &rules)
	require.Len(t, rules, 1)
	assert.Equal(t, rule.ID, rules[0].ID)
	assert.EqualValues(t, 1, rules[0].MatchCount)

	var history []models.ActivityEntry
	api.mustOK(http.MethodGet, "/api/history?action=run_completed", nil, &history)
	assert.Len(t, history, 2)
}

func TestCommentStatusTransitions(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, staticPosts(models.SampledPost{Text: "cloud native talk", URL: "https://x.com/p/1"}))
	api.mustOK(http.MethodPost, "/api/keywords", models.CreateKeywordRequest{Term: "cloud", Operator: "AND"}, nil)
	api.mustOK(http.MethodPost, "/api/profiles", models.CreateProfileRequest{DisplayName: "Bob", Handle: "@bob", Platform: "twitter"}, nil)
	api.mustOK(http.MethodPost, "/api/monitor/run", nil, nil)

	var comments []models.CommentView
	api.mustOK(http.MethodGet, "/api/comments", nil, &comments)
	require.Len(t, comments, 1)
	path := "/api/comments/" + comments[0].ID + "/status"

	var updated models.CommentView
	api.mustOK(http.MethodPatch, path, models.UpdateCommentStatusRequest{Status: "posted"}, &updated)
	assert.Equal(t, models.CommentPosted, updated.Status)

	resp, env := api.do(http.MethodPatch, path, models.UpdateCommentStatusRequest{Status: "failed"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, models.CodeInvalidTransition, env.Code)

	resp, env = api.do(http.MethodPatch, path, models.UpdateCommentStatusRequest{Status: "archived"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeInvalidParams, env.Code)

	resp, env = api.do(http.MethodPatch, "/api/comments/missing/status", models.UpdateCommentStatusRequest{Status: "posted"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, models.CodeNotFound, env.Code)
}

func TestExportComments(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, staticPosts(models.SampledPost{Text: "golang meetup, golang jobs"}))
	api.mustOK(http.MethodPost, "/api/keywords", models.CreateKeywordRequest{Term: "golang", Operator: "OR"}, nil)
	api.mustOK(http.MethodPost, "/api/profiles", models.CreateProfileRequest{DisplayName: "Carla", Handle: "carla", Platform: "linkedin"}, nil)
	api.mustOK(http.MethodPost, "/api/monitor/run", nil, nil)

	req, err := http.NewRequest(http.MethodGet, api.srv.URL+"/api/comments/export", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testToken)
	resp, err := api.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	records, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Contains(t, strings.Join(records[1], ","), "Carla")
}

func TestProfileAndKeywordErrors(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, staticPosts())

	resp, env := api.do(http.MethodPost, "/api/profiles", models.CreateProfileRequest{DisplayName: "X", Handle: "x", Platform: "myspace"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeInvalidParams, env.Code)

	api.mustOK(http.MethodPost, "/api/profiles", models.CreateProfileRequest{DisplayName: "A", Handle: "a", Platform: "linkedin"}, nil)
	var b models.MonitoredProfile
	api.mustOK(http.MethodPost, "/api/profiles", models.CreateProfileRequest{DisplayName: "B", Handle: "b", Platform: "twitter"}, &b)

	resp, env = api.do(http.MethodPost, "/api/profiles", models.CreateProfileRequest{DisplayName: "C", Handle: "c", Platform: "twitter"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, models.CodeLimitReached, env.Code)

	var paused models.MonitoredProfile
	api.mustOK(http.MethodPatch, "/api/profiles/"+b.ID, models.UpdateProfileRequest{Status: "paused"}, &paused)
	assert.Equal(t, models.ProfilePaused, paused.Status)

	var active []models.MonitoredProfile
	api.mustOK(http.MethodGet, "/api/profiles?status=active", nil, &active)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].Handle)

	api.mustOK(http.MethodDelete, "/api/profiles/"+b.ID, nil, nil)
	resp, _ = api.do(http.MethodDelete, "/api/profiles/"+b.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, env = api.do(http.MethodPost, "/api/keywords", models.CreateKeywordRequest{Term: "ai", Operator: "XOR"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeInvalidParams, env.Code)

	var k models.KeywordRule
	api.mustOK(http.MethodPost, "/api/keywords", models.CreateKeywordRequest{Term: "ai", Operator: "AND"}, &k)
	resp, _ = api.do(http.MethodPatch, "/api/keywords/"+k.ID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var off models.KeywordRule
	api.mustOK(http.MethodPatch, "/api/keywords/"+k.ID, models.UpdateKeywordRequest{Active: new(bool)}, &off)
	assert.False(t, off.Active)
}

func TestSettingsAndReports(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t, staticPosts())

	var st models.OwnerSettings
	api.mustOK(http.MethodGet, "/api/settings", nil, &st)
	assert.Equal(t, models.ToneProfessional, st.Tone)
	assert.Equal(t, 100, st.DailyLimit)

	var saved models.OwnerSettings
	api.mustOK(http.MethodPut, "/api/settings", map[string]any{"tone": "Friendly", "daily_limit": 5}, &saved)
	assert.Equal(t, models.ToneFriendly, saved.Tone)
	assert.Equal(t, 5, saved.DailyLimit)
	assert.Equal(t, models.LanguagePortuguese, saved.Language)
	assert.Equal(t, "owner-1", saved.OwnerID)

	api.mustOK(http.MethodGet, "/api/settings", nil, &st)
	assert.Equal(t, 5, st.DailyLimit)

	resp, env := api.do(http.MethodPut, "/api/settings", map[string]any{"max_length": 10})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeInvalidParams, env.Code)

	resp, _ = api.do(http.MethodPut, "/api/settings", map[string]any{"unknown": true})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var report models.Report
	api.mustOK(http.MethodGet, "/api/reports?days=30", nil, &report)
	assert.Zero(t, report.TotalComments)
	assert.False(t, report.Since.IsZero())

	resp, _ = api.do(http.MethodGet, "/api/reports?days=14", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = api.do(http.MethodGet, "/api/history?status=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
