package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment_monitor/models"
	"comment_monitor/utils"
)

type stubComposer struct {
	text string
	err  error
}

func (s stubComposer) Compose(context.Context, CompositionRequest) (string, error) {
	return s.text, s.err
}

func draftSettings() models.OwnerSettings {
	return models.DefaultSettings("owner", 10)
}

func TestDraftSkipsEmptyPost(t *testing.T) {
	t.Parallel()
	d := NewDrafter(nil)
	assert.Nil(t, d.Draft(context.Background(), profile("p1"), models.SampledPost{Text: "   "}, []string{"ai"}, draftSettings()))
}

func TestDraftFromTemplate(t *testing.T) {
	t.Parallel()
	d := NewDrafter(nil)
	p := profile("p1")

	draft := d.Draft(context.Background(), p, models.SampledPost{Text: "Adoramos IA aplicada"}, []string{"ia"}, draftSettings())
	require.NotNil(t, draft)

	assert.Equal(t, models.CommentPending, draft.Status)
	assert.Equal(t, "p1", draft.ProfileID)
	assert.Equal(t, "owner", draft.OwnerID)
	assert.True(t, strings.HasPrefix(draft.Content, "ia: excelente análise, Person."), draft.Content)
	assert.Equal(t, utils.SyntheticPostURL("linkedin", p.Handle, "Adoramos IA aplicada"), draft.PostURL)
	assert.Equal(t, []string{"ia"}, draft.MatchedTerms)
}

func TestDraftKeepsSamplerURL(t *testing.T) {
	t.Parallel()
	d := NewDrafter(nil)
	draft := d.Draft(context.Background(), profile("p1"),
		models.SampledPost{Text: "cloud", URL: "https://www.linkedin.com/posts/123"}, []string{"cloud"}, draftSettings())
	require.NotNil(t, draft)
	assert.Equal(t, "https://www.linkedin.com/posts/123", draft.PostURL)
}

func TestDraftUsesComposerWhenItMentionsATerm(t *testing.T) {
	t.Parallel()
	d := NewDrafter(stubComposer{text: "Really sharp take on Kubernetes upgrades."})
	draft := d.Draft(context.Background(), profile("p1"), models.SampledPost{Text: "k8s"}, []string{"kubernetes"}, draftSettings())
	require.NotNil(t, draft)
	assert.Equal(t, "Really sharp take on Kubernetes upgrades.", draft.Content)
}

func TestDraftFallsBackToTemplate(t *testing.T) {
	t.Parallel()
	settings := draftSettings()
	settings.Language = models.LanguageEnglish
	settings.UseEmojis = false

	for name, c := range map[string]stubComposer{
		"error":         {err: errors.New("rate limited")},
		"empty":         {text: "  "},
		"missing terms": {text: "Nice post!"},
	} {
		t.Run(name, func(t *testing.T) {
			draft := NewDrafter(c).Draft(context.Background(), profile("p1"), models.SampledPost{Text: "post"}, []string{"rust"}, settings)
			require.NotNil(t, draft)
			assert.Equal(t, "rust: great analysis, Person. Thanks for sharing this perspective.", draft.Content)
		})
	}
}

func TestDraftTruncatesButKeepsLeadTerm(t *testing.T) {
	t.Parallel()
	settings := draftSettings()
	settings.MaxLength = models.MinCommentLength

	long := strings.Repeat("distributed systems are fascinating and ", 10) + "go"
	d := NewDrafter(stubComposer{text: long})
	draft := d.Draft(context.Background(), profile("p1"), models.SampledPost{Text: "post"}, []string{"distributed systems", "go"}, settings)
	require.NotNil(t, draft)

	assert.LessOrEqual(t, utf8.RuneCountInString(draft.Content), models.MinCommentLength)
	assert.True(t, utils.ContainsFold(draft.Content, "distributed systems"))
	assert.Equal(t, []string{"go", "distributed systems"}, draft.MatchedTerms)
}

func TestDraftWithoutTermsUsesGenericTemplate(t *testing.T) {
	t.Parallel()
	draft := NewDrafter(nil).Draft(context.Background(), profile("p1"), models.SampledPost{Text: "post"}, nil, draftSettings())
	require.NotNil(t, draft)
	assert.True(t, strings.HasPrefix(draft.Content, "Excelente reflexão, Person."))
}

func TestLeadWithShortest(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"ai", "machine learning", "data"}, leadWithShortest([]string{"machine learning", "ai", "data"}))
	assert.Equal(t, []string{"x"}, leadWithShortest([]string{"x"}))
	assert.Nil(t, leadWithShortest(nil))
}

func TestSystemPromptReflectsSettings(t *testing.T) {
	t.Parallel()
	st := draftSettings()
	st.Tone = models.ToneCasual
	st.UseEmojis = false
	st.SystemPrompt = "Never mention competitors."

	prompt := buildSystemPrompt(st)
	assert.Contains(t, prompt, "relaxed and casual")
	assert.Contains(t, prompt, "Brazilian Portuguese")
	assert.Contains(t, prompt, "Do not use emojis.")
	assert.True(t, strings.HasSuffix(prompt, "Never mention competitors."))
}
