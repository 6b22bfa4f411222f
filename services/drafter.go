package services

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/utils"
)

const defaultComposeTimeout = 15 * time.Second

// Drafter turns a matched post into a pending CommentDraft.
type Drafter struct {
	composer Composer
	fallback TemplateComposer
	timeout  time.Duration
	log      *slog.Logger
}

// NewDrafter wraps composer; nil means templates only.
func NewDrafter(composer Composer) *Drafter {
	return &Drafter{
		composer: composer,
		timeout:  defaultComposeTimeout,
		log:      logger.With("component", "drafter"),
	}
}

// Draft returns nil when post has no text. Otherwise the draft always has
// content, a post url (synthetic when the sampler gave none) and, when
// terms is not empty, content that mentions one of them.
func (d *Drafter) Draft(ctx context.Context, profile models.MonitoredProfile, post models.SampledPost, terms []string, st models.OwnerSettings) *models.CommentDraft {
	text := strings.TrimSpace(post.Text)
	if text == "" {
		return nil
	}

	maxLen := st.MaxLength
	if maxLen <= 0 {
		maxLen = models.DefaultCommentLength
	}
	terms = leadWithShortest(terms)
	req := CompositionRequest{Profile: profile, PostText: text, MatchedTerms: terms, Settings: st}

	content := ""
	if d.composer != nil {
		cctx, cancel := context.WithTimeout(ctx, d.timeout)
		generated, err := d.composer.Compose(cctx, req)
		cancel()
		if err != nil {
			level := slog.LevelWarn
			if utils.IsContextError(err) {
				level = slog.LevelInfo
			}
			d.log.Log(ctx, level, "composer failed, using template", "profile_id", profile.ID, "error", err)
		} else if content = fit(generated, terms, maxLen); content == "" {
			d.log.Warn("composer output unusable, using template", "profile_id", profile.ID)
		}
	}
	if content == "" {
		generated, _ := d.fallback.Compose(ctx, req)
		content = fit(generated, terms, maxLen)
	}
	if content == "" {
		// the lead term alone is longer than the allowed length
		content = utils.TruncateRunes(terms[0], maxLen)
	}

	postURL := strings.TrimSpace(post.URL)
	if postURL == "" {
		postURL = utils.SyntheticPostURL(string(profile.Platform), profile.Handle, text)
	}

	return &models.CommentDraft{
		OwnerID:      profile.OwnerID,
		ProfileID:    profile.ID,
		Content:      content,
		PostURL:      postURL,
		MatchedTerms: terms,
		Status:       models.CommentPending,
	}
}

// fit truncates text to maxLen and returns "" when the result is empty or
// no longer mentions any matched term.
func fit(text string, terms []string, maxLen int) string {
	text = utils.TruncateWords(strings.TrimSpace(text), maxLen)
	if text == "" {
		return ""
	}
	if len(terms) == 0 {
		return text
	}
	for _, term := range terms {
		if utils.ContainsFold(text, term) {
			return text
		}
	}
	return ""
}

// leadWithShortest moves the shortest term to the front so a template that
// opens with it survives truncation. The rest keep their order.
func leadWithShortest(terms []string) []string {
	if len(terms) < 2 {
		return terms
	}
	best := 0
	for i, t := range terms {
		if utf8.RuneCountInString(t) < utf8.RuneCountInString(terms[best]) {
			best = i
		}
	}
	out := make([]string, 0, len(terms))
	out = append(out, terms[best])
	out = append(out, terms[:best]...)
	return append(out, terms[best+1:]...)
}
