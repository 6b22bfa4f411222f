package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"comment_monitor/config"
	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/utils"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; comment-monitor/1.0)"

// PlatformRegistry routes each profile to the sampler of its platform.
type PlatformRegistry struct {
	samplers map[models.Platform]ActivitySampler
}

func NewPlatformRegistry() *PlatformRegistry {
	return &PlatformRegistry{samplers: make(map[models.Platform]ActivitySampler)}
}

// Register sets the sampler for platform, replacing any previous one.
func (r *PlatformRegistry) Register(platform models.Platform, s ActivitySampler) {
	r.samplers[platform] = s
}

// Platforms lists the platforms that have a sampler.
func (r *PlatformRegistry) Platforms() []models.Platform {
	out := make([]models.Platform, 0, len(r.samplers))
	for p := range r.samplers {
		out = append(out, p)
	}
	return out
}

func (r *PlatformRegistry) Sample(ctx context.Context, profile models.MonitoredProfile) (models.ActivitySample, error) {
	s, ok := r.samplers[profile.Platform]
	if !ok {
		return models.ActivitySample{}, fmt.Errorf("no sampler for platform %q", profile.Platform)
	}
	return s.Sample(ctx, profile)
}

// FeedSampler reads a public HTML feed page and picks posts out of it with CSS selectors.
type FeedSampler struct {
	feed     config.PlatformFeed
	client   *http.Client
	maxPosts int
	log      *slog.Logger
}

func NewFeedSampler(feed config.PlatformFeed, client *http.Client, maxPosts int) *FeedSampler {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if feed.UserAgent == "" {
		feed.UserAgent = defaultUserAgent
	}
	return &FeedSampler{
		feed:     feed,
		client:   client,
		maxPosts: maxPosts,
		log:      logger.With("component", "feed_sampler"),
	}
}

func (s *FeedSampler) Sample(ctx context.Context, profile models.MonitoredProfile) (models.ActivitySample, error) {
	feedURL := strings.ReplaceAll(s.feed.FeedURL, "{handle}", url.PathEscape(strings.TrimPrefix(profile.Handle, "@")))
	base, err := url.Parse(feedURL)
	if err != nil {
		return models.ActivitySample{}, fmt.Errorf("feed url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return models.ActivitySample{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.feed.UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.ActivitySample{}, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.ActivitySample{}, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return models.ActivitySample{}, fmt.Errorf("parse feed: %w", err)
	}

	var posts []models.SampledPost
	doc.Find(s.feed.PostSelector).EachWithBreak(func(_ int, node *goquery.Selection) bool {
		text := node.Text()
		if s.feed.TextSelector != "" {
			text = node.Find(s.feed.TextSelector).First().Text()
		}
		text = utils.NormalizeSpace(text)
		if text == "" {
			return true
		}

		post := models.SampledPost{Text: text}
		if s.feed.LinkSelector != "" {
			if href, ok := node.Find(s.feed.LinkSelector).First().Attr("href"); ok {
				post.URL = resolveLink(base, href)
			}
		}
		posts = append(posts, post)
		return s.maxPosts <= 0 || len(posts) < s.maxPosts
	})

	s.log.Debug("feed sampled", "profile_id", profile.ID, "platform", profile.Platform, "posts", len(posts))
	return models.ActivitySample{Posts: posts, SampledAt: time.Now().UTC()}, nil
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
