package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/modules/feed/domain"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/metrics"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	defaultFetchTimeout = 30 * time.Second
	userAgent           = "rss-telegram-notifier/1.0"
)

// Service fetches feeds and exposes their latest entry
type Service struct {
	parser *gofeed.Parser
	client *http.Client
}

// New creates a new feed service. A non-positive timeout uses the default.
func New(timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Service{
		parser: gofeed.NewParser(),
		client: &http.Client{Timeout: timeout},
	}
}

// FetchLatest downloads the feed at url and returns its metadata and its
// first entry in document order
func (s *Service) FetchLatest(ctx context.Context, url string) (*domain.FeedMeta, *domain.FeedEntry, error) {
	started := time.Now()
	feed, err := s.parseFeed(ctx, url)
	metrics.FeedFetchDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return nil, nil, oops.With("feed_url", url).Wrap(fmt.Errorf("%w: %w", errors.ErrFeedFetch, err))
	}

	item, ok := lo.First(feed.Items)
	if !ok || item == nil {
		return nil, nil, oops.With("feed_url", url).Wrap(errors.ErrEmptyFeed)
	}

	link := strings.TrimSpace(item.Link)
	if link == "" {
		return nil, nil, oops.With("feed_url", url, "entry_title", item.Title).Wrap(errors.ErrEntryWithoutLink)
	}

	meta := &domain.FeedMeta{
		Title: lo.Ternary(strings.TrimSpace(feed.Title) != "", strings.TrimSpace(feed.Title), url),
		URL:   url,
	}
	entry := &domain.FeedEntry{
		Title:     strings.TrimSpace(item.Title),
		Link:      link,
		Published: lo.Ternary(item.PublishedParsed != nil, item.PublishedParsed, item.UpdatedParsed),
	}

	return meta, entry, nil
}

func (s *Service) parseFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return s.parser.Parse(resp.Body)
}
