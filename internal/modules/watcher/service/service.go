package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	feedDomain "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/feed/domain"
	notificationDomain "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/domain"
	stateRepo "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/state/repository"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/modules/watcher/domain"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/config"
	apperrors "github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/metrics"
)

const defaultPollInterval = 15 * time.Minute

// Fetcher returns the metadata and latest entry of a feed
type Fetcher interface {
	FetchLatest(ctx context.Context, url string) (*feedDomain.FeedMeta, *feedDomain.FeedEntry, error)
}

// Notifier announces a new entry
type Notifier interface {
	Notify(ctx context.Context, meta *feedDomain.FeedMeta, entry *feedDomain.FeedEntry) (*notificationDomain.Notification, error)
}

// Service compares the latest feed entry with the persisted link and
// announces it when it changed
type Service struct {
	cfg      *config.Config
	fetcher  Fetcher
	state    stateRepo.Repository
	notifier Notifier
	now      func() time.Time

	last *domain.Outcome
	mu   sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new watcher service
func New(cfg *config.Config, fetcher Fetcher, state stateRepo.Repository, notifier Notifier) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:      cfg,
		fetcher:  fetcher,
		state:    state,
		notifier: notifier,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Check runs one fetch, compare, notify, persist cycle. It never panics on
// collaborator failures; every failure is reported in the outcome.
func (s *Service) Check(ctx context.Context) *domain.Outcome {
	outcome := s.check(ctx)

	s.mu.Lock()
	s.last = outcome
	s.mu.Unlock()

	metrics.ChecksTotal.WithLabelValues(outcome.Status.String()).Inc()
	metrics.LastCheckTimestamp.Set(float64(outcome.CheckedAt.Unix()))

	return outcome
}

// LastOutcome returns the outcome of the most recent check, or nil before
// the first one
func (s *Service) LastOutcome() *domain.Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Service) check(ctx context.Context) *domain.Outcome {
	outcome := &domain.Outcome{CheckedAt: s.now()}
	slog.Info("Checking for new entries", "feed_url", s.cfg.FeedURL)

	meta, entry, err := s.fetcher.FetchLatest(ctx, s.cfg.FeedURL)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyFeed) {
			slog.Warn("RSS feed is empty", "feed_url", s.cfg.FeedURL)
			return outcome.Fail(domain.RunStatusEmptyFeed, err)
		}
		slog.Error("RSS feed could not be fetched or parsed", "feed_url", s.cfg.FeedURL, "error", err)
		return outcome.Fail(domain.RunStatusFetchFailed, err)
	}

	outcome.FeedTitle = meta.Title
	outcome.EntryTitle = entry.Title
	outcome.Latest = entry.Link

	previous, err := s.state.GetLastLink(ctx)
	switch {
	case errors.Is(err, apperrors.ErrStateNotFound):
		previous = ""
	case err != nil:
		slog.Error("Failed to read last processed link", "error", err)
		return outcome.Fail(domain.RunStatusStateFailed, err)
	}
	outcome.Previous = previous

	slog.Info("Latest entry found", "link", entry.Link, "last_processed", previous)

	if previous != "" && previous == entry.Link {
		slog.Info("No new entries found")
		outcome.Status = domain.RunStatusUnchanged
		return outcome
	}

	slog.Info("New entry found, sending notification", "title", entry.Title, "link", entry.Link)

	if _, err := s.notifier.Notify(ctx, meta, entry); err != nil {
		slog.Error("Failed to send notification", "link", entry.Link, "error", err)
		outcome.Fail(domain.RunStatusNotifyFailed, err)

		if !s.cfg.PersistOnNotifyFailure {
			slog.Warn("Leaving last processed link unchanged so the next run retries", "link", entry.Link)
			return outcome
		}
	} else {
		outcome.Status = domain.RunStatusNotified
		outcome.Notified = true
	}

	if err := s.state.SaveLastLink(ctx, entry.Link); err != nil {
		slog.Error("Failed to persist last processed link", "link", entry.Link, "error", err)
		outcome.Err = errors.Join(outcome.Err, err)
		outcome.Error = outcome.Err.Error()
		return outcome
	}
	outcome.Persisted = true

	return outcome
}

// Start runs a check immediately and then once per poll interval until Stop
// is called or ctx is cancelled
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.watchLoop(ctx)
}

// Stop stops the watch loop and waits for a running check to finish
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Service) watchLoop(ctx context.Context) {
	defer s.wg.Done()

	interval := s.cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Check(s.ctx)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(s.ctx)
		}
	}
}
