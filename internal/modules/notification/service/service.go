package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"
	feedDomain "github.com/reshetovitsme/rss-telegram-notifier/internal/modules/feed/domain"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/domain"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/repository"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/metrics"
	"github.com/samber/oops"
)

const journalFeedSize = 50

// Sender delivers an HTML-formatted message to the configured chat and
// returns the id the chat API assigned to it
type Sender interface {
	Send(ctx context.Context, text string) (int, error)
}

// Service formats, sends and records notifications
type Service struct {
	sender  Sender
	journal repository.Repository
	now     func() time.Time
}

// New creates a new notification service
func New(sender Sender, journal repository.Repository) *Service {
	return &Service{
		sender:  sender,
		journal: journal,
		now:     time.Now,
	}
}

// FormatMessage builds the chat message announcing entry
func FormatMessage(meta *feedDomain.FeedMeta, entry *feedDomain.FeedEntry) string {
	return fmt.Sprintf(
		"📢 <b>New Video from %s!</b>\n\n<b>Title:</b> %s\n<b>Link:</b> %s",
		html.EscapeString(meta.Title),
		html.EscapeString(entry.Title),
		html.EscapeString(entry.Link),
	)
}

// Notify announces entry and records the attempt. A delivery failure is
// returned as an error matching errors.ErrNotificationFailed together with
// the failed notification record.
func (s *Service) Notify(ctx context.Context, meta *feedDomain.FeedMeta, entry *feedDomain.FeedEntry) (*domain.Notification, error) {
	notification := &domain.Notification{
		ID:         uuid.NewString(),
		FeedTitle:  meta.Title,
		EntryTitle: entry.Title,
		Link:       entry.Link,
		Text:       FormatMessage(meta, entry),
		CreatedAt:  s.now(),
	}

	messageID, sendErr := s.sender.Send(ctx, notification.Text)
	if sendErr != nil {
		notification.Status = domain.DeliveryStatusFailed
		notification.Error = sendErr.Error()
	} else {
		notification.Status = domain.DeliveryStatusDelivered
		notification.MessageID = messageID
	}
	metrics.NotificationsTotal.WithLabelValues(notification.Status.String()).Inc()

	if err := s.journal.SaveNotification(notification); err != nil {
		slog.Error("Failed to record notification", "notification_id", notification.ID, "error", err)
	}

	if sendErr != nil {
		return notification, oops.
			With("notification_id", notification.ID, "link", entry.Link).
			Wrap(fmt.Errorf("%w: %w", errors.ErrNotificationFailed, sendErr))
	}

	slog.Info("Notification sent", "link", entry.Link, "message_id", messageID)
	return notification, nil
}

// Recent returns up to limit recorded notifications, newest first
func (s *Service) Recent(limit int) ([]*domain.Notification, error) {
	return s.journal.GetNotifications(limit)
}

// GenerateFeed renders the notification journal as a feed
func (s *Service) GenerateFeed(baseURL string) (*feeds.Feed, error) {
	notifications, err := s.journal.GetNotifications(journalFeedSize)
	if err != nil {
		return nil, oops.With("context", "failed to get notifications").Wrap(err)
	}

	feed := &feeds.Feed{
		Title:       "RSS Telegram Notifier - Notifications",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/rss", baseURL)},
		Description: "Entries announced to Telegram",
		Created:     s.now(),
	}

	feed.Items = make([]*feeds.Item, 0, len(notifications))
	for _, n := range notifications {
		feed.Items = append(feed.Items, notificationToFeedItem(n))
	}
	if len(notifications) > 0 {
		feed.Updated = notifications[0].CreatedAt
	}

	return feed, nil
}

func notificationToFeedItem(n *domain.Notification) *feeds.Item {
	description := fmt.Sprintf("%s: %s (%s)", n.FeedTitle, n.EntryTitle, n.Status)
	if n.Error != "" {
		description += " - " + n.Error
	}

	return &feeds.Item{
		Title:       n.EntryTitle,
		Link:        &feeds.Link{Href: n.Link},
		Description: description,
		Content:     n.Text,
		Created:     n.CreatedAt,
		Id:          n.ID,
	}
}
