package errors

import "errors"

var (
	ErrMissingFeedURL     = errors.New("RSS_FEED_URL environment variable is required")
	ErrMissingBotToken    = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingChatID      = errors.New("TELEGRAM_CHAT_ID environment variable is required")
	ErrUnsupportedBackend = errors.New("unsupported state backend")

	ErrStateNotFound      = errors.New("no persisted link")
	ErrFeedFetch          = errors.New("feed could not be fetched")
	ErrEmptyFeed          = errors.New("feed has no entries")
	ErrEntryWithoutLink   = errors.New("latest feed entry has no link")
	ErrNotificationFailed = errors.New("notification was not delivered")
)
