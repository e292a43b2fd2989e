package telegram

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/config"
	"github.com/samber/oops"
)

// Sender posts notifications to a single Telegram chat
type Sender struct {
	bot    *bot.Bot
	chatID string
}

// New creates a Telegram sender for cfg.TelegramChatID. getMe is skipped so
// that building the sender never touches the network.
func New(cfg *config.Config) (*Sender, error) {
	client := &http.Client{Timeout: cfg.HTTPTimeout}

	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(cfg.HTTPTimeout, client),
	}
	if apiURL := strings.TrimRight(cfg.TelegramAPIURL, "/"); apiURL != "" {
		opts = append(opts, bot.WithServerURL(apiURL))
	}

	b, err := bot.New(cfg.TelegramBotToken, opts...)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}

	return &Sender{bot: b, chatID: cfg.TelegramChatID}, nil
}

// Send posts text with HTML parse mode and returns the Telegram message id
func (s *Sender) Send(ctx context.Context, text string) (int, error) {
	msg, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return 0, oops.With("chat_id", s.chatID).Wrap(err)
	}
	return msg.ID, nil
}
