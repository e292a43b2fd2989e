package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("RSS_FEED_URL", "https://www.youtube.com/feeds/videos.xml?channel_id=abc")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.youtube.com/feeds/videos.xml?channel_id=abc", cfg.FeedURL)
	assert.Equal(t, "123:token", cfg.TelegramBotToken)
	assert.Equal(t, "-100200300", cfg.TelegramChatID)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, StateBackendFile, cfg.StateBackend)
	assert.Equal(t, "last_video_link.txt", cfg.StatePath)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Duration(0), cfg.PollInterval)
	assert.False(t, cfg.WatchMode())
	assert.True(t, cfg.PersistOnNotifyFailure)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("STATE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("POLL_INTERVAL", "5m")
	t.Setenv("PERSIST_ON_NOTIFY_FAILURE", "false")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StateBackendRedis, cfg.StateBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.PollInterval)
	assert.True(t, cfg.WatchMode())
	assert.False(t, cfg.PersistOnNotifyFailure)
	assert.Equal(t, AppEnvDevelopment, cfg.AppEnv)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	setRequiredEnv(t)

	content := []byte("state_path: state/last.txt\nhttp_timeout: 10s\nrss_feed_url: https://file.example/feed\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "state/last.txt", cfg.StatePath)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	// environment wins over the file
	assert.Equal(t, "https://www.youtube.com/feeds/videos.xml?channel_id=abc", cfg.FeedURL)
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	setRequiredEnv(t)

	content := []byte("state_backend = \"sqlite\"\nsqlite_path = \"notifier.db\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), content, 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StateBackendSqlite, cfg.StateBackend)
	assert.Equal(t, "notifier.db", cfg.SQLitePath)
}

func TestLoadUnknownAppEnvFallsBackToProduction(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("STATE_BACKEND", "etcd")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnsupportedBackend))
}

func TestLoadRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		unset string
		want  error
	}{
		{name: "feed url", unset: "RSS_FEED_URL", want: errors.ErrMissingFeedURL},
		{name: "bot token", unset: "TELEGRAM_BOT_TOKEN", want: errors.ErrMissingBotToken},
		{name: "chat id", unset: "TELEGRAM_CHAT_ID", want: errors.ErrMissingChatID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
