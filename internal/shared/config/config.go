package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// DefaultConfigFiles are probed in order; the first one found is loaded
var DefaultConfigFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

type Config struct {
	FeedURL          string `koanf:"rss_feed_url"`
	TelegramBotToken string `koanf:"telegram_bot_token"`
	TelegramChatID   string `koanf:"telegram_chat_id"`
	TelegramAPIURL   string `koanf:"telegram_api_url"`

	StateBackend  StateBackend `koanf:"state_backend"`
	StatePath     string       `koanf:"state_path"`
	RedisAddr     string       `koanf:"redis_addr"`
	RedisPassword string       `koanf:"redis_password"`
	RedisDB       int          `koanf:"redis_db"`
	RedisKey      string       `koanf:"redis_key"`
	SQLitePath    string       `koanf:"sqlite_path"`
	JournalPath   string       `koanf:"journal_path"`

	HTTPTimeout  time.Duration `koanf:"http_timeout"`
	PollInterval time.Duration `koanf:"poll_interval"`
	HTTPPort     string        `koanf:"http_port"`

	// PersistOnNotifyFailure keeps the original behaviour of marking a link
	// processed even when the Telegram call failed.
	PersistOnNotifyFailure bool `koanf:"persist_on_notify_failure"`

	LogLevel string `koanf:"log_level"`
	LogFile  string `koanf:"log_file"`
	AppEnv   AppEnv `koanf:"app_env"`
}

// WatchMode reports whether the process should keep polling instead of
// exiting after a single check
func (c *Config) WatchMode() bool {
	return c.PollInterval > 0
}

func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFiles...)
}

// LoadFrom loads the first existing file of configFiles, then overlays
// environment variables and applies defaults
func LoadFrom(configFiles ...string) (*Config, error) {
	k := koanf.New(".")

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	defaults := map[string]any{
		"telegram_api_url":          "https://api.telegram.org",
		"state_backend":             string(StateBackendFile),
		"state_path":                "last_video_link.txt",
		"redis_addr":                "localhost:6379",
		"redis_key":                 "rss-telegram-notifier:last_link",
		"sqlite_path":               "./data/state.db",
		"http_timeout":              "30s",
		"poll_interval":             "0s",
		"http_port":                 "8080",
		"persist_on_notify_failure": true,
		"log_level":                 "info",
		"app_env":                   string(AppEnvProduction),
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	backend, err := ParseStateBackend(k.String("state_backend"))
	if err != nil {
		return nil, oops.With("state_backend", k.String("state_backend")).Wrap(errors.ErrUnsupportedBackend)
	}
	cfg.StateBackend = backend

	cfg.FeedURL = strings.TrimSpace(cfg.FeedURL)
	cfg.TelegramChatID = strings.TrimSpace(cfg.TelegramChatID)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields a check cannot run without
func (c *Config) Validate() error {
	switch {
	case c.FeedURL == "":
		return errors.ErrMissingFeedURL
	case c.TelegramBotToken == "":
		return errors.ErrMissingBotToken
	case c.TelegramChatID == "":
		return errors.ErrMissingChatID
	}
	return nil
}
