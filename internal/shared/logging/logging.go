package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/config"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the handlers fanned out by New
type Options struct {
	Level   slog.Level
	File    string
	Stdout  io.Writer
	Stderr  io.Writer
	MaxSize int // megabytes
}

// FromConfig derives logging options from the application config
func FromConfig(cfg *config.Config) Options {
	level := ParseLevel(cfg.LogLevel)
	if cfg.AppEnv == config.AppEnvLocal || cfg.AppEnv == config.AppEnvDevelopment {
		level = slog.LevelDebug
	}
	return Options{
		Level:  level,
		File:   cfg.LogFile,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// ParseLevel maps a textual level to slog, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger that writes text to stdout, errors as JSON to stderr
// and, when a file is configured, JSON to a rotated log file.
// The returned closer releases the log file.
func New(opts Options) (*slog.Logger, io.Closer) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(opts.Stdout, &slog.HandlerOptions{
			Level: opts.Level,
		}),
		slog.NewJSONHandler(opts.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}),
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		maxSize := opts.MaxSize
		if maxSize <= 0 {
			maxSize = 16
		}
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		handlers = append(handlers, slog.NewJSONHandler(fileWriter, &slog.HandlerOptions{
			Level: opts.Level,
		}))
		closer = fileWriter
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
