package repository

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/samber/oops"
	_ "modernc.org/sqlite"
)

const stateKey = "last_link"

// SQLiteStorage keeps the last link in a key/value table of an SQLite file
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (or creates) the database at path and ensures the
// state table exists
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, oops.With("sqlite_dir", dir, "context", "failed to create database directory").Wrap(err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, oops.With("sqlite_path", path, "context", "failed to open database").Wrap(err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, oops.With("sqlite_path", path, "context", "failed to enable WAL").Wrap(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, oops.With("sqlite_path", path, "context", "failed to create state table").Wrap(err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) GetLastLink(ctx context.Context) (string, error) {
	var link string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM state WHERE key = ?", stateKey).Scan(&link)
	if err == sql.ErrNoRows {
		return "", errors.ErrStateNotFound
	}
	if err != nil {
		return "", oops.With("context", "failed to read last link").Wrap(err)
	}

	link = strings.TrimSpace(link)
	if link == "" {
		return "", errors.ErrStateNotFound
	}
	return link, nil
}

func (s *SQLiteStorage) SaveLastLink(ctx context.Context, link string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		stateKey, link, time.Now().Unix(),
	)
	if err != nil {
		return oops.With("context", "failed to save last link").Wrap(err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
