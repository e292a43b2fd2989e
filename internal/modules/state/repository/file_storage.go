package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
	"github.com/samber/oops"
)

// FileStorage keeps the last link as plain text in a single file
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewFileStorage creates a file-based state repository. The file itself is
// created on the first save.
func NewFileStorage(path string) (Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, oops.Errorf("state file path is empty")
	}
	return &FileStorage{path: path}, nil
}

func (s *FileStorage) GetLastLink(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.ErrStateNotFound
		}
		return "", oops.With("state_path", s.path, "context", "failed to read state file").Wrap(err)
	}

	link := strings.TrimSpace(string(data))
	if link == "" {
		return "", errors.ErrStateNotFound
	}
	return link, nil
}

func (s *FileStorage) SaveLastLink(_ context.Context, link string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return oops.With("state_dir", dir, "context", "failed to create state directory").Wrap(err)
		}
	}

	if err := os.WriteFile(s.path, []byte(link), 0644); err != nil {
		return oops.With("state_path", s.path, "context", "failed to write state file").Wrap(err)
	}
	return nil
}
