package repository

import (
	"context"
	"sync"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/shared/errors"
)

// MemoryStorage keeps the last link in process memory
type MemoryStorage struct {
	link string
	mu   sync.RWMutex
}

// NewMemoryStorage creates an in-memory state repository seeded with link.
// An empty link means no prior state.
func NewMemoryStorage(link string) *MemoryStorage {
	return &MemoryStorage{link: link}
}

func (s *MemoryStorage) GetLastLink(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.link == "" {
		return "", errors.ErrStateNotFound
	}
	return s.link, nil
}

func (s *MemoryStorage) SaveLastLink(_ context.Context, link string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link = link
	return nil
}
