package repository

import (
	"sync"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/domain"
)

// MemoryStorage keeps the most recent notifications in process memory
type MemoryStorage struct {
	capacity      int
	notifications []*domain.Notification
	mu            sync.RWMutex
}

// NewMemoryStorage creates an in-memory journal holding at most capacity
// notifications
func NewMemoryStorage(capacity int) *MemoryStorage {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryStorage{capacity: capacity}
}

func (s *MemoryStorage) SaveNotification(notification *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, notification)
	if overflow := len(s.notifications) - s.capacity; overflow > 0 {
		s.notifications = s.notifications[overflow:]
	}
	return nil
}

func (s *MemoryStorage) GetNotifications(limit int) ([]*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Notification, 0, min(limit, len(s.notifications)))
	for i := len(s.notifications) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.notifications[i])
	}
	return result, nil
}
