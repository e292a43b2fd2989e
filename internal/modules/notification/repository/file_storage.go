package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/domain"
	"github.com/samber/oops"
)

// FileStorage implements Repository with one JSON document per notification
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based notification journal
func NewFileStorage(basePath string) (Repository, error) {
	notificationPath := filepath.Join(basePath, "notifications")
	if err := os.MkdirAll(notificationPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create notifications directory").Wrap(err)
	}

	return &FileStorage{basePath: notificationPath}, nil
}

func (s *FileStorage) SaveNotification(notification *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// zero-padded nanoseconds keep directory order chronological
	name := fmt.Sprintf("%020d-%s.json", notification.CreatedAt.UnixNano(), notification.ID)
	path := filepath.Join(s.basePath, name)

	data, err := json.MarshalIndent(notification, "", "  ")
	if err != nil {
		return oops.With("notification_id", notification.ID, "context", "failed to marshal notification").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return oops.With("notification_id", notification.ID, "path", path, "context", "failed to write notification").Wrap(err)
	}
	return nil
}

func (s *FileStorage) GetNotifications(limit int) ([]*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Notification{}, nil
		}
		return nil, oops.With("directory", s.basePath, "context", "failed to read notifications directory").Wrap(err)
	}

	notifications := []*domain.Notification{}
	for i := len(entries) - 1; i >= 0 && len(notifications) < limit; i-- {
		entry := entries[i]
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			continue
		}

		var notification domain.Notification
		if err := json.Unmarshal(data, &notification); err != nil {
			continue
		}

		notifications = append(notifications, &notification)
	}

	return notifications, nil
}
