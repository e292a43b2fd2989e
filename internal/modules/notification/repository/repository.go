package repository

import (
	"github.com/reshetovitsme/rss-telegram-notifier/internal/modules/notification/domain"
)

// Repository defines the journal of notification attempts
type Repository interface {
	SaveNotification(notification *domain.Notification) error
	// GetNotifications returns up to limit notifications, newest first
	GetNotifications(limit int) ([]*domain.Notification, error)
}
