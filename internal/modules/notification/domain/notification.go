package domain

import "time"

// Notification is one attempt to announce a new feed entry
type Notification struct {
	ID         string         `json:"id"`
	FeedTitle  string         `json:"feed_title"`
	EntryTitle string         `json:"entry_title"`
	Link       string         `json:"link"`
	Text       string         `json:"text"`
	Status     DeliveryStatus `json:"status"`
	MessageID  int            `json:"message_id,omitempty"`
	Error      string         `json:"error,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Delivered reports whether the chat API accepted the message
func (n *Notification) Delivered() bool {
	return n.Status == DeliveryStatusDelivered
}
