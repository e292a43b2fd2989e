package domain

import "time"

// FeedMeta identifies the source channel of a feed
type FeedMeta struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// FeedEntry is the latest item of a feed. Link is its identity.
type FeedEntry struct {
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published,omitempty"`
}
