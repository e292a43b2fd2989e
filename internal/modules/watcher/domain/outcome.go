package domain

import "time"

// Outcome describes what a single check observed and did
type Outcome struct {
	Status     RunStatus `json:"status"`
	FeedTitle  string    `json:"feed_title,omitempty"`
	EntryTitle string    `json:"entry_title,omitempty"`
	Latest     string    `json:"latest,omitempty"`
	Previous   string    `json:"previous,omitempty"`
	Notified   bool      `json:"notified"`
	Persisted  bool      `json:"persisted"`
	Err        error     `json:"-"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// Fail records err on the outcome under status
func (o *Outcome) Fail(status RunStatus, err error) *Outcome {
	o.Status = status
	o.Err = err
	if err != nil {
		o.Error = err.Error()
	}
	return o
}
