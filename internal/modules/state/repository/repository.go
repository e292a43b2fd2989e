package repository

import "context"

// Repository persists the link of the most recently notified entry.
// Implementations report absent state with errors.ErrStateNotFound so the
// first run can be told apart from a storage failure.
type Repository interface {
	GetLastLink(ctx context.Context) (string, error)
	SaveLastLink(ctx context.Context, link string) error
}
