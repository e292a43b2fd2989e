//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// RunStatus is the terminal state of a single feed check
// ENUM(unchanged,notified,notify_failed,fetch_failed,empty_feed,state_failed)
type RunStatus string
