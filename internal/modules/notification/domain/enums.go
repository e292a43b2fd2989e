//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// DeliveryStatus represents the result of a notification attempt
// ENUM(delivered,failed)
type DeliveryStatus string
