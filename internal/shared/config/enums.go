//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// StateBackend selects where the last processed link is persisted
// ENUM(file,redis,sqlite,memory)
type StateBackend string
