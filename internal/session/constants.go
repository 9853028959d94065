package session

import "time"

// Session store defaults
const (
	DefaultTTL     = 30 * time.Minute
	DefaultMaxSize = 10000

	// redisKeyPrefix namespaces session keys in a shared redis.
	redisKeyPrefix = "session:"
)

// SchemaVersion is the current version of the stored session shape.
// Increment when domain.PlayerSession changes to auto-invalidate old entries.
const SchemaVersion = "1.0"
