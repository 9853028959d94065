package config

import "time"

// Session store backends
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Unknown dice bet policies
const (
	DicePolicyFallback = "fallback"
	DicePolicyReject   = "reject"
)

// Defaults
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultDBMaxConns     = 10
	DefaultSessionTTL     = 60 * time.Second
	DefaultSweepInterval  = 15 * time.Second
	DefaultEventRetries   = 3
	DefaultEventRetryBase = 2 * time.Second
	DefaultDeadLetterPath = "deadletter/events.jsonl"
	DefaultRedisAddr      = "localhost:6379"
)
