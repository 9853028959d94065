package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/config"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/session"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/worker"
)

const redisPingTimeout = 5 * time.Second

// InitializeSessionStore builds the blackjack session store selected by
// configuration. The memory backend also serves as the cleanup worker's
// sweep source; redis expires entries server-side via key TTLs, so no
// sweep source is returned for it.
// The returned redis client is nil for the memory backend and must be
// closed by the caller otherwise.
func InitializeSessionStore(cfg *config.Config) (session.Store, worker.SessionSource, *redis.Client, error) {
	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		store := session.NewMemoryStore(session.DefaultMaxSize, cfg.SessionTTL)
		slog.Info(LogMsgSessionStoreInitialized, "backend", cfg.SessionBackend, "ttl", cfg.SessionTTL)
		return store, store, nil, nil

	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedPingRedis, err)
		}

		store := session.NewRedisStore(client, cfg.SessionTTL)
		slog.Info(LogMsgSessionStoreInitialized, "backend", cfg.SessionBackend, "addr", cfg.RedisAddr, "ttl", cfg.SessionTTL)
		return store, nil, client, nil

	default:
		return nil, nil, nil, fmt.Errorf("%s: %q", ErrMsgUnknownSessionBackend, cfg.SessionBackend)
	}
}
