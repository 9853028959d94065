package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// RedisStore persists sessions in redis with a TTL, for deployments
// running more than one instance behind a load balancer.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a redis-backed session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) key(playerID string) string {
	return redisKeyPrefix + playerID
}

// Get retrieves a player's session. Returns (nil, nil) on a miss.
func (s *RedisStore) Get(ctx context.Context, playerID string) (*domain.PlayerSession, error) {
	raw, err := s.rdb.Get(ctx, s.key(playerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", playerID, err)
	}

	var entry storedEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", playerID, err)
	}
	if entry.Version != SchemaVersion {
		_ = s.rdb.Del(ctx, s.key(playerID)).Err()
		return nil, nil
	}
	return entry.Session, nil
}

// Put stores a session, resetting its TTL.
func (s *RedisStore) Put(ctx context.Context, session *domain.PlayerSession) error {
	entry := storedEntry{
		Version:  SchemaVersion,
		Session:  session,
		StoredAt: time.Now(),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.PlayerID, err)
	}
	if err := s.rdb.Set(ctx, s.key(session.PlayerID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session %s: %w", session.PlayerID, err)
	}
	return nil
}

// Delete removes a player's session.
func (s *RedisStore) Delete(ctx context.Context, playerID string) error {
	if err := s.rdb.Del(ctx, s.key(playerID)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", playerID, err)
	}
	return nil
}
