package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestRedisStorePutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t, time.Minute)

	got, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	sess := newTestSession("alice")
	require.NoError(t, store.Put(ctx, sess))

	got, err = store.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.GameBlackjack, got.Game)
	assert.Equal(t, 25.0, got.BetAmount)

	require.NoError(t, store.Delete(ctx, "alice"))

	got, err = store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)

	require.NoError(t, store.Put(ctx, newTestSession("bob")))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, got, "session should expire with the redis key")
}

func TestRedisStoreSchemaVersionMismatch(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)

	// Entry written by an older schema version reads as absent.
	require.NoError(t, mr.Set(redisKeyPrefix+"carol", `{"version":"0.9","session":{"playerId":"carol"}}`))

	got, err := store.Get(ctx, "carol")
	require.NoError(t, err)
	assert.Nil(t, got)
}
