package kvstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "RecipeHistoryPrefs:device-1:recipe_history", Key("RecipeHistoryPrefs", "device-1", "recipe_history"))
	assert.Equal(t, "AppSettings", Key("AppSettings"))
}

func setupTestRedis(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	conn := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, conn.Ping(context.Background()).Err())
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestRedisStore(t *testing.T) {
	conn := setupTestRedis(t)
	store := NewRedisStore(conn)
	ctx := context.Background()
	key := Key("kvstore_test", time.Now().Format(time.RFC3339Nano))

	_, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, key, "value", time.Minute))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore().(*memoryStore)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "forever", "a", 0))
	require.NoError(t, store.Set(ctx, "short", "b", time.Minute))

	got, err := store.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	got, err = store.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	require.NoError(t, store.Delete(ctx, "forever"))
	_, err = store.Get(ctx, "forever")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
