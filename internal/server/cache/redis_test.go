package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisListCache(context.Background(), mr.Addr(), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisListCache_MissOnEmpty(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	got, ok, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisListCache_SetThenGet(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	in := []models.User{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		{ID: 2, FirstName: "Alan", LastName: "Turing", Country: "UK"},
	}
	require.NoError(t, c.Set(ctx, 0, in))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, got)
	assert.Equal(t, time.Minute, mr.TTL(DefaultKey))
}

func TestRedisListCache_EmptyListIsAHit(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, nil))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRedisListCache_Expires(t *testing.T) {
	c, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, []models.User{{ID: 1, FirstName: "A", LastName: "B"}}))
	mr.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisListCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, []models.User{{ID: 1, FirstName: "A", LastName: "B"}}))
	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(DefaultKey))

	v, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	// invalidating a missing key is fine
	require.NoError(t, c.Invalidate(ctx))
}

func TestRedisListCache_SetWithOldVersionIsDropped(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	before, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before)

	// a write lands between the reader's version read and its Set
	require.NoError(t, c.Invalidate(ctx))

	require.NoError(t, c.Set(ctx, before, []models.User{}))
	assert.False(t, mr.Exists(DefaultKey))

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := c.Version(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, after, []models.User{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, got, 1)
}

func TestRedisListCache_CorruptPayload(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set(DefaultKey, "{not json"))

	_, ok, err := c.Get(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to unmarshal users json")
}

func TestRedisListCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := c.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis get failed")
}

func TestNewRedisListCache_PingFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisListCache(context.Background(), addr, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestNopListCache(t *testing.T) {
	var c ListCache = NopListCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 0, []models.User{{ID: 1}}))
	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Close())
}
