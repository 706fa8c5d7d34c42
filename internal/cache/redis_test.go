package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilCacheIsAMiss(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	var dest map[string]int
	hit, err := c.GetJSON(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.SetJSON(ctx, "k", 1, time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Close())
}

func TestNewWithoutAddrDisables(t *testing.T) {
	c, err := New(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestRoundTripAgainstRedis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	c := NewWithClient(redis.NewClient(&redis.Options{Addr: addr}), "test:"+t.Name()+":")
	defer c.Close()

	type stats struct{ Movies int }
	require.NoError(t, c.SetJSON(ctx, "stats", stats{Movies: 3}, time.Minute))

	var got stats
	hit, err := c.GetJSON(ctx, "stats", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 3, got.Movies)

	require.NoError(t, c.Delete(ctx, "stats"))
	hit, err = c.GetJSON(ctx, "stats", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
