package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easerve/Grooming-BookingService/internal/domain"
	"github.com/easerve/Grooming-BookingService/pkg/types"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAvailabilityCache(client, time.Minute), mr
}

func testDays() []domain.BookedDay {
	return []domain.BookedDay{
		{Date: "2025-11-29", Times: []types.TimeString{"09:00", "10:00"}},
		{Date: "2025-11-30", Times: []types.TimeString{"13:00"}},
	}
}

func TestAvailabilityCacheSetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 3, testDays()))

	days, ok := c.Get(ctx, 3)
	require.True(t, ok)
	assert.Equal(t, testDays(), days)
}

func TestAvailabilityCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok := c.Get(context.Background(), 3)
	assert.False(t, ok)
}

func TestAvailabilityCacheScopesAreIndependent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 3, testDays()))

	_, ok := c.Get(ctx, 6)
	assert.False(t, ok)
}

func TestAvailabilityCacheInvalidateClearsAllScopes(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 3, testDays()))
	require.NoError(t, c.Set(ctx, 6, testDays()))

	require.NoError(t, c.Invalidate(ctx))

	_, ok := c.Get(ctx, 3)
	assert.False(t, ok)
	_, ok = c.Get(ctx, 6)
	assert.False(t, ok)
}

func TestAvailabilityCacheExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 3, testDays()))
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, 3)
	assert.False(t, ok)
}

func TestAvailabilityCacheNilClient(t *testing.T) {
	c := NewAvailabilityCache(nil, time.Minute)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, 3, testDays()))
	_, ok := c.Get(ctx, 3)
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(ctx))
}
