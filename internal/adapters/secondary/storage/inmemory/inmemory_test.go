package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/admin/jyotish/vedic-client/internal/ports/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotTrackerLatestWins(t *testing.T) {
	tracker := NewSlotTracker()

	first := tracker.Begin("birth-chart")
	second := tracker.Begin("birth-chart")

	assert.False(t, tracker.IsLatest("birth-chart", first))
	assert.True(t, tracker.IsLatest("birth-chart", second))
	assert.False(t, tracker.IsLatest("matching", second))
}

func TestSlotTrackerReset(t *testing.T) {
	tracker := NewSlotTracker()
	id := tracker.Begin("birth-chart")
	tracker.Reset("birth-chart")
	assert.False(t, tracker.IsLatest("birth-chart", id))
}

func TestSlotTrackerFinishReleasesSlot(t *testing.T) {
	tracker := NewSlotTracker()
	first := tracker.Begin("birth-chart:form-a")
	second := tracker.Begin("birth-chart:form-a")
	other := tracker.Begin("birth-chart:form-b")

	tracker.Finish("birth-chart:form-a", first)
	assert.True(t, tracker.IsLatest("birth-chart:form-a", second), "older request must not release a newer one")

	tracker.Finish("birth-chart:form-a", second)
	tracker.Finish("birth-chart:form-b", other)
	assert.Zero(t, tracker.(*SlotTracker).Len())
}

func TestLRUCacheTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := newLRUCache(4, func() time.Time { return now })
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "cities", `["Delhi"]`, time.Minute))
	val, err := c.Get(ctx, "cities")
	require.NoError(t, err)
	assert.Equal(t, `["Delhi"]`, val)

	now = now.Add(2 * time.Minute)
	_, err = c.Get(ctx, "cities")
	assert.True(t, errors.Is(err, cache.ErrCacheMiss))

	ok, err := c.Exists(ctx, "cities")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLRUCacheEvictsOldest(t *testing.T) {
	c, err := newLRUCache(2, time.Now)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", "1", 0))
	require.NoError(t, c.Set(ctx, "b", "2", 0))
	require.NoError(t, c.Set(ctx, "c", "3", 0))

	_, err = c.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
	require.NoError(t, c.Delete(ctx, "b"))
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
