package querycache

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftdrop/console-lib/e"
)

func TestGetOrFetch_CachesFreshValue(t *testing.T) {
	c := New()
	var calls int32

	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "v1", nil
	}

	v, err := c.GetOrFetch(context.Background(), KeyAllManagers, fetch)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	v, err = c.GetOrFetch(context.Background(), KeyAllManagers, fetch)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvalidate_StalesEntry(t *testing.T) {
	c := New()
	var calls int32

	fetch := func(ctx context.Context) (interface{}, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			return "old", nil
		}
		return "new", nil
	}

	_, err := c.GetOrFetch(context.Background(), KeyAllMerchants, fetch)
	require.NoError(t, err)

	c.Invalidate(KeyAllMerchants)

	_, fresh := c.Peek(KeyAllMerchants)
	assert.False(t, fresh)

	v, err := c.GetOrFetch(context.Background(), KeyAllMerchants, fetch)
	require.NoError(t, err)
	assert.Equal(t, "new", v)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInvalidate_SchedulesRefresher(t *testing.T) {
	c := New()

	c.RegisterRefresher(KeyAllOrders, func(ctx context.Context) (interface{}, error) {
		return 42, nil
	})

	c.Invalidate(KeyAllOrders)
	c.Wait()

	v, fresh := c.Peek(KeyAllOrders)
	assert.True(t, fresh)
	assert.Equal(t, 42, v)
}

func TestInvalidate_RefresherFailureLeavesStale(t *testing.T) {
	c := New()

	_, err := c.GetOrFetch(context.Background(), KeySettings,
		func(ctx context.Context) (interface{}, error) {
			return "old", nil
		})
	require.NoError(t, err)

	c.RegisterRefresher(KeySettings, func(ctx context.Context) (interface{}, error) {
		return nil, e.N("020001", "backend down")
	})

	c.Invalidate(KeySettings)
	c.Wait()

	v, fresh := c.Peek(KeySettings)
	assert.False(t, fresh)
	assert.Equal(t, "old", v)
}

func TestGetOrFetch_ErrorNotCached(t *testing.T) {
	c := New()
	var calls int32

	fetch := func(ctx context.Context) (interface{}, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, e.N("020001", "boom")
		}
		return "ok", nil
	}

	_, err := c.GetOrFetch(context.Background(), KeyPricing, fetch)
	require.Error(t, err)

	_, fresh := c.Peek(KeyPricing)
	assert.False(t, fresh)

	v, err := c.GetOrFetch(context.Background(), KeyPricing, fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}
