package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCachePanics(t *testing.T) {
	f := &FakeCache{}
	require.Panics(t, func() { f.Get(context.Background(), "k") })
	require.Panics(t, func() { f.Set(context.Background(), "k", "v", 0) })
	require.Panics(t, func() { f.Del(context.Background(), "k") })
	require.NoError(t, f.Close())
}

func TestFakeCacheDelegates(t *testing.T) {
	ctx := context.Background()
	f := &FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("v", nil)
		},
		SetFn: func(_ context.Context, _ string, _ any, ttl time.Duration) *redis.StatusCmd {
			require.Equal(t, time.Minute, ttl)
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			require.Equal(t, []string{"a", "b"}, keys)
			return redis.NewIntResult(2, nil)
		},
		CloseFn: func() error { return errors.New("close") },
	}

	v, err := f.Get(ctx, "k").Result()
	require.NoError(t, err)
	require.Equal(t, "v", v)
	require.NoError(t, f.Set(ctx, "k", "v", time.Minute).Err())
	n, err := f.Del(ctx, "a", "b").Result()
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
	require.Error(t, f.Close())
}
