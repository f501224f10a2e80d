package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubClient implements redisClient for testing.
type stubClient struct {
	pingErr error
}

func (s *stubClient) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("", s.pingErr)
}

func (s *stubClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func (s *stubClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(0, nil)
}

func (s *stubClient) Close() error { return nil }

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() {
		redisNewClient = func(opt *redis.Options) redisClient { return redis.NewClient(opt) }
	})

	var gotOpt *redis.Options
	redisNewClient = func(opt *redis.Options) redisClient {
		gotOpt = opt
		return &stubClient{}
	}
	c, err := NewRedisClient("addr:6379", "pw", 2)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "addr:6379", gotOpt.Addr)
	require.Equal(t, "pw", gotOpt.Password)
	require.Equal(t, 2, gotOpt.DB)

	redisNewClient = func(opt *redis.Options) redisClient {
		return &stubClient{pingErr: errors.New("ping")}
	}
	_, err = NewRedisClient("addr:6379", "", 0)
	require.Error(t, err)
}
