package redis

import (
	"context"
	"testing"

	"bukutamu/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewRedisClient(&config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, Ping(context.Background(), client))
	require.NoError(t, Close(client))
	require.NoError(t, Close(nil))
}

func TestNewRedisClient_Options(t *testing.T) {
	client := NewRedisClient(&config.RedisConfig{Addr: "cache:6379", DB: 2})
	defer client.Close()

	opts := client.Options()
	require.Equal(t, "cache:6379", opts.Addr)
	require.Equal(t, 2, opts.DB)
	require.Equal(t, ioTimeout, opts.ReadTimeout)
	require.Equal(t, poolSize, opts.PoolSize)
}

func TestPing_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client := NewRedisClient(&config.RedisConfig{Addr: addr})
	defer client.Close()
	require.Error(t, Ping(context.Background(), client))
}
