package redis_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/toontown-archipelago/internal/redis"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	t.Run("single mode pings", func(t *testing.T) {
		client, err := redis.Open(redis.ModeSingle, " "+mr.Addr()+" ", "", nil)
		require.NoError(t, err)
		defer client.Close()

		require.NoError(t, client.Ping(t.Context()).Err())
	})

	t.Run("empty mode defaults to single", func(t *testing.T) {
		client, err := redis.Open("", mr.Addr(), "", &redis.Options{PoolSize: 2})
		require.NoError(t, err)
		defer client.Close()
	})

	t.Run("missing endpoints", func(t *testing.T) {
		_, err := redis.Open(redis.ModeSingle, " , ", "", nil)
		assert.Error(t, err)

		_, err = redis.Open(redis.ModeCluster, "", "", nil)
		assert.Error(t, err)
	})

	t.Run("sentinel needs a master name", func(t *testing.T) {
		_, err := redis.Open(redis.ModeSentinel, "localhost:26379", "", nil)
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := redis.Open("etcd", mr.Addr(), "", nil)
		assert.Error(t, err)
	})
}
