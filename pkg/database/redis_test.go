package database

import (
	"context"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptionsFromURL(t *testing.T) {
	opts, err := RedisOptionsFromURL("redis://:secret@cache.local:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.local:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, DefaultRedisOptions().PoolSize, opts.PoolSize)

	_, err = RedisOptionsFromURL("http://cache.local")
	assert.Error(t, err)
}

func TestConnectRedis_Failures(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	_, err := ConnectRedis(context.Background(), RedisOptions{}, logger)
	assert.EqualError(t, err, "redis connection failed: empty address")

	opts := DefaultRedisOptions()
	opts.Addr = "127.0.0.1:1"
	opts.MaxRetries = -1
	opts.DialTimeout = 200 * time.Millisecond
	opts.PingTimeout = 500 * time.Millisecond

	_, err = ConnectRedis(context.Background(), opts, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection failed")
}

func TestConnectRedis_Live(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	opts := DefaultRedisOptions()
	opts.Addr = addr

	client, err := ConnectRedis(context.Background(), opts, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}
