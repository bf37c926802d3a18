package cache

import (
	"context"
	"net"
	"testing"

	"mediconnect/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfigFor(t *testing.T, addr string) config.RedisConfig {
	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	return config.RedisConfig{Host: host, Port: port}
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)
	log, hook := test.NewNullLogger()

	client, err := NewRedisClient(context.Background(), redisConfigFor(t, server.Addr()), log)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := server.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, server.Addr(), hook.LastEntry().Data["addr"])
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	server := miniredis.NewMiniRedis()
	require.NoError(t, server.Start())
	cfg := redisConfigFor(t, server.Addr())
	server.Close()

	log, _ := test.NewNullLogger()
	client, err := NewRedisClient(context.Background(), cfg, log)
	assert.Error(t, err)
	assert.Nil(t, client)
}
