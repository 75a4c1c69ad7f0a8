package redis_test

import (
	"context"
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooquk/sooquk-dashboard/internal/configs"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/redis"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	rc, err := redis.NewRedisClient(&configs.RedisConfig{Host: mr.Host(), Port: mr.Port()}, log)
	require.NoError(t, err)
	defer rc.Close()

	require.NoError(t, rc.Client.Set(context.Background(), "k", "v", 0).Err())
	v, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err := redis.NewRedisClient(&configs.RedisConfig{Host: "127.0.0.1", Port: "1"}, log)
	assert.Error(t, err)
}
